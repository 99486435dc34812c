// internal/solver/rank.go
//
// Ranking: ordering candidate words by the cheap frequency-sum score or the
// expensive expected-information score. Pure ordering, no side effects; ties
// break alphabetically so rankings are deterministic.

package solver

import (
	"context"
	"sort"
)

// RankedWord pairs a word with its score. Frequency scores are whole
// numbers; entropy scores are bits.
type RankedWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Ranker orders the words of one candidate set.
type Ranker struct {
	set    *CandidateSet
	model  *FrequencyModel
	scorer *EntropyScorer
}

// NewRanker builds a ranker, its frequency model, and its entropy scorer
// for the given candidate set.
func NewRanker(set *CandidateSet) (*Ranker, error) {
	scorer, err := NewEntropyScorer(set)
	if err != nil {
		return nil, err
	}
	return &Ranker{set: set, model: NewFrequencyModel(set), scorer: scorer}, nil
}

// Model exposes the underlying frequency model.
func (r *Ranker) Model() *FrequencyModel { return r.model }

// Scorer exposes the underlying entropy scorer.
func (r *Ranker) Scorer() *EntropyScorer { return r.scorer }

// ByFrequency orders the full candidate set descending by frequency-sum
// score.
func (r *Ranker) ByFrequency() ([]RankedWord, error) {
	out := make([]RankedWord, 0, r.set.Len())
	for _, w := range r.set.words {
		score, err := r.model.Score(w)
		if err != nil {
			return nil, err
		}
		out = append(out, RankedWord{Word: w, Score: float64(score)})
	}
	sortRanking(out)
	return out, nil
}

// ByEntropy orders the full candidate set descending by expected
// information, computing scores in parallel over at most workers goroutines.
func (r *Ranker) ByEntropy(ctx context.Context, workers int) ([]RankedWord, error) {
	scores, err := r.scorer.ScoreAll(ctx, r.set.words, workers)
	if err != nil {
		return nil, err
	}
	return RankScores(scores), nil
}

// RankScores orders an arbitrary word→score mapping descending by score.
// Used for score tables loaded from persistence as well as fresh sweeps.
func RankScores(scores map[string]float64) []RankedWord {
	out := make([]RankedWord, 0, len(scores))
	for w, s := range scores {
		out = append(out, RankedWord{Word: w, Score: s})
	}
	sortRanking(out)
	return out
}

// TopK returns the first k entries of a ranking (all of them when k <= 0 or
// k exceeds the length).
func TopK(ranking []RankedWord, k int) []RankedWord {
	if k <= 0 || k >= len(ranking) {
		return ranking
	}
	return ranking[:k]
}

// sortRanking sorts descending by score, ascending by word on ties.
func sortRanking(rs []RankedWord) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Score != rs[j].Score {
			return rs[i].Score > rs[j].Score
		}
		return rs[i].Word < rs[j].Word
	})
}
