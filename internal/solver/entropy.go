// internal/solver/entropy.go
//
// Expected-information scoring.
// For one candidate guess, sweep every feedback pattern the guess could
// produce, classify each into a constraint state, and accumulate
// probability × information over the states. The result is the expected
// number of bits the guess yields about the answer.
//
// Probability convention: |compatible words| over the size of the ORIGINAL
// candidate set, for every state derived from it. This keeps probabilities
// comparable across the patterns of one sweep; see DESIGN.md.
//
// Cost per word is O(3^n × n × |set|); each word's full sweep is an
// independent unit of work, so ScoreAll fans the words out over a bounded
// errgroup pool with a single fan-in join and no shared accumulator.

package solver

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EntropyScorer computes expected-information scores over one candidate set.
// Stateless after construction; safe for concurrent use.
type EntropyScorer struct {
	set      *CandidateSet
	patterns *PatternEnumerator
}

// NewEntropyScorer builds a scorer for the given candidate set, enumerating
// the full pattern space for the set's word length once.
func NewEntropyScorer(set *CandidateSet) (*EntropyScorer, error) {
	enum, err := NewPatternEnumerator(set.WordLength())
	if err != nil {
		return nil, err
	}
	return &EntropyScorer{set: set, patterns: enum}, nil
}

// Probability is the fraction of the original candidate set compatible with
// the state.
func (s *EntropyScorer) Probability(st *ConstraintState) (float64, error) {
	compat, err := st.CompatibleWords(s.set)
	if err != nil {
		return 0, err
	}
	return float64(len(compat)) / float64(s.set.Len()), nil
}

// Information converts a state's probability into bits: −log2(p), with 0 at
// p = 0 by convention (a vacuous state carries no weight, never −Inf or NaN).
func (s *EntropyScorer) Information(st *ConstraintState) (float64, error) {
	p, err := s.Probability(st)
	if err != nil {
		return 0, err
	}
	return informationBits(p), nil
}

// ExpectedInformation sweeps every feedback pattern for word and sums
// probability × information over the resulting states.
func (s *EntropyScorer) ExpectedInformation(word string) (float64, error) {
	if err := s.set.checkWord(word); err != nil {
		return 0, err
	}
	denom := float64(s.set.Len())
	total := 0.0
	for _, pattern := range s.patterns.Patterns() {
		st, err := StateFromFeedback(word, pattern)
		if err != nil {
			return 0, err
		}
		compat, err := st.CompatibleWords(s.set)
		if err != nil {
			return 0, err
		}
		p := float64(len(compat)) / denom
		total += p * informationBits(p)
	}
	return total, nil
}

// ScoreAll computes ExpectedInformation for every word, distributing the
// per-word sweeps across at most workers goroutines. workers <= 0 uses
// GOMAXPROCS. Each word writes only its own result slot; the join after
// Wait assembles the final mapping. Cancelling ctx abandons words that have
// not started and returns the context error.
func (s *EntropyScorer) ScoreAll(ctx context.Context, words []string, workers int) (map[string]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]float64, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bits, err := s.ExpectedInformation(w)
			if err != nil {
				return fmt.Errorf("score %q: %w", w, err)
			}
			results[i] = bits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(words))
	for i, w := range words {
		out[w] = results[i]
	}
	return out, nil
}

// Set returns the scorer's candidate set.
func (s *EntropyScorer) Set() *CandidateSet { return s.set }

// informationBits maps a probability to bits of information, defining the
// zero-probability case as 0.
func informationBits(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return -math.Log2(p)
}
