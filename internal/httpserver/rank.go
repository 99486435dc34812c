// internal/httpserver/rank.go
//
// Ranking endpoints and persisted score tables.
//
// The frequency ranking is a cheap counting sum and is computed per request.
// The entropy ranking sweeps the full pattern space for every candidate word,
// so it is computed at most once per process (guarded by sync.Once) and the
// resulting word→bits table is persisted in SQLite keyed by the candidate
// list fingerprint. Later processes with the same list load the table
// instead of recomputing.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

const (
	kindFrequency = "frequency"
	kindEntropy   = "entropy"
)

// handleRankFrequency serves the candidate set ordered by frequency-sum
// score. ?top=K limits the response.
func (s *Server) handleRankFrequency(w http.ResponseWriter, r *http.Request) {
	ranking, err := s.ranker.ByFrequency()
	if err != nil {
		log.Error().Err(err).Msg("frequency ranking")
		http.Error(w, `{"error":"rank_failed"}`, http.StatusInternalServerError)
		return
	}
	writeRanking(w, kindFrequency, solver.TopK(ranking, queryInt(r, "top", 0)))
}

// handleRankEntropy serves the candidate set ordered by expected
// information. ?top=K limits the response.
func (s *Server) handleRankEntropy(w http.ResponseWriter, r *http.Request) {
	ranking, err := s.entropyRanking(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			return // client went away mid-sweep
		}
		log.Error().Err(err).Msg("entropy ranking")
		http.Error(w, `{"error":"rank_failed"}`, http.StatusInternalServerError)
		return
	}
	writeRanking(w, kindEntropy, solver.TopK(ranking, queryInt(r, "top", 0)))
}

// entropyRanking loads or computes the entropy score table exactly once.
func (s *Server) entropyRanking(ctx context.Context) ([]solver.RankedWord, error) {
	s.entropyOnce.Do(func() {
		// Try the persisted table first.
		scores, err := s.loadScoreTable(ctx, kindEntropy)
		if err != nil {
			log.Warn().Err(err).Msg("load entropy table")
		}
		if len(scores) == s.set.Len() {
			log.Info().Int("words", len(scores)).Msg("entropy table loaded from db")
			s.entropyRank = solver.RankScores(scores)
			return
		}

		workers := envInt("SOLVER_WORKERS", 0)
		started := time.Now()
		// Detach from the request context: the sweep outcome is shared by
		// every later caller, so one impatient client must not poison it.
		scores, err = s.ranker.Scorer().ScoreAll(context.Background(), s.set.Words(), workers)
		if err != nil {
			s.entropyErr = err
			return
		}
		log.Info().
			Int("words", len(scores)).
			Dur("elapsed", time.Since(started)).
			Msg("entropy sweep complete")

		if err := s.saveScoreTable(ctx, kindEntropy, scores); err != nil {
			log.Warn().Err(err).Msg("persist entropy table")
		}
		s.entropyRank = solver.RankScores(scores)
	})
	return s.entropyRank, s.entropyErr
}

// writeRanking encodes a ranking response.
func writeRanking(w http.ResponseWriter, kind string, ranking []solver.RankedWord) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"kind":  kind,
		"words": ranking,
	})
}

// --------------------------- score tables ----------------------------------

// loadScoreTable reads the persisted word→score mapping for this candidate
// list and kind. A missing table yields an empty map, not an error.
func (s *Server) loadScoreTable(ctx context.Context, kind string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, score FROM score_tables WHERE list_hash=? AND kind=?`,
		s.listHash, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var word string
		var score float64
		if err := rows.Scan(&word, &score); err != nil {
			return nil, err
		}
		out[word] = score
	}
	return out, rows.Err()
}

// saveScoreTable persists a word→score mapping in one transaction,
// replacing any previous rows for this list and kind.
func (s *Server) saveScoreTable(ctx context.Context, kind string, scores map[string]float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM score_tables WHERE list_hash=? AND kind=?`, s.listHash, kind); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO score_tables (list_hash, kind, word, score, created_at) VALUES (?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for word, score := range scores {
		if _, err := stmt.Exec(s.listHash, kind, word, score, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}
