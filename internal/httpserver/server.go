// internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints (optional auth): POST /solver/new, POST /solver/feedback,
//     GET /solver/candidates, GET /solver/state.
//   - Ranking endpoints: GET /rank/frequency, GET /rank/entropy (score tables
//     cached in SQLite by candidate-list fingerprint).
//   - Auth + profile endpoints (require auth): /auth/*, /sessions/mine.
//   - Database persistence for session history and user stats.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; routes can still run for guests.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// sampleLimit caps the candidate words echoed back in feedback responses.
const sampleLimit = 20

// Server bundles router, session store, DB handle, and the solver engine.
type Server struct {
	r        *chi.Mux
	store    store.Store
	db       *sql.DB
	set      *solver.CandidateSet
	ranker   *solver.Ranker
	listHash string

	entropyOnce sync.Once
	entropyRank []solver.RankedWord
	entropyErr  error
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB, set *solver.CandidateSet, listHash string) (*Server, error) {
	ranker, err := solver.NewRanker(set)
	if err != nil {
		return nil, err
	}
	s := &Server{r: chi.NewRouter(), store: st, db: db, set: set, ranker: ranker, listHash: listHash}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(60 * time.Second)) // bound handler time (entropy sweeps are slow)
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solver/new","POST /solver/feedback","GET /rank/entropy","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": words.Stats(),
			"listHash":   s.listHash,
		})
	})

	// Solver endpoints — OPTIONAL AUTH (guests can solve)
	s.r.With(s.withOptionalAuth()).Post("/solver/new", s.handleNewSession)
	s.r.With(s.withOptionalAuth()).Post("/solver/feedback", s.handleFeedback)
	s.r.Get("/solver/candidates", s.handleCandidates)
	s.r.Get("/solver/state", s.handleState)

	// Rankings
	s.r.Get("/rank/frequency", s.handleRankFrequency)
	s.r.Get("/rank/entropy", s.handleRankEntropy)

	// Auth + profile (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SOLVER -------------------------------------

// newSessionReq/Res payloads for POST /solver/new.
type newSessionReq struct {
	Length int `json:"length"` // optional; 0 selects the default 5
}
type newSessionRes struct {
	SessionID  string `json:"sessionId"`
	Candidates int    `json:"candidates"`
}

// handleNewSession creates a new in-memory session and persists a DB "owner"
// row (either user_id or anonymous_id) for history/stats.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	length := req.Length
	if length == 0 {
		length = s.set.WordLength()
	}
	if length != s.set.WordLength() {
		// One word length per run; the candidate set fixes it.
		http.Error(w, `{"error":"unsupported_length"}`, http.StatusBadRequest)
		return
	}

	sess, err := session.New(length)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		http.Error(w, `{"error":"create_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err := s.db.Exec(`INSERT INTO sessions (id, user_id, length, guesses, status, started_at)
		                     VALUES (?,?,?,0,'open',?)`, sess.ID, me.ID, length, now)
		if err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert user session row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err := s.db.Exec(`INSERT INTO sessions (id, anonymous_id, length, guesses, status, started_at)
		                     VALUES (?,?,?,0,'open',?)`, sess.ID, anon, length, now)
		if err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert anon session row")
		}
	}

	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Candidates: s.set.Len()})
}

// feedbackReq/Res payloads for POST /solver/feedback.
type feedbackReq struct {
	SessionID string   `json:"sessionId"`
	Guess     string   `json:"guess"`
	Pattern   []string `json:"pattern"` // per-position: "miss" | "present" | "hit"
}
type feedbackRes struct {
	Compatible int      `json:"compatible"`
	Sample     []string `json:"sample"`
	Determined string   `json:"determined,omitempty"`
	Solved     bool     `json:"solved"`
	Vacuous    bool     `json:"vacuous"`
}

// handleFeedback applies one (guess, pattern) observation to a session,
// persists progress, and reports how far the candidate set narrowed.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	pattern, err := parsePattern(req.Pattern)
	if err != nil {
		http.Error(w, `{"error":"bad_pattern"}`, http.StatusBadRequest)
		return
	}
	guess := strings.ToUpper(strings.TrimSpace(req.Guess))
	if _, err := sess.Apply(guess, pattern); err != nil {
		http.Error(w, `{"error":"invalid_feedback"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	outcome, err := sess.Evaluate(s.set)
	if err != nil {
		// A determined-but-absent word is an internal classifier fault.
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("evaluate session")
		http.Error(w, `{"error":"inconsistent_state"}`, http.StatusInternalServerError)
		return
	}

	s.persistProgress(w, r, sess, outcome)

	res := feedbackRes{
		Compatible: len(outcome.Compatible),
		Sample:     sample(outcome.Compatible, sampleLimit),
		Determined: outcome.Determined,
		Solved:     outcome.Solved,
		Vacuous:    outcome.Vacuous,
	}
	_ = json.NewEncoder(w).Encode(res)
}

// persistProgress updates the session's DB row and, when a user solves a
// session, bumps their stats. Best effort, non-fatal if it fails.
func (s *Server) persistProgress(w http.ResponseWriter, r *http.Request, sess *session.Session, outcome *session.Outcome) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	ownerClause := `anonymous_id=?`
	ownerArg := any(s.ensureAnonID(w, r))
	if me != nil {
		ownerClause = `user_id=?`
		ownerArg = any(me.ID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		log.Warn().Err(err).Msg("begin progress tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE sessions SET guesses = guesses + 1 WHERE id=? AND `+ownerClause, sess.ID, ownerArg); err != nil {
		log.Warn().Err(err).Msg("update guesses")
	}

	if outcome.Solved || outcome.Vacuous {
		status := "solved"
		if outcome.Vacuous {
			status = "vacuous"
		}
		if _, err := tx.Exec(`UPDATE sessions SET status=?, finished_at=? WHERE id=? AND `+ownerClause,
			status, time.Now().UTC().Format(time.RFC3339), sess.ID, ownerArg); err != nil {
			log.Warn().Err(err).Msg("finish session")
		}
		if me != nil {
			if err := s.bumpStats(tx, me.ID, outcome.Solved); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}
	_ = tx.Commit()
}

// handleCandidates lists the words still compatible with a session's state.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), r.URL.Query().Get("sessionId"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	outcome, err := sess.Evaluate(s.set)
	if err != nil {
		http.Error(w, `{"error":"inconsistent_state"}`, http.StatusInternalServerError)
		return
	}
	limit := queryInt(r, "limit", 0)
	list := outcome.Compatible
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"compatible": len(outcome.Compatible),
		"words":      list,
	})
}

// stateRes describes a session's accumulated constraints.
type stateRes struct {
	SessionID string            `json:"sessionId"`
	Guesses   []string          `json:"guesses"`
	Allowed   []string          `json:"allowed"` // allowed letters per position
	Counts    map[string][2]int `json:"counts"`  // letter → [min,max], constrained letters only
}

// handleState exposes the queryable constraint state for a session.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), r.URL.Query().Get("sessionId"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	st := sess.State
	res := stateRes{
		SessionID: sess.ID,
		Guesses:   st.Guessed(),
		Allowed:   make([]string, sess.Length),
		Counts:    map[string][2]int{},
	}
	for pos := 0; pos < sess.Length; pos++ {
		res.Allowed[pos] = st.AllowedLetters(pos)
	}
	for letter := byte('A'); letter <= 'Z'; letter++ {
		lo, hi := st.CountRange(letter)
		if lo != 0 || hi != sess.Length {
			res.Counts[string(letter)] = [2]int{lo, hi}
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------- small util --------------------------------

// parsePattern converts wire status names into a solver.Pattern.
func parsePattern(names []string) (solver.Pattern, error) {
	if len(names) == 0 {
		return nil, errors.New("empty pattern")
	}
	p := make(solver.Pattern, len(names))
	for i, name := range names {
		st, err := solver.ParseStatus(name)
		if err != nil {
			return nil, err
		}
		p[i] = st
	}
	return p, nil
}

// sample returns at most limit leading entries of list.
func sample(list []string, limit int) []string {
	if len(list) <= limit {
		return list
	}
	return list[:limit]
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt returns an integer env var or def.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
