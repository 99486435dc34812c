// internal/session/session.go
//
// Session lifecycle for accumulated guess feedback.
// Responsibilities:
//   - Create new sessions with an unconstrained state for a fixed length.
//   - Validate and apply (guess, feedback) observations by classifying them
//     and refining the accumulated constraint state.
//   - Report the narrowing outcome: compatible count, determined word,
//     vacuous dead ends.
//
// Notes:
//   - The constraint machinery lives in internal/solver; a session is the
//     mutable holder of the current immutable state value.
//   - randomID() is a compact hex identifier for correlating server state.

package session

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

const defaultLength = 5

// New constructs a session for words of length n.
// n <= 0 selects the default 5-letter configuration.
func New(n int) (*Session, error) {
	if n <= 0 {
		n = defaultLength
	}
	st, err := solver.NewConstraintState(n)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:      randomID(),
		Length:  n,
		State:   st,
		History: []Observation{},
	}, nil
}

// Apply classifies one observation and refines the session state.
// Returns the refined state; the session keeps it as the new current state.
// Invalid guesses or patterns fail with solver.ErrInvalidInput and leave the
// session untouched.
func (s *Session) Apply(guess string, pattern solver.Pattern) (*solver.ConstraintState, error) {
	observed, err := solver.StateFromFeedback(guess, pattern)
	if err != nil {
		return nil, err
	}
	refined, err := s.State.Refine(observed)
	if err != nil {
		return nil, err
	}
	s.State = refined
	s.History = append(s.History, Observation{Guess: guess, Pattern: pattern})
	return refined, nil
}

// Outcome summarizes the session's knowledge against a candidate set.
type Outcome struct {
	Compatible []string // candidates still compatible with the state
	Determined string   // the pinned word, when fully determined
	Solved     bool     // true when Determined is set
	Vacuous    bool     // true when no candidate can match
}

// Evaluate computes the session outcome for the given candidate set.
// A fully pinned combination missing from the set surfaces as
// solver.ErrInconsistentState.
func (s *Session) Evaluate(set *solver.CandidateSet) (*Outcome, error) {
	compat, err := s.State.CompatibleWords(set)
	if err != nil {
		return nil, err
	}
	out := &Outcome{Compatible: compat, Vacuous: len(compat) == 0}
	word, ok, err := s.State.DeterminedWord(set)
	if err != nil {
		return nil, err
	}
	if ok {
		out.Determined = word
		out.Solved = true
		out.Vacuous = false
	}
	return out, nil
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
