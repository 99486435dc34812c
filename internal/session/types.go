// internal/session/types.go
//
// Core type definitions for solver sessions.
// Defines:
//   - Observation: one (guess, feedback) pair supplied by the consumer.
//   - Session: state for an in-progress solving run, holding the current
//     most-refined constraint state.

package session

import "github.com/robalobadob/wordle-solver/internal/solver"

// Observation records one guess and the feedback pattern it received.
type Observation struct {
	Guess   string         `json:"guess"`
	Pattern solver.Pattern `json:"pattern"`
}

// Session holds the state of a single solving run. Each applied observation
// replaces State with a further-refined instance; stale ancestors are
// discarded.
type Session struct {
	ID      string                  // Unique session identifier (random hex string).
	Length  int                     // Number of letters per word (typically 5).
	State   *solver.ConstraintState // Accumulated most-refined constraint state.
	History []Observation           // Observations applied so far, in order.
}
