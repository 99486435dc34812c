// internal/solver/types.go
//
// Core type definitions for the solver engine.
// Defines:
//   - Status: per-letter feedback for a guess (hit/present/miss).
//   - Pattern: aligned per-position feedback for one whole guess.
//   - CandidateSet: the validated, immutable pool of possible answers.
//   - Sentinel errors shared by the package.
//
// Conventions:
//   - Words are uppercase ASCII A–Z of a fixed length per candidate set.
//   - Input that violates the word contract fails with ErrInvalidInput at the
//     violating call; it is never silently coerced.

package solver

import (
	"errors"
	"fmt"
	"strings"
)

const alphabetSize = 26

// ErrInvalidInput marks caller contract violations: wrong word or pattern
// length, characters outside A–Z, an empty or non-uniform candidate list.
var ErrInvalidInput = errors.New("solver: invalid input")

// ErrInconsistentState marks an internal logic fault: a fully pinned letter
// combination that does not exist in the original candidate set. This is a
// classifier/refine defect, not a user error.
var ErrInconsistentState = errors.New("solver: inconsistent state")

// Status is the evaluation result for a single letter of a guess.
type Status int8

const (
	// NotPresent: the letter does not occupy this position and carries no
	// further unaccounted occurrences (grey).
	NotPresent Status = iota
	// WrongPosition: the letter occurs in the answer but not here (yellow).
	WrongPosition
	// CorrectPosition: the letter is exactly here (green).
	CorrectPosition
)

// String renders the status using the wire names used by the HTTP layer.
func (s Status) String() string {
	switch s {
	case NotPresent:
		return "miss"
	case WrongPosition:
		return "present"
	case CorrectPosition:
		return "hit"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

// ParseStatus converts a wire name back into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "miss":
		return NotPresent, nil
	case "present":
		return WrongPosition, nil
	case "hit":
		return CorrectPosition, nil
	}
	return 0, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
}

// Pattern is aligned per-position feedback for one guess.
type Pattern []Status

// String renders a pattern as comma-separated status names.
func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// CandidateSet is the exhaustive pool of valid answer words, all of one
// length, all uppercase A–Z. It is built once and never mutated.
type CandidateSet struct {
	words  []string
	lookup map[string]struct{}
	length int
}

// NewCandidateSet validates and builds a candidate set.
// The list must be non-empty; every word must share the length of the first
// word and consist only of uppercase A–Z. Duplicates are collapsed, first
// occurrence wins.
func NewCandidateSet(words []string) (*CandidateSet, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty candidate list", ErrInvalidInput)
	}
	n := len(words[0])
	set := &CandidateSet{
		words:  make([]string, 0, len(words)),
		lookup: make(map[string]struct{}, len(words)),
		length: n,
	}
	for _, w := range words {
		if len(w) != n {
			return nil, fmt.Errorf("%w: word %q has length %d, want %d", ErrInvalidInput, w, len(w), n)
		}
		if !isUpperAlpha(w) {
			return nil, fmt.Errorf("%w: word %q is not uppercase A-Z", ErrInvalidInput, w)
		}
		if _, dup := set.lookup[w]; dup {
			continue
		}
		set.lookup[w] = struct{}{}
		set.words = append(set.words, w)
	}
	return set, nil
}

// Len reports the number of distinct candidate words.
func (s *CandidateSet) Len() int { return len(s.words) }

// WordLength reports n, the fixed word length of this set.
func (s *CandidateSet) WordLength() int { return s.length }

// Contains reports whether w is a member of the set.
func (s *CandidateSet) Contains(w string) bool {
	_, ok := s.lookup[w]
	return ok
}

// Words returns a copy of the candidate list in construction order.
func (s *CandidateSet) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// checkWord validates a word against this set's length and alphabet contract.
func (s *CandidateSet) checkWord(w string) error {
	return checkWord(w, s.length)
}

// checkWord validates length and A–Z membership for a word of expected length n.
func checkWord(w string, n int) error {
	if len(w) != n {
		return fmt.Errorf("%w: word %q has length %d, want %d", ErrInvalidInput, w, len(w), n)
	}
	if !isUpperAlpha(w) {
		return fmt.Errorf("%w: word %q is not uppercase A-Z", ErrInvalidInput, w)
	}
	return nil
}

// checkPattern validates a pattern's length and status values.
func checkPattern(p Pattern, n int) error {
	if len(p) != n {
		return fmt.Errorf("%w: pattern has length %d, want %d", ErrInvalidInput, len(p), n)
	}
	for i, st := range p {
		if st < NotPresent || st > CorrectPosition {
			return fmt.Errorf("%w: pattern slot %d holds invalid status %d", ErrInvalidInput, i, st)
		}
	}
	return nil
}

// isUpperAlpha reports whether s is all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// letterIndex maps an uppercase ASCII letter to 0..25.
// Assumes inputs are validated to A–Z elsewhere.
func letterIndex(b byte) int { return int(b - 'A') }
