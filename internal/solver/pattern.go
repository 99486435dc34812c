// internal/solver/pattern.go
//
// Exhaustive enumeration of feedback patterns.
// A PatternEnumerator produces every length-n sequence over the three
// statuses (exactly 3^n distinct patterns) by iterative base-3 digit
// expansion. The full list is generated once at construction and shared
// read-only afterwards.

package solver

import "fmt"

// PatternEnumerator holds the cached pattern space for one word length.
type PatternEnumerator struct {
	length   int
	patterns []Pattern
}

// NewPatternEnumerator builds the complete pattern space for words of
// length n. n must be positive.
func NewPatternEnumerator(n int) (*PatternEnumerator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: pattern length %d, want > 0", ErrInvalidInput, n)
	}
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	patterns := make([]Pattern, total)
	for code := 0; code < total; code++ {
		p := make(Pattern, n)
		rest := code
		for pos := 0; pos < n; pos++ {
			p[pos] = Status(rest % 3)
			rest /= 3
		}
		patterns[code] = p
	}
	return &PatternEnumerator{length: n, patterns: patterns}, nil
}

// Length reports the word length the enumerator was built for.
func (e *PatternEnumerator) Length() int { return e.length }

// Count reports the size of the pattern space, 3^n.
func (e *PatternEnumerator) Count() int { return len(e.patterns) }

// Patterns returns the cached pattern list in enumeration order.
// Callers must treat the result as read-only.
func (e *PatternEnumerator) Patterns() []Pattern { return e.patterns }
