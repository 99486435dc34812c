package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternEnumeratorCountAndDistinct(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		enum, err := NewPatternEnumerator(n)
		require.NoError(t, err)

		want := 1
		for i := 0; i < n; i++ {
			want *= 3
		}
		patterns := enum.Patterns()
		assert.Equal(t, want, enum.Count())
		assert.Len(t, patterns, want)

		seen := make(map[string]struct{}, want)
		for _, p := range patterns {
			assert.Len(t, p, n)
			seen[p.String()] = struct{}{}
		}
		assert.Len(t, seen, want, "patterns must be distinct for n=%d", n)
	}
}

func TestPatternEnumeratorDeterministic(t *testing.T) {
	a, err := NewPatternEnumerator(3)
	require.NoError(t, err)
	b, err := NewPatternEnumerator(3)
	require.NoError(t, err)
	assert.Equal(t, a.Patterns(), b.Patterns())

	// Base-3 expansion: code 0 is all misses, code 1 flips the first slot.
	assert.Equal(t, Pattern{NotPresent, NotPresent, NotPresent}, a.Patterns()[0])
	assert.Equal(t, Pattern{WrongPosition, NotPresent, NotPresent}, a.Patterns()[1])
	assert.Equal(t, Pattern{CorrectPosition, CorrectPosition, CorrectPosition}, a.Patterns()[a.Count()-1])
}

func TestPatternEnumeratorRejectsBadLength(t *testing.T) {
	_, err := NewPatternEnumerator(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewPatternEnumerator(-3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseStatusRoundTrip(t *testing.T) {
	for _, st := range []Status{NotPresent, WrongPosition, CorrectPosition} {
		got, err := ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	_, err := ParseStatus("green")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
