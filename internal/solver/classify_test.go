package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReflexive(t *testing.T) {
	// A guess must be compatible with the state built from the feedback it
	// would receive if it were itself the secret word.
	for _, w := range []string{"CRANE", "GEESE", "SASSY", "LLAMA"} {
		fb, err := Feedback(w, w)
		require.NoError(t, err)
		st, err := StateFromFeedback(w, fb)
		require.NoError(t, err)
		ok, err := st.IsCompatible(w)
		require.NoError(t, err)
		assert.True(t, ok, "%s must satisfy its own all-hit state", w)
	}
}

func TestClassifyAllHitsPinsPositions(t *testing.T) {
	fb, err := Feedback("CRANE", "CRANE")
	require.NoError(t, err)
	st, err := StateFromFeedback("CRANE", fb)
	require.NoError(t, err)
	for pos, want := range []string{"C", "R", "A", "N", "E"} {
		assert.Equal(t, want, st.AllowedLetters(pos))
	}
	assert.Equal(t, []string{"CRANE"}, st.Guessed())
}

func TestClassifyRepeatedLetterMixedStatuses(t *testing.T) {
	// GEESE against AGREE: E occurs three times in the guess with one hit,
	// one present, and one miss. The miss pins E's count exactly at two.
	fb, err := Feedback("GEESE", "AGREE")
	require.NoError(t, err)
	st, err := StateFromFeedback("GEESE", fb)
	require.NoError(t, err)

	lo, hi := st.CountRange('E')
	assert.Equal(t, 2, lo)
	assert.Equal(t, 2, hi)

	lo, hi = st.CountRange('S')
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)

	lo, _ = st.CountRange('G')
	assert.Equal(t, 1, lo)

	// S achieved its max (zero occurrences): no open slot may take it.
	for pos := 0; pos < 4; pos++ {
		assert.NotContains(t, st.AllowedLetters(pos), "S", "position %d", pos)
	}
	// The hit position stays pinned to E.
	assert.Equal(t, "E", st.AllowedLetters(4))

	ok, err := st.IsCompatible("AGREE")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClassifyHitAndMissSameLetter(t *testing.T) {
	// SASSY against SHARD: S hits at position 0 and misses at 2 and 3, so
	// the single S is fully placed and excluded from every open slot.
	fb, err := Feedback("SASSY", "SHARD")
	require.NoError(t, err)
	st, err := StateFromFeedback("SASSY", fb)
	require.NoError(t, err)

	lo, hi := st.CountRange('S')
	assert.Equal(t, 1, lo)
	assert.Equal(t, 1, hi)

	assert.Equal(t, "S", st.AllowedLetters(0))
	for pos := 1; pos < 5; pos++ {
		allowed := st.AllowedLetters(pos)
		assert.NotContains(t, allowed, "S", "position %d", pos)
		assert.NotContains(t, allowed, "Y", "position %d", pos)
	}

	ok, err := st.IsCompatible("SHARD")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClassifyYellowExcludesOwnPosition(t *testing.T) {
	st, err := StateFromFeedback("AB", Pattern{WrongPosition, WrongPosition})
	require.NoError(t, err)

	assert.False(t, strings.Contains(st.AllowedLetters(0), "A"))
	assert.False(t, strings.Contains(st.AllowedLetters(1), "B"))

	ok, err := st.IsCompatible("BA")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClassifyRejectsBadInput(t *testing.T) {
	_, err := StateFromFeedback("crane", make(Pattern, 5))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = StateFromFeedback("CRANE", make(Pattern, 4))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = StateFromFeedback("CRANE", Pattern{0, 0, 0, 0, 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
