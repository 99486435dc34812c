package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, words ...string) *CandidateSet {
	t.Helper()
	set, err := NewCandidateSet(words)
	require.NoError(t, err)
	return set
}

func mustState(t *testing.T, guess string, p Pattern) *ConstraintState {
	t.Helper()
	st, err := StateFromFeedback(guess, p)
	require.NoError(t, err)
	return st
}

func compatible(t *testing.T, st *ConstraintState, set *CandidateSet) []string {
	t.Helper()
	out, err := st.CompatibleWords(set)
	require.NoError(t, err)
	return out
}

func TestRefineCommutative(t *testing.T) {
	set := mustSet(t, "CRANE", "SLOTH", "TRACE", "CRATE", "BRACE", "GRACE", "PLUMB")
	a := mustState(t, "CRANE", Pattern{NotPresent, CorrectPosition, CorrectPosition, NotPresent, CorrectPosition})
	b := mustState(t, "SLOTH", Pattern{NotPresent, NotPresent, NotPresent, WrongPosition, NotPresent})

	ab, err := a.Refine(b)
	require.NoError(t, err)
	ba, err := b.Refine(a)
	require.NoError(t, err)

	assert.Equal(t, compatible(t, ab, set), compatible(t, ba, set))
}

func TestRefineIdempotent(t *testing.T) {
	set := mustSet(t, "CRANE", "TRACE", "CRATE", "BRACE", "GRACE")
	a := mustState(t, "CRANE", Pattern{NotPresent, CorrectPosition, CorrectPosition, NotPresent, CorrectPosition})

	aa, err := a.Refine(a)
	require.NoError(t, err)
	assert.Equal(t, compatible(t, a, set), compatible(t, aa, set))
}

func TestRefineAssociative(t *testing.T) {
	set := mustSet(t, "CRANE", "SLOTH", "TRACE", "CRATE", "BRACE", "GRACE", "PLUMB", "QUICK")
	a := mustState(t, "PLUMB", Pattern{NotPresent, NotPresent, NotPresent, NotPresent, NotPresent})
	b := mustState(t, "CRANE", Pattern{NotPresent, WrongPosition, WrongPosition, NotPresent, WrongPosition})
	c := mustState(t, "SLOTH", Pattern{NotPresent, NotPresent, NotPresent, WrongPosition, NotPresent})

	ab, err := a.Refine(b)
	require.NoError(t, err)
	abc1, err := ab.Refine(c)
	require.NoError(t, err)

	bc, err := b.Refine(c)
	require.NoError(t, err)
	abc2, err := a.Refine(bc)
	require.NoError(t, err)

	assert.Equal(t, compatible(t, abc1, set), compatible(t, abc2, set))
}

func TestRefineUnionsGuessedWords(t *testing.T) {
	a := mustState(t, "CRANE", make(Pattern, 5))
	b := mustState(t, "SLOTH", make(Pattern, 5))
	ab, err := a.Refine(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CRANE", "SLOTH"}, ab.Guessed())
}

func TestRefineContradictionIsVacuousNotError(t *testing.T) {
	set := mustSet(t, "CRANE", "SLOTH")
	// First observation says C is absent; second pins C at position 0.
	a := mustState(t, "CRANE", Pattern{NotPresent, NotPresent, NotPresent, NotPresent, NotPresent})
	b := mustState(t, "CRANE", Pattern{CorrectPosition, CorrectPosition, CorrectPosition, CorrectPosition, CorrectPosition})

	ab, err := a.Refine(b)
	require.NoError(t, err)
	assert.True(t, ab.Vacuous())
	assert.Empty(t, compatible(t, ab, set))
}

func TestRefineRejectsLengthMismatch(t *testing.T) {
	a := mustState(t, "AB", make(Pattern, 2))
	b := mustState(t, "CRANE", make(Pattern, 5))
	_, err := a.Refine(b)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompatibleWordsExcludesGuessed(t *testing.T) {
	set := mustSet(t, "CRANE", "TRACE", "CRATE")
	// All-present feedback for CRANE: anagram, but not CRANE itself.
	st := mustState(t, "CRANE", Pattern{WrongPosition, WrongPosition, WrongPosition, WrongPosition, WrongPosition})
	got := compatible(t, st, set)
	assert.NotContains(t, got, "CRANE")
}

func TestDeterminedWord(t *testing.T) {
	set := mustSet(t, "CRANE", "SLOTH")

	st := mustState(t, "CRANE", Pattern{CorrectPosition, CorrectPosition, CorrectPosition, CorrectPosition, CorrectPosition})
	w, ok, err := st.DeterminedWord(set)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CRANE", w)

	// A partially pinned state is simply undetermined.
	st = mustState(t, "CRANE", Pattern{CorrectPosition, NotPresent, NotPresent, NotPresent, NotPresent})
	_, ok, err = st.DeterminedWord(set)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeterminedWordInconsistent(t *testing.T) {
	// The state pins TRACE, but the candidate set never contained it.
	set := mustSet(t, "CRANE", "SLOTH")
	st := mustState(t, "TRACE", Pattern{CorrectPosition, CorrectPosition, CorrectPosition, CorrectPosition, CorrectPosition})
	_, _, err := st.DeterminedWord(set)
	assert.ErrorIs(t, err, ErrInconsistentState)
}

func TestMonotonicNarrowing(t *testing.T) {
	// Applying a guess's true feedback never grows the compatible set.
	set := mustSet(t, "CRANE", "SLOTH", "TRACE", "CRATE", "BRACE", "GRACE", "PLUMB", "QUICK", "SHARD", "AGREE")
	for _, answer := range set.Words() {
		st, err := NewConstraintState(set.WordLength())
		require.NoError(t, err)
		before := len(compatible(t, st, set))
		for _, guess := range []string{"CRANE", "SLOTH", "SHARD"} {
			fb, err := Feedback(guess, answer)
			require.NoError(t, err)
			obs := mustState(t, guess, fb)
			st, err = st.Refine(obs)
			require.NoError(t, err)

			after := len(compatible(t, st, set))
			assert.LessOrEqual(t, after, before, "answer %s guess %s", answer, guess)

			// The answer itself stays compatible unless it was the guess.
			if answer != guess {
				ok, err := st.IsCompatible(answer)
				require.NoError(t, err)
				assert.True(t, ok, "answer %s after guess %s", answer, guess)
			}
			before = after
		}
	}
}

func TestIsCompatibleRejectsBadWord(t *testing.T) {
	st := mustState(t, "CRANE", make(Pattern, 5))
	_, err := st.IsCompatible("FOUR")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnconstrainedStateMatchesEverything(t *testing.T) {
	set := mustSet(t, "CRANE", "SLOTH", "TRACE")
	st, err := NewConstraintState(5)
	require.NoError(t, err)
	assert.Equal(t, set.Words(), compatible(t, st, set))
	assert.False(t, st.Vacuous())
}
