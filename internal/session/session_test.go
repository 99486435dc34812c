package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

func newSet(t *testing.T, ws ...string) *solver.CandidateSet {
	t.Helper()
	set, err := solver.NewCandidateSet(ws)
	require.NoError(t, err)
	return set
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := New(0)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Length)
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.History)

	other, err := New(0)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestApplyRefinesState(t *testing.T) {
	set := newSet(t, "CRANE", "SLOTH", "TRACE", "CRATE")
	s, err := New(5)
	require.NoError(t, err)

	before, err := s.State.CompatibleWords(set)
	require.NoError(t, err)
	assert.Len(t, before, 4)

	fb, err := solver.Feedback("SLOTH", "CRANE")
	require.NoError(t, err)
	_, err = s.Apply("SLOTH", fb)
	require.NoError(t, err)

	after, err := s.State.CompatibleWords(set)
	require.NoError(t, err)
	assert.Less(t, len(after), len(before))
	assert.Contains(t, after, "CRANE")
	assert.Len(t, s.History, 1)
}

func TestApplyInvalidLeavesSessionUntouched(t *testing.T) {
	s, err := New(5)
	require.NoError(t, err)
	prev := s.State

	_, err = s.Apply("TOO", solver.Pattern{0, 0, 0})
	assert.ErrorIs(t, err, solver.ErrInvalidInput)
	assert.Same(t, prev, s.State)
	assert.Empty(t, s.History)
}

func TestEvaluateSolved(t *testing.T) {
	set := newSet(t, "CRANE", "SLOTH")
	s, err := New(5)
	require.NoError(t, err)

	fb, err := solver.Feedback("CRANE", "CRANE")
	require.NoError(t, err)
	_, err = s.Apply("CRANE", fb)
	require.NoError(t, err)

	out, err := s.Evaluate(set)
	require.NoError(t, err)
	assert.True(t, out.Solved)
	assert.Equal(t, "CRANE", out.Determined)
	assert.False(t, out.Vacuous)
}

func TestEvaluateVacuous(t *testing.T) {
	set := newSet(t, "CRANE", "TRACE")
	s, err := New(5)
	require.NoError(t, err)

	// Feedback that rules out every candidate: none of these letters exist.
	_, err = s.Apply("CRANE", solver.Pattern{0, 0, 0, 0, 0})
	require.NoError(t, err)

	out, err := s.Evaluate(set)
	require.NoError(t, err)
	assert.True(t, out.Vacuous)
	assert.False(t, out.Solved)
	assert.Empty(t, out.Compatible)
}
