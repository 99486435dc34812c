package solver

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceSet loads the full reference guess list (the 12966-word Wordle
// list) from SOLVER_REFERENCE_WORDS. The list is too large to ship in the
// repo, so these scenarios run only when the file is configured.
func referenceSet(t *testing.T) *CandidateSet {
	t.Helper()
	path := os.Getenv("SOLVER_REFERENCE_WORDS")
	if path == "" {
		t.Skip("SOLVER_REFERENCE_WORDS not set; skipping reference scenarios")
	}
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if len(w) == 5 && isUpperAlpha(w) {
			words = append(words, w)
		}
	}
	require.NoError(t, sc.Err())

	set, err := NewCandidateSet(words)
	require.NoError(t, err)
	require.Equal(t, 12966, set.Len(), "reference list size")
	return set
}

func TestReferenceWearyNarrowing(t *testing.T) {
	set := referenceSet(t)

	st := mustState(t, "WEARY", Pattern{NotPresent, CorrectPosition, CorrectPosition, WrongPosition, NotPresent})
	assert.Len(t, compatible(t, st, set), 18)

	st = mustState(t, "WEARY", Pattern{NotPresent, NotPresent, NotPresent, NotPresent, NotPresent})
	assert.Len(t, compatible(t, st, set), 1844)
}

func TestReferenceWearyInformation(t *testing.T) {
	set := referenceSet(t)
	scorer, err := NewEntropyScorer(set)
	require.NoError(t, err)

	st := mustState(t, "WEARY", Pattern{CorrectPosition, NotPresent, NotPresent, WrongPosition, CorrectPosition})
	words := compatible(t, st, set)
	assert.Len(t, words, 3)

	p, err := scorer.Probability(st)
	require.NoError(t, err)
	assert.InDelta(t, 3.0/12966.0, p, 1e-12)

	info, err := scorer.Information(st)
	require.NoError(t, err)
	assert.InDelta(t, 12.08, info, 0.005)
}

func TestReferenceWearyExpectedInformation(t *testing.T) {
	set := referenceSet(t)
	scorer, err := NewEntropyScorer(set)
	require.NoError(t, err)

	bits, err := scorer.ExpectedInformation("WEARY")
	require.NoError(t, err)
	assert.InDelta(t, 4.90, bits, 0.005)
}
