// internal/solver/frequency.go
//
// Positional letter-frequency model over a candidate set.
// One counting pass at construction; scoring a word is then a cheap sum of
// per-position letter counts. A high sum means the word's letters sit where
// many candidates have theirs.
//
// Invariant: for every position, the counts over all letters sum to the size
// of the candidate set.

package solver

// FrequencyModel holds per-position letter counts for one candidate set.
// Stateless after construction; safe for concurrent reads.
type FrequencyModel struct {
	counts []([alphabetSize]int) // counts[pos][letter]
	length int
	size   int
}

// NewFrequencyModel counts letters by position over the candidate set.
func NewFrequencyModel(set *CandidateSet) *FrequencyModel {
	m := &FrequencyModel{
		counts: make([]([alphabetSize]int), set.WordLength()),
		length: set.WordLength(),
		size:   set.Len(),
	}
	for _, w := range set.words {
		for pos := 0; pos < len(w); pos++ {
			m.counts[pos][letterIndex(w[pos])]++
		}
	}
	return m
}

// Count reports how many candidates hold letter at pos.
// Out-of-range arguments report 0.
func (m *FrequencyModel) Count(pos int, letter byte) int {
	if pos < 0 || pos >= m.length || letter < 'A' || letter > 'Z' {
		return 0
	}
	return m.counts[pos][letterIndex(letter)]
}

// Score sums the per-position counts of the word's letters.
func (m *FrequencyModel) Score(word string) (int, error) {
	if err := checkWord(word, m.length); err != nil {
		return 0, err
	}
	total := 0
	for pos := 0; pos < len(word); pos++ {
		total += m.counts[pos][letterIndex(word[pos])]
	}
	return total, nil
}

// Size reports the candidate-set size the model was counted over.
func (m *FrequencyModel) Size() int { return m.size }

// Length reports the fixed word length.
func (m *FrequencyModel) Length() int { return m.length }
