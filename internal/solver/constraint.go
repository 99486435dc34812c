// internal/solver/constraint.go
//
// ConstraintState: accumulated knowledge narrowing the candidate set.
// Holds, per position, the set of letters still allowed there (as a 26-bit
// mask); per letter, an inclusive occurrence-count range; and the set of
// words already guessed.
//
// States are immutable values. Refine always allocates a new state, so no
// locking is ever required. An empty allowed set at a position, or an empty
// count range for a letter, is a legal value meaning "zero compatible words",
// never an error.

package solver

import (
	"fmt"
	"math/bits"
	"strings"
)

// letterMask is a 26-bit set over A–Z, bit 0 = 'A'.
type letterMask uint32

const fullLetterMask letterMask = 1<<alphabetSize - 1

func (m letterMask) has(i int) bool { return m&(1<<uint(i)) != 0 }

func (m letterMask) count() int { return bits.OnesCount32(uint32(m)) }

// countRange is an inclusive [Lo, Hi] occurrence bound for one letter.
// Hi < Lo denotes an empty range.
type countRange struct {
	Lo, Hi int
}

// ConstraintState is an immutable constraint value for words of one length.
type ConstraintState struct {
	length  int
	allowed []letterMask
	counts  [alphabetSize]countRange
	guessed map[string]struct{}
}

// NewConstraintState returns the unconstrained state for words of length n:
// every letter allowed at every position, every count range [0, n], nothing
// guessed yet.
func NewConstraintState(n int) (*ConstraintState, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: word length %d, want > 0", ErrInvalidInput, n)
	}
	st := &ConstraintState{
		length:  n,
		allowed: make([]letterMask, n),
	}
	for pos := range st.allowed {
		st.allowed[pos] = fullLetterMask
	}
	for i := range st.counts {
		st.counts[i] = countRange{Lo: 0, Hi: n}
	}
	return st, nil
}

// Length reports the word length the state constrains.
func (st *ConstraintState) Length() int { return st.length }

// AllowedLetters returns the letters still allowed at pos, in alphabetical
// order. Out-of-range positions report the empty string.
func (st *ConstraintState) AllowedLetters(pos int) string {
	if pos < 0 || pos >= st.length {
		return ""
	}
	var b strings.Builder
	for i := 0; i < alphabetSize; i++ {
		if st.allowed[pos].has(i) {
			b.WriteByte(byte('A' + i))
		}
	}
	return b.String()
}

// CountRange reports the inclusive occurrence bounds for a letter.
// Letters outside A–Z report (0, 0).
func (st *ConstraintState) CountRange(letter byte) (lo, hi int) {
	if letter < 'A' || letter > 'Z' {
		return 0, 0
	}
	r := st.counts[letterIndex(letter)]
	return r.Lo, r.Hi
}

// Guessed returns the words already played, in no particular order.
func (st *ConstraintState) Guessed() []string {
	out := make([]string, 0, len(st.guessed))
	for w := range st.guessed {
		out = append(out, w)
	}
	return out
}

// IsCompatible reports whether word satisfies every positional allowed set
// and every per-letter count range.
func (st *ConstraintState) IsCompatible(word string) (bool, error) {
	if err := checkWord(word, st.length); err != nil {
		return false, err
	}
	var occ [alphabetSize]int
	for pos := 0; pos < len(word); pos++ {
		i := letterIndex(word[pos])
		if !st.allowed[pos].has(i) {
			return false, nil
		}
		occ[i]++
	}
	for i, r := range st.counts {
		if occ[i] < r.Lo || occ[i] > r.Hi {
			return false, nil
		}
	}
	return true, nil
}

// CompatibleWords filters the candidate set down to words compatible with
// this state, excluding words already guessed. The result preserves the
// set's construction order; the count is what matters to callers.
func (st *ConstraintState) CompatibleWords(set *CandidateSet) ([]string, error) {
	if set.WordLength() != st.length {
		return nil, fmt.Errorf("%w: candidate length %d, state length %d", ErrInvalidInput, set.WordLength(), st.length)
	}
	var out []string
	for _, w := range set.words {
		if _, played := st.guessed[w]; played {
			continue
		}
		ok, err := st.IsCompatible(w)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// DeterminedWord reports the single word this state pins down, if every
// position's allowed set holds exactly one letter. The implied word must
// exist in the original candidate set; if it does not, the state machinery
// has produced an impossible combination and ErrInconsistentState is
// returned. A state that is not fully pinned reports ok=false with no error.
func (st *ConstraintState) DeterminedWord(set *CandidateSet) (word string, ok bool, err error) {
	if set.WordLength() != st.length {
		return "", false, fmt.Errorf("%w: candidate length %d, state length %d", ErrInvalidInput, set.WordLength(), st.length)
	}
	buf := make([]byte, st.length)
	for pos, mask := range st.allowed {
		if mask.count() != 1 {
			return "", false, nil
		}
		buf[pos] = byte('A' + bits.TrailingZeros32(uint32(mask)))
	}
	w := string(buf)
	if !set.Contains(w) {
		return "", false, fmt.Errorf("%w: pinned word %q not in candidate set", ErrInconsistentState, w)
	}
	return w, true, nil
}

// Refine combines two states into one holding the knowledge of both:
// position-wise intersection of allowed sets, per-letter intersection of
// count ranges, union of guessed words. Commutative, associative, and
// idempotent; empty intersections are valid vacuous outcomes.
func (st *ConstraintState) Refine(other *ConstraintState) (*ConstraintState, error) {
	if other.length != st.length {
		return nil, fmt.Errorf("%w: refining length %d with length %d", ErrInvalidInput, st.length, other.length)
	}
	out := &ConstraintState{
		length:  st.length,
		allowed: make([]letterMask, st.length),
		guessed: make(map[string]struct{}, len(st.guessed)+len(other.guessed)),
	}
	for pos := range out.allowed {
		out.allowed[pos] = st.allowed[pos] & other.allowed[pos]
	}
	for i := range out.counts {
		out.counts[i] = countRange{
			Lo: max(st.counts[i].Lo, other.counts[i].Lo),
			Hi: min(st.counts[i].Hi, other.counts[i].Hi),
		}
	}
	for w := range st.guessed {
		out.guessed[w] = struct{}{}
	}
	for w := range other.guessed {
		out.guessed[w] = struct{}{}
	}
	return out, nil
}

// Vacuous reports whether the state can match no word at all: some position
// allows no letter, some letter's range is empty, or the minimum occurrence
// counts alone exceed the word length.
func (st *ConstraintState) Vacuous() bool {
	for _, mask := range st.allowed {
		if mask == 0 {
			return true
		}
	}
	totalLo := 0
	for _, r := range st.counts {
		if r.Hi < r.Lo {
			return true
		}
		totalLo += r.Lo
	}
	return totalLo > st.length
}
