// internal/solver/feedback.go
//
// Feedback computation: the pattern a guess receives against a known answer.
// Used by simulations and tests; the serving path receives patterns from the
// caller and never needs to know the answer.
//
// Implements the standard two-pass scoring algorithm:
//   Pass 1: mark exact matches (hits) and count the remaining answer letters.
//   Pass 2: for non-hit guess letters, mark present while unused letters
//           remain, otherwise miss.
//
// The two passes give correct behavior for repeated letters in both the
// answer and the guess.

package solver

// Feedback returns the pattern guess would receive if answer were the secret
// word. Both words must share length and the A–Z alphabet.
func Feedback(guess, answer string) (Pattern, error) {
	if err := checkWord(answer, len(answer)); err != nil {
		return nil, err
	}
	if err := checkWord(guess, len(answer)); err != nil {
		return nil, err
	}

	n := len(answer)
	out := make(Pattern, n)

	// Pass 1: hits, and counts of the non-hit answer letters.
	var counts [alphabetSize]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = CorrectPosition
		} else {
			counts[letterIndex(answer[i])]++
		}
	}

	// Pass 2: resolve presents/misses for the non-hit tiles.
	for i := 0; i < n; i++ {
		if out[i] == CorrectPosition {
			continue
		}
		j := letterIndex(guess[i])
		if counts[j] > 0 {
			out[i] = WrongPosition
			counts[j]--
		} else {
			out[i] = NotPresent
		}
	}
	return out, nil
}
