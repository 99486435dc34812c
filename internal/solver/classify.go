// internal/solver/classify.go
//
// Feedback classification: turning one observed (guess, pattern) pair into
// the constraint state consistent with exactly that observation.
//
// Repeated letters are the hard case. A letter can appear three times in one
// guess with one hit, one present, and one miss; naive per-occurrence set
// subtraction gets this wrong. The classifier instead derives per-letter
// minimum and maximum occurrence counts from the whole guess:
//
//   minCount[L] = occurrences of L marked hit or present.
//   maxCount[L] = minCount[L] when any occurrence of L is marked miss
//                 (the exact count is then known); otherwise
//                 minCount[L] + (n − Σ minCount over the other letters),
//                 bounding L by the guess's unexplained positions.
//
// A letter whose maximum is fully accounted for by its hit positions
// ("achieved max") cannot appear at any open slot, so it is removed from the
// allowed set of every non-hit position.
//
// The achieved-max test inspects only hit occurrences in the current guess;
// it does not run a secondary feasibility pass over positions excluded by
// earlier guesses. That keeps single-observation classification local and is
// validated against the reference scenarios rather than claimed tight in
// general.

package solver

// StateFromFeedback builds the constraint state implied by observing pattern
// as the feedback for guess.
func StateFromFeedback(guess string, pattern Pattern) (*ConstraintState, error) {
	if err := checkWord(guess, len(guess)); err != nil {
		return nil, err
	}
	if err := checkPattern(pattern, len(guess)); err != nil {
		return nil, err
	}
	n := len(guess)

	var (
		minCount [alphabetSize]int
		hitCount [alphabetSize]int
		missSeen [alphabetSize]bool
		inGuess  [alphabetSize]bool
		totalMin int
	)
	for pos := 0; pos < n; pos++ {
		i := letterIndex(guess[pos])
		inGuess[i] = true
		switch pattern[pos] {
		case CorrectPosition:
			minCount[i]++
			hitCount[i]++
			totalMin++
		case WrongPosition:
			minCount[i]++
			totalMin++
		case NotPresent:
			missSeen[i] = true
		}
	}

	// Maximum occurrence bound per letter. A miss pins the count exactly;
	// otherwise the letter is bounded by the positions not explained by the
	// other letters' minimums.
	var maxCount [alphabetSize]int
	for i := 0; i < alphabetSize; i++ {
		if missSeen[i] {
			maxCount[i] = minCount[i]
			continue
		}
		otherMin := totalMin - minCount[i]
		maxCount[i] = minCount[i] + (n - otherMin)
	}

	// A letter with no unplaced occurrences left cannot show up at any open
	// position.
	var achievedMax [alphabetSize]bool
	for i := 0; i < alphabetSize; i++ {
		achievedMax[i] = inGuess[i] && maxCount[i] == hitCount[i]
	}

	st := &ConstraintState{
		length:  n,
		allowed: make([]letterMask, n),
		guessed: map[string]struct{}{guess: {}},
	}
	for pos := 0; pos < n; pos++ {
		if pattern[pos] == CorrectPosition {
			st.allowed[pos] = 1 << uint(letterIndex(guess[pos]))
			continue
		}
		mask := fullLetterMask
		mask &^= 1 << uint(letterIndex(guess[pos]))
		for i := 0; i < alphabetSize; i++ {
			if achievedMax[i] {
				mask &^= 1 << uint(i)
			}
		}
		st.allowed[pos] = mask
	}
	for i := 0; i < alphabetSize; i++ {
		st.counts[i] = countRange{Lo: minCount[i], Hi: maxCount[i]}
	}
	return st, nil
}
