// internal/words/words.go
//
// Candidate word-list management for the solver engine.
//
// Responsibilities:
//   - Load the candidate list from an environment-provided file or fall back
//     to the embedded default list.
//   - Normalize entries to uppercase 5-letter alphabetic words.
//   - Supply the list, a stable fingerprint for keying persisted score
//     tables, and Stats for diagnostics.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load candidates from that file.
//   2. Otherwise fall back to the embedded default list in assets.
//
// Environment variables:
//   WORDS_FILE=/path/to/candidates.txt
//
// Constraints:
//   • Words must be 5 alphabetic letters; anything else on a line is dropped.
//   • Lists are normalized to uppercase (the solver's alphabet is A–Z).
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle-solver/assets"
)

const wordLength = 5

var (
	initOnce    sync.Once
	candidates  []string
	fingerprint string
	initialErr  error
)

// Init loads the candidate list exactly once.
// Returns an error if the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			defaults, err := assets.DefaultCandidates()
			if err != nil {
				initialErr = err
				return
			}
			list = normalize(defaults)
		}

		if len(list) == 0 {
			initialErr = errors.New("words: candidate list is empty")
			return
		}
		candidates = list
		fingerprint = computeFingerprint(list)
	})
	return initialErr
}

// readWordFile loads one word per line, uppercases, trims, and keeps only
// valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeWord(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalize filters a raw list down to valid uppercase candidates.
func normalize(lines []string) []string {
	var out []string
	for _, line := range lines {
		if w, ok := normalizeWord(line); ok {
			out = append(out, w)
		}
	}
	return out
}

// normalizeWord trims and uppercases a single entry, reporting whether it is
// a valid candidate.
func normalizeWord(s string) (string, bool) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) != wordLength {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", false
		}
	}
	return w, true
}

// computeFingerprint hashes the candidate list in order. Persisted score
// tables are keyed by this value so stale tables are never served for a
// different list.
func computeFingerprint(list []string) string {
	h := sha256.New()
	for _, w := range list {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Candidates returns the loaded candidate list.
func Candidates() []string {
	return candidates
}

// Fingerprint returns the stable hash of the loaded list.
func Fingerprint() string {
	return fingerprint
}

// Stats returns the number of loaded candidate words.
func Stats() int {
	return len(candidates)
}
