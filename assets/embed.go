package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed default_candidates.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DefaultCandidates returns the embedded fallback candidate list, used when
// no WORDS_FILE is configured.
func DefaultCandidates() ([]string, error) {
	return readLines("default_candidates.txt")
}
