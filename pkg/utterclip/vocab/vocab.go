// Package vocab loads the target word list used to match transcript text.
//
// Entries are lower-cased at load time so that matching against lower-cased
// transcript text is symmetric; an uppercase entry in the file would otherwise
// never match anything.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a word list, one word per line, trailing whitespace stripped.
// Blank lines are skipped. Entries keep their file order, which is also the
// order the scanner tests them in.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimRight(sc.Text(), " \t\r")
		if word == "" {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return words, nil
}
