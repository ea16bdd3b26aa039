package transcript

import (
	"iter"
	"strings"
)

// Match pairs a transcript record with one vocabulary word found in its text.
type Match struct {
	Record Record
	Word   string
}

// Scan yields one Match per (record, word) pair where the word occurs in the
// lower-cased record text. Matching is substring containment, not word-bound:
// "cat" matches "concatenate". Records are visited in input order and words in
// vocabulary order, so a record matching several words yields several events.
// The sequence is lazy and one-shot; rescan by calling Scan again.
func Scan(records []Record, vocabulary []string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for _, rec := range records {
			text := strings.ToLower(rec.Text)
			for _, word := range vocabulary {
				if !strings.Contains(text, word) {
					continue
				}
				if !yield(Match{Record: rec, Word: word}) {
					return
				}
			}
		}
	}
}
