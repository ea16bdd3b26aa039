package transcript

import (
	"slices"
	"testing"
)

func collect(records []Record, vocabulary []string) []Match {
	var matches []Match
	for m := range Scan(records, vocabulary) {
		matches = append(matches, m)
	}
	return matches
}

func TestScanSubstringContainment(t *testing.T) {
	records := []Record{{StartSec: 0, EndSec: 1, Text: "we concatenate strings"}}

	matches := collect(records, []string{"cat"})
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Word != "cat" {
		t.Errorf("Expected match word 'cat', got %q", matches[0].Word)
	}
}

func TestScanCaseInsensitiveText(t *testing.T) {
	records := []Record{{Text: "This Is A TEST"}}

	matches := collect(records, []string{"test"})
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
}

func TestScanMultipleWordsPerRecord(t *testing.T) {
	records := []Record{{Text: "the quick brown fox"}}

	matches := collect(records, []string{"fox", "quick", "missing"})
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	// Events come out in vocabulary order, not text order.
	if matches[0].Word != "fox" || matches[1].Word != "quick" {
		t.Errorf("Expected matches in vocabulary order [fox quick], got [%s %s]", matches[0].Word, matches[1].Word)
	}
}

func TestScanRecordOrder(t *testing.T) {
	records := []Record{
		{StartSec: 0, Text: "alpha"},
		{StartSec: 1, Text: "no hit"},
		{StartSec: 2, Text: "alpha again"},
	}

	matches := collect(records, []string{"alpha"})
	var starts []float64
	for _, m := range matches {
		starts = append(starts, m.Record.StartSec)
	}
	if !slices.Equal(starts, []float64{0, 2}) {
		t.Errorf("Expected matches from records [0 2], got %v", starts)
	}
}

func TestScanDuplicateVocabularyEntries(t *testing.T) {
	records := []Record{{Text: "test"}}

	matches := collect(records, []string{"test", "test"})
	if len(matches) != 2 {
		t.Errorf("Expected duplicate vocabulary entries to yield duplicate events, got %d", len(matches))
	}
}

func TestScanStopsWhenConsumerBreaks(t *testing.T) {
	records := []Record{{Text: "test one"}, {Text: "test two"}}

	count := 0
	for range Scan(records, []string{"test"}) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Expected iteration to stop after break, consumed %d", count)
	}
}

func TestScanEmptyVocabulary(t *testing.T) {
	records := []Record{{Text: "anything"}}

	if matches := collect(records, nil); len(matches) != 0 {
		t.Errorf("Expected no matches with empty vocabulary, got %d", len(matches))
	}
}
