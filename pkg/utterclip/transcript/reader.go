// Package transcript reads Whisper-style tab-separated transcripts and scans
// their rows for vocabulary matches.
package transcript

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Record is one time-aligned transcript row. Times are in seconds, converted
// from the millisecond columns of the source file.
type Record struct {
	StartSec float64
	EndSec   float64
	Text     string
}

// ParseError reports a transcript row that could not be parsed. It aborts the
// whole run; there is no per-row recovery.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("transcript %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadFile parses a tab-separated transcript file. The first row is a header
// and is skipped; remaining rows are (start_ms, end_ms, text).
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transcript %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if len(row) < 3 {
			return nil, &ParseError{Path: path, Line: line, Err: fmt.Errorf("expected 3 columns, got %d", len(row))}
		}
		startMs, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Err: fmt.Errorf("start timestamp %q: %w", row[0], err)}
		}
		endMs, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Err: fmt.Errorf("end timestamp %q: %w", row[1], err)}
		}
		records = append(records, Record{
			StartSec: startMs / 1000,
			EndSec:   endMs / 1000,
			Text:     row[2],
		})
	}
	return records, nil
}
