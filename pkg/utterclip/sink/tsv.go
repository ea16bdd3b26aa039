// Package sink accumulates one tab-delimited metadata row per extracted clip.
package sink

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Header is the fixed column set, written once before any data row.
var Header = []string{"Identifier", "Parent WAV", "Word", "Start Time", "End Time", "Text"}

// Row is the provenance record for one extracted clip. StartSec/EndSec are the
// window actually sliced, padding included when the padded attempt succeeded.
type Row struct {
	ClipPath  string
	ParentWAV string
	Word      string
	StartSec  float64
	EndSec    float64
	Text      string
}

// TSV is an append-only tab-delimited metadata file. Opening truncates any
// previous run's output; rows appear in append order and are flushed per call.
type TSV struct {
	f *os.File
	w *csv.Writer
}

func Open(path string) (*TSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating metadata file %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	w.Comma = '\t'
	return &TSV{f: f, w: w}, nil
}

func (t *TSV) WriteHeader() error {
	if err := t.w.Write(Header); err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}

func (t *TSV) Append(r Row) error {
	record := []string{
		r.ClipPath,
		r.ParentWAV,
		r.Word,
		formatSeconds(r.StartSec),
		formatSeconds(r.EndSec),
		r.Text,
	}
	if err := t.w.Write(record); err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}

func (t *TSV) Close() error {
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		t.f.Close()
		return err
	}
	return t.f.Close()
}

// formatSeconds renders at millisecond precision, the resolution of the
// source timestamps, so padded windows print as 0.8 rather than float noise.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'g', -1, 64)
}
