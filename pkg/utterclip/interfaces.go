package utterclip

import "context"

// Service drives one extraction run: scan every transcript in the corpus
// directory, slice matching utterances out of the paired WAV files, and
// record provenance for each clip.
type Service interface {
	// Extract runs the pipeline and returns the total number of clips
	// written. The run is strictly sequential and aborts on the first
	// unrecovered error; partial outputs remain on disk.
	Extract(ctx context.Context) (int, error)
	Close() error
}

// ClipRecord is the provenance row handed to the catalog per extracted clip.
type ClipRecord struct {
	RunID     string
	ClipID    int
	Path      string
	ParentWAV string
	Word      string
	StartSec  float64
	EndSec    float64
	Text      string
	Digest    string
}

// Catalog stores clip provenance durably across runs.
type Catalog interface {
	RecordClip(rec ClipRecord) error
	Close() error
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}
