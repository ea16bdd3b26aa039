package utterclip

import "fmt"

// ConfigurationError reports a run that cannot start: missing corpus
// directory, missing word list, or an empty vocabulary. Surfaced before any
// processing happens.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// PairingError reports a transcript file with no corresponding waveform file.
// It aborts the run; there is no skip-and-continue.
type PairingError struct {
	Transcript string
	Waveform   string
}

func (e *PairingError) Error() string {
	return fmt.Sprintf("transcript %s has no waveform file %s", e.Transcript, e.Waveform)
}
