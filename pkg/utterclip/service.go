package utterclip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ashwelk/utterclip/pkg/logger"
	"github.com/ashwelk/utterclip/pkg/utils"
	"github.com/ashwelk/utterclip/pkg/utterclip/audio"
	"github.com/ashwelk/utterclip/pkg/utterclip/sink"
	"github.com/ashwelk/utterclip/pkg/utterclip/transcript"
	"github.com/ashwelk/utterclip/pkg/utterclip/vocab"
)

// extractService is the default implementation of the Service interface.
type extractService struct {
	config  *Config
	catalog Catalog
	log     Logger
	runID   string
}

func NewService(opts ...Option) (Service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	if info, err := os.Stat(cfg.CorpusDir); err != nil || !info.IsDir() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("corpus directory %s not found", cfg.CorpusDir)}
	}

	if len(cfg.Vocabulary) == 0 && cfg.VocabularyPath != "" {
		words, err := vocab.Load(cfg.VocabularyPath)
		if err != nil {
			return nil, &ConfigurationError{Reason: err.Error()}
		}
		cfg.Vocabulary = words
	}
	if len(cfg.Vocabulary) == 0 {
		return nil, &ConfigurationError{Reason: "vocabulary is empty"}
	}

	cat := cfg.Catalog
	if cat == nil {
		var err error
		cat, err = NewSQLiteCatalog(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
	}

	return &extractService{
		config:  cfg,
		catalog: cat,
		log:     cfg.Logger,
		runID:   uuid.NewString(),
	}, nil
}

// Extract runs one full pass over the corpus. The clip identifier counter is
// explicit state threaded through processTranscript, shared across all
// transcript files and never reset.
func (s *extractService) Extract(ctx context.Context) (int, error) {
	_ = ctx // run-to-completion model; no cancellation points

	if err := utils.MakeDir(s.config.OutputDir); err != nil {
		return 0, fmt.Errorf("creating output directory %s: %w", s.config.OutputDir, err)
	}

	transcripts, err := s.discoverTranscripts()
	if err != nil {
		return 0, err
	}
	s.log.Infof("Run %s: %d transcript file(s) in %s, %d target word(s)",
		s.runID, len(transcripts), s.config.CorpusDir, len(s.config.Vocabulary))

	snk, err := sink.Open(s.config.MetadataPath)
	if err != nil {
		return 0, err
	}
	defer snk.Close()

	if err := snk.WriteHeader(); err != nil {
		return 0, fmt.Errorf("writing metadata header: %w", err)
	}

	nextID := 0
	for _, tsvPath := range transcripts {
		nextID, err = s.processTranscript(tsvPath, snk, nextID)
		if err != nil {
			return nextID, err
		}
	}

	s.log.Infof("Run %s complete: %d clip(s) extracted", s.runID, nextID)
	return nextID, nil
}

// discoverTranscripts lists the corpus directory's transcript files.
// os.ReadDir returns entries sorted by name, which fixes the file iteration
// order and therefore the identifier assignment order.
func (s *extractService) discoverTranscripts() ([]string, error) {
	entries, err := os.ReadDir(s.config.CorpusDir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory %s: %w", s.config.CorpusDir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != s.config.TranscriptExt {
			continue
		}
		paths = append(paths, filepath.Join(s.config.CorpusDir, e.Name()))
	}
	return paths, nil
}

// processTranscript pairs one transcript with its waveform, scans it, and
// extracts a clip per match. It takes the next free clip identifier and
// returns the value after its extractions, so the increment is an explicit
// state transition rather than ambient state.
func (s *extractService) processTranscript(tsvPath string, snk *sink.TSV, nextID int) (int, error) {
	base := filepath.Base(tsvPath)
	stem := strings.TrimSuffix(base, s.config.TranscriptExt)
	wavPath := filepath.Join(s.config.CorpusDir, stem+s.config.WaveformExt)
	if _, err := os.Stat(wavPath); err != nil {
		return nextID, &PairingError{Transcript: tsvPath, Waveform: wavPath}
	}

	records, err := transcript.ReadFile(tsvPath)
	if err != nil {
		return nextID, err
	}
	s.log.Infof("Scanning %s: %d row(s)", base, len(records))

	for match := range transcript.Scan(records, s.config.Vocabulary) {
		clipPath := filepath.Join(s.config.OutputDir, fmt.Sprintf("chunk_%d.wav", nextID))

		start, end, err := s.extractClip(wavPath, match.Record, clipPath)
		if err != nil {
			return nextID, err
		}

		digest, err := utils.Blake3File(clipPath)
		if err != nil {
			s.log.Warnf("Failed to hash %s: %v", clipPath, err)
		}

		err = snk.Append(sink.Row{
			ClipPath:  clipPath,
			ParentWAV: wavPath,
			Word:      match.Word,
			StartSec:  start,
			EndSec:    end,
			Text:      match.Record.Text,
		})
		if err != nil {
			return nextID, fmt.Errorf("appending metadata row %d: %w", nextID, err)
		}

		err = s.catalog.RecordClip(ClipRecord{
			RunID:     s.runID,
			ClipID:    nextID,
			Path:      clipPath,
			ParentWAV: wavPath,
			Word:      match.Word,
			StartSec:  start,
			EndSec:    end,
			Text:      match.Record.Text,
			Digest:    digest,
		})
		if err != nil {
			return nextID, err
		}

		s.log.Debugf("Clip %d: %q in [%.3f, %.3f] of %s", nextID, match.Word, start, end, wavPath)
		nextID++
	}
	return nextID, nil
}

// extractClip applies the padding policy: slice the window expanded by
// PaddingSec on both sides, and if that attempt fails range validation retry
// once with the exact window. Any other error, or a failed retry, aborts the
// run. Returns the window actually sliced.
func (s *extractService) extractClip(wavPath string, rec transcript.Record, clipPath string) (float64, float64, error) {
	padStart := rec.StartSec - s.config.PaddingSec
	padEnd := rec.EndSec + s.config.PaddingSec

	err := audio.Slice(wavPath, padStart, padEnd, clipPath)
	if err == nil {
		return padStart, padEnd, nil
	}

	var rangeErr *audio.RangeError
	if !errors.As(err, &rangeErr) {
		return 0, 0, err
	}

	s.log.Debugf("Padded window [%.3f, %.3f] out of range for %s, retrying exact window", padStart, padEnd, wavPath)
	if err := audio.Slice(wavPath, rec.StartSec, rec.EndSec, clipPath); err != nil {
		return 0, 0, err
	}
	return rec.StartSec, rec.EndSec, nil
}

func (s *extractService) Close() error {
	return s.catalog.Close()
}
