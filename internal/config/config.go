// Package config loads the run configuration for the extraction pipeline.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the TOML-backed run configuration. Every field has a default, so
// an absent config file yields a runnable setup matching the original corpus
// layout (audio_data/, word_list.txt, audio_excerpts/, output.tsv).
type Config struct {
	// CorpusDir holds transcript files and their identically named WAVs.
	CorpusDir string `toml:"corpus_dir"`
	// OutputDir receives extracted clips. Never cleared automatically.
	OutputDir      string  `toml:"output_dir"`
	VocabularyPath string  `toml:"vocabulary_path"`
	MetadataPath   string  `toml:"metadata_path"`
	DBPath         string  `toml:"db_path"`
	PaddingSec     float64 `toml:"padding_sec"`
	TranscriptExt  string  `toml:"transcript_ext"`
	WaveformExt    string  `toml:"waveform_ext"`
}

func Default() Config {
	return Config{
		CorpusDir:      "audio_data",
		OutputDir:      "audio_excerpts",
		VocabularyPath: "word_list.txt",
		MetadataPath:   "output.tsv",
		DBPath:         "utterclip.sqlite3",
		PaddingSec:     0.2,
		TranscriptExt:  ".tsv",
		WaveformExt:    ".wav",
	}
}

// Load reads a TOML config file over the defaults and applies environment
// overrides. A missing file at the default path is not an error; a missing
// file at an explicitly given path is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// fall through with defaults
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("UTTERCLIP_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("UTTERCLIP_CORPUS_DIR"); v != "" {
		c.CorpusDir = v
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.CorpusDir == "" {
		return errors.New("corpus_dir is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	if c.VocabularyPath == "" {
		return errors.New("vocabulary_path is required")
	}
	if c.MetadataPath == "" {
		return errors.New("metadata_path is required")
	}
	if c.PaddingSec < 0 {
		return fmt.Errorf("padding_sec must be >= 0, got %g", c.PaddingSec)
	}
	if !strings.HasPrefix(c.TranscriptExt, ".") {
		return fmt.Errorf("transcript_ext must start with a dot, got %q", c.TranscriptExt)
	}
	if !strings.HasPrefix(c.WaveformExt, ".") {
		return fmt.Errorf("waveform_ext must start with a dot, got %q", c.WaveformExt)
	}
	return nil
}
