package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.CorpusDir != "audio_data" {
		t.Errorf("Unexpected default corpus dir: %s", cfg.CorpusDir)
	}
	if cfg.OutputDir != "audio_excerpts" {
		t.Errorf("Unexpected default output dir: %s", cfg.OutputDir)
	}
	if cfg.PaddingSec != 0.2 {
		t.Errorf("Expected default padding 0.2, got %g", cfg.PaddingSec)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utterclip.toml")
	content := `
corpus_dir = "/corpus"
padding_sec = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CorpusDir != "/corpus" {
		t.Errorf("Expected corpus dir from file, got %s", cfg.CorpusDir)
	}
	if cfg.PaddingSec != 0.5 {
		t.Errorf("Expected padding from file, got %g", cfg.PaddingSec)
	}
	// Unset keys keep their defaults.
	if cfg.OutputDir != "audio_excerpts" {
		t.Errorf("Expected default output dir, got %s", cfg.OutputDir)
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "utterclip.toml"), false)
	if err != nil {
		t.Fatalf("Missing default config should fall back to defaults: %v", err)
	}
	if cfg.CorpusDir != "audio_data" {
		t.Errorf("Expected defaults, got corpus dir %s", cfg.CorpusDir)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), true); err == nil {
		t.Fatal("Expected an error for an explicitly given missing config")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utterclip.toml")
	os.WriteFile(path, []byte("corpus_dir = ["), 0o644)

	if _, err := Load(path, true); err == nil {
		t.Fatal("Expected a parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("UTTERCLIP_DB_PATH", "/elsewhere/clips.sqlite3")
	t.Setenv("UTTERCLIP_CORPUS_DIR", "/elsewhere/corpus")

	cfg, err := Load(filepath.Join(t.TempDir(), "utterclip.toml"), false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/elsewhere/clips.sqlite3" {
		t.Errorf("Expected env DB path, got %s", cfg.DBPath)
	}
	if cfg.CorpusDir != "/elsewhere/corpus" {
		t.Errorf("Expected env corpus dir, got %s", cfg.CorpusDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty corpus dir", func(c *Config) { c.CorpusDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"empty vocabulary path", func(c *Config) { c.VocabularyPath = "" }},
		{"empty metadata path", func(c *Config) { c.MetadataPath = "" }},
		{"negative padding", func(c *Config) { c.PaddingSec = -0.1 }},
		{"transcript ext without dot", func(c *Config) { c.TranscriptExt = "tsv" }},
		{"waveform ext without dot", func(c *Config) { c.WaveformExt = "wav" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}
