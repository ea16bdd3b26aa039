package utterclip

type Config struct {
	// CorpusDir holds the transcript files and their paired WAV files.
	CorpusDir string
	// OutputDir receives the extracted clips. It is created if absent but
	// never cleared; stale clips from prior runs persist until the operator
	// removes them.
	OutputDir string
	// MetadataPath is the tab-delimited metadata file, truncated per run.
	MetadataPath string
	DBPath       string
	// PaddingSec is added to both ends of a match window before slicing, to
	// avoid clipping word boundaries.
	PaddingSec    float64
	TranscriptExt string
	WaveformExt   string

	VocabularyPath string
	Vocabulary     []string

	Logger  Logger
	Catalog Catalog
}

type Option func(*Config)

func WithCorpusDir(dir string) Option {
	return func(c *Config) {
		c.CorpusDir = dir
	}
}

func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

func WithMetadataPath(path string) Option {
	return func(c *Config) {
		c.MetadataPath = path
	}
}

func WithDBPath(path string) Option {
	return func(c *Config) {
		c.DBPath = path
	}
}

func WithPadding(seconds float64) Option {
	return func(c *Config) {
		c.PaddingSec = seconds
	}
}

func WithVocabularyFile(path string) Option {
	return func(c *Config) {
		c.VocabularyPath = path
	}
}

// WithVocabulary supplies an already-loaded word list. Entries are expected to
// be lower case; vocab.Load does this for file-based vocabularies.
func WithVocabulary(words []string) Option {
	return func(c *Config) {
		c.Vocabulary = words
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func WithCatalog(cat Catalog) Option {
	return func(c *Config) {
		c.Catalog = cat
	}
}

func defaultConfig() *Config {
	return &Config{
		CorpusDir:     "audio_data",
		OutputDir:     "audio_excerpts",
		MetadataPath:  "output.tsv",
		DBPath:        "utterclip.sqlite3",
		PaddingSec:    0.2,
		TranscriptExt: ".tsv",
		WaveformExt:   ".wav",
	}
}
