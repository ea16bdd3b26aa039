package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/ashwelk/utterclip/internal/config"
	"github.com/ashwelk/utterclip/pkg/logger"
	"github.com/ashwelk/utterclip/pkg/utils"
	"github.com/ashwelk/utterclip/pkg/utterclip"
	"github.com/ashwelk/utterclip/pkg/utterclip/audio"
	"github.com/ashwelk/utterclip/pkg/utterclip/catalog"
)

const defaultConfigFile = "utterclip.toml"

func main() {
	log := logger.GetLogger()

	printBanner()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	log.Infof("Executing command: %s", command)

	switch command {
	case "extract":
		handleExtract()
	case "inspect":
		handleInspect()
	case "list":
		handleList()
	case "clean":
		handleClean()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printBanner() {
	banner := `
       _   _                _ _
  _  _| |_| |_ ___ _ _ __ _(_) |_ __
 | || |  _|  _/ -_) '_/ _| | | | '_ \
  \_,_|\__|\__\___|_| \__|_|_|_| .__/
                               |_|
      Utterance Extraction Tool
`
	fmt.Println(banner)
}

// loadConfig parses the given flag set and loads the run configuration.
func loadConfig(fs *flag.FlagSet, args []string) config.Config {
	log := logger.GetLogger()

	configPath := fs.String("config", defaultConfigFile, "Path to the TOML config file")
	fs.Parse(args)

	explicit := *configPath != defaultConfigFile
	cfg, err := config.Load(*configPath, explicit)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		log.Errorf("Config load failed: %v", err)
		os.Exit(1)
	}
	return cfg
}

func handleExtract() {
	log := logger.GetLogger()
	cfg := loadConfig(flag.NewFlagSet("extract", flag.ExitOnError), os.Args[2:])

	svc, err := utterclip.NewService(
		utterclip.WithCorpusDir(cfg.CorpusDir),
		utterclip.WithOutputDir(cfg.OutputDir),
		utterclip.WithVocabularyFile(cfg.VocabularyPath),
		utterclip.WithMetadataPath(cfg.MetadataPath),
		utterclip.WithDBPath(cfg.DBPath),
		utterclip.WithPadding(cfg.PaddingSec),
	)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		log.Errorf("Service initialization failed: %v", err)
		os.Exit(1)
	}
	defer svc.Close()

	total, err := svc.Extract(context.Background())
	if err != nil {
		fmt.Printf("Extraction failed: %v\n", err)
		log.Errorf("Extract failed: %v", err)
		os.Exit(1)
	}

	fmt.Println("Processing complete!")
	fmt.Printf("   Clips:    %d\n", total)
	fmt.Printf("   Output:   %s\n", cfg.OutputDir)
	fmt.Printf("   Metadata: %s\n", cfg.MetadataPath)
}

func handleInspect() {
	log := logger.GetLogger()

	if len(os.Args) < 3 {
		fmt.Println("Usage: utterclip inspect <wav_file>")
		os.Exit(1)
	}
	path := os.Args[2]

	info, err := audio.Probe(path)
	if err != nil {
		fmt.Printf("Failed to read %s: %v\n", path, err)
		log.Errorf("Probe failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Sample rate: %d Hz\n", info.SampleRate)
	fmt.Printf("Channels:    %d\n", info.NumChannels)
	fmt.Printf("Bit depth:   %d\n", info.BitDepth)
	fmt.Printf("Frames:      %d\n", info.Frames)
	fmt.Printf("Duration:    %s\n", info.Duration)

	// ffprobe adds container tags the WAV decoder cannot see; skip quietly
	// when ffprobe is not installed.
	meta, err := audio.ReadMetadataFFmpeg(context.Background(), path)
	if err != nil {
		log.Debugf("ffprobe unavailable for %s: %v", path, err)
		return
	}
	if meta.Title != "" {
		fmt.Printf("Title:       %s\n", meta.Title)
	}
	if meta.Artist != "" {
		fmt.Printf("Artist:      %s\n", meta.Artist)
	}
	if meta.Encoder != "" {
		fmt.Printf("Encoder:     %s\n", meta.Encoder)
	}
}

func handleList() {
	log := logger.GetLogger()
	cfg := loadConfig(flag.NewFlagSet("list", flag.ExitOnError), os.Args[2:])

	client, err := catalog.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Failed to open catalog: %v\n", err)
		log.Errorf("Catalog open failed: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	clips, err := client.ListClips()
	if err != nil {
		fmt.Printf("Failed to list clips: %v\n", err)
		log.Errorf("ListClips failed: %v", err)
		os.Exit(1)
	}

	if len(clips) == 0 {
		fmt.Println("No clips in catalog")
		return
	}

	fmt.Printf("Found %d clip(s):\n\n", len(clips))
	for _, clip := range clips {
		size := "missing"
		if st, err := os.Stat(clip.Path); err == nil {
			size = humanize.Bytes(uint64(st.Size()))
		}
		run := clip.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Printf("%s  %q  [%.3fs - %.3fs]  %s  (%s)\n",
			clip.Path, clip.Word, clip.StartSec, clip.EndSec, size, run)
	}
	log.Infof("Listed %d clips", len(clips))
}

func handleClean() {
	log := logger.GetLogger()
	cfg := loadConfig(flag.NewFlagSet("clean", flag.ExitOnError), os.Args[2:])

	if err := utils.DeleteDir(cfg.OutputDir); err != nil {
		fmt.Printf("Failed to remove %s: %v\n", cfg.OutputDir, err)
		log.Errorf("Clean failed: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Removed %s\n", cfg.OutputDir)
	log.Infof("Removed output directory %s", cfg.OutputDir)
}

func printUsage() {
	fmt.Println("utterclip - extract vocabulary matches from transcribed WAV corpora")
	fmt.Println("\nUsage:")
	fmt.Println("  utterclip extract [--config <path>]")
	fmt.Println("  utterclip inspect <wav_file>")
	fmt.Println("  utterclip list [--config <path>]")
	fmt.Println("  utterclip clean [--config <path>]")
	fmt.Println("\nCommands:")
	fmt.Println("  extract   Scan transcripts in the corpus directory and extract one clip per match")
	fmt.Println("  inspect   Print format parameters and tags of a WAV file")
	fmt.Println("  list      Show all cataloged clips across runs")
	fmt.Println("  clean     Delete the clip output directory (re-runs never clear it themselves)")
	fmt.Println("\nConfiguration is read from utterclip.toml (see --config). Env overrides:")
	fmt.Println("  UTTERCLIP_DB_PATH, UTTERCLIP_CORPUS_DIR")
	fmt.Println("\nNote: the metadata TSV is truncated every run, but extracted clips are")
	fmt.Println("never deleted automatically. Run 'utterclip clean' between runs if stale")
	fmt.Println("clips would be a problem.")
}
