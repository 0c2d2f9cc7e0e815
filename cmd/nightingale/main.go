package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/antoniostano/nightingale/internal/tts"
)

type options struct {
	text       string
	voice      string
	rate       string
	volume     string
	pitch      string
	wordsInCue int
	outDir     string
	audioPath  string
	wordsPath  string
	sentsPath  string
	timeout    time.Duration
	quiet      bool
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nightingale: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "nightingale: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var cfg options
	var timeoutSec int

	flag.StringVar(&cfg.text, "text", "", "text to synthesize (required)")
	flag.StringVar(&cfg.voice, "voice", "", "voice name, canonical or short form (default en-US Aria)")
	flag.StringVar(&cfg.rate, "rate", "+0%", "speaking rate, e.g. -10%")
	flag.StringVar(&cfg.volume, "volume", "+0%", "speaking volume, e.g. +20%")
	flag.StringVar(&cfg.pitch, "pitch", "+0Hz", "voice pitch, e.g. -5Hz")
	flag.IntVar(&cfg.wordsInCue, "words-in-cue", 1, "words grouped into each word-level subtitle cue")
	flag.StringVar(&cfg.outDir, "out-dir", ".", "directory for default output files")
	flag.StringVar(&cfg.audioPath, "audio", "", "audio output path (default <slug>.mp3)")
	flag.StringVar(&cfg.wordsPath, "word-srt", "", "word subtitle output path (default <slug>.words.srt)")
	flag.StringVar(&cfg.sentsPath, "sentence-srt", "", "sentence subtitle output path (default <slug>.sentences.srt)")
	flag.IntVar(&timeoutSec, "timeout-sec", 90, "overall synthesis timeout in seconds")
	flag.BoolVar(&cfg.quiet, "quiet", false, "suppress progress output")
	flag.Parse()

	if strings.TrimSpace(cfg.text) == "" {
		return options{}, fmt.Errorf("text is required")
	}
	if cfg.wordsInCue < 1 {
		return options{}, fmt.Errorf("words-in-cue must be >= 1")
	}
	if timeoutSec < 5 {
		return options{}, fmt.Errorf("timeout-sec must be >= 5")
	}
	cfg.timeout = time.Duration(timeoutSec) * time.Second

	slug := shortName(cfg.text, 26)
	if cfg.audioPath == "" {
		cfg.audioPath = filepath.Join(cfg.outDir, slug+".mp3")
	}
	if cfg.wordsPath == "" {
		cfg.wordsPath = filepath.Join(cfg.outDir, slug+".words.srt")
	}
	if cfg.sentsPath == "" {
		cfg.sentsPath = filepath.Join(cfg.outDir, slug+".sentences.srt")
	}
	return cfg, nil
}

func run(cfg options) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	svc := tts.NewService(tts.ServiceConfig{})
	result, err := svc.Synthesize(ctx, tts.Request{
		Text:       cfg.text,
		Voice:      cfg.voice,
		Rate:       cfg.rate,
		Volume:     cfg.volume,
		Pitch:      cfg.pitch,
		WordsInCue: cfg.wordsInCue,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.audioPath, result.Audio, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	if err := os.WriteFile(cfg.wordsPath, []byte(result.WordSubtitles), 0o644); err != nil {
		return fmt.Errorf("write word subtitles: %w", err)
	}
	if err := os.WriteFile(cfg.sentsPath, []byte(result.SentenceSubtitles), 0o644); err != nil {
		return fmt.Errorf("write sentence subtitles: %w", err)
	}

	if !cfg.quiet {
		fmt.Printf("nightingale: wrote %s (%d bytes, %d chunks), %s (%d words), %s (%d sentences)\n",
			cfg.audioPath, len(result.Audio), result.Stats.AudioChunks,
			cfg.wordsPath, result.Stats.WordBoundaries,
			cfg.sentsPath, result.Stats.SentenceBoundaries)
	}
	return nil
}

// shortName derives a filesystem-safe slug from the input text: runs of
// non-alphanumerics collapse to underscores, lowercased, cut back to the
// last full token within max bytes.
func shortName(content string, max int) string {
	if len(content) > max {
		content = content[:max]
	}
	var b strings.Builder
	lastUnderscore := false
	for _, r := range content {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	name := b.String()
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		name = "speech"
	}
	return name
}
