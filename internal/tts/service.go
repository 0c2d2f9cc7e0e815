package tts

import (
	"context"
	"strings"

	"github.com/antoniostano/nightingale/internal/subtitle"
)

// Request describes one synthesis. Empty voice/prosody fields fall back to
// the service defaults; anything else is validated before dialing.
type Request struct {
	Text       string
	Voice      string
	Rate       string
	Volume     string
	Pitch      string
	WordsInCue int
}

// Stats summarizes what one stream delivered.
type Stats struct {
	AudioChunks        int
	WordBoundaries     int
	SentenceBoundaries int
}

// Result is the fully-consumed output of one synthesis: the concatenated
// audio and both subtitle renderings.
type Result struct {
	Audio             []byte
	Format            string
	WordSubtitles     string
	SentenceSubtitles string
	Stats             Stats
}

// ServiceConfig carries the per-deployment defaults for a Service.
type ServiceConfig struct {
	Endpoint      string
	OutputFormat  string
	DefaultVoice  string
	DefaultRate   string
	DefaultVolume string
	DefaultPitch  string
}

// Service runs complete synthesis requests: one stream each, with word and
// sentence boundary metadata enabled, consumed to the end.
type Service struct {
	cfg ServiceConfig
}

func NewService(cfg ServiceConfig) *Service {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(cfg.OutputFormat) == "" {
		cfg.OutputFormat = DefaultOutputFormat
	}
	if strings.TrimSpace(cfg.DefaultVoice) == "" {
		cfg.DefaultVoice = DefaultVoice
	}
	if strings.TrimSpace(cfg.DefaultRate) == "" {
		cfg.DefaultRate = "+0%"
	}
	if strings.TrimSpace(cfg.DefaultVolume) == "" {
		cfg.DefaultVolume = "+0%"
	}
	if strings.TrimSpace(cfg.DefaultPitch) == "" {
		cfg.DefaultPitch = "+0Hz"
	}
	return &Service{cfg: cfg}
}

// Synthesize drives one request/response stream to completion and returns
// the audio plus both cue streams. The first stream failure aborts the whole
// call; partial audio is discarded.
func (s *Service) Synthesize(ctx context.Context, req Request) (Result, error) {
	voice, err := NewVoiceSpec(
		fallback(req.Voice, s.cfg.DefaultVoice),
		fallback(req.Rate, s.cfg.DefaultRate),
		fallback(req.Volume, s.cfg.DefaultVolume),
		fallback(req.Pitch, s.cfg.DefaultPitch),
	)
	if err != nil {
		return Result{}, err
	}

	comm := NewCommunicator(req.Text, voice, StreamOptions{
		WordBoundary:     true,
		SentenceBoundary: true,
		Endpoint:         s.cfg.Endpoint,
		OutputFormat:     s.cfg.OutputFormat,
	})
	events, err := comm.Stream(ctx)
	if err != nil {
		return Result{}, err
	}

	var (
		audio []byte
		maker subtitle.Maker
		stats Stats
	)
	for ev := range events {
		switch ev := ev.(type) {
		case AudioChunk:
			audio = append(audio, ev.Data...)
			stats.AudioChunks++
		case WordBoundary:
			maker.Word(ev.Start, ev.End, ev.Text)
			stats.WordBoundaries++
		case SentenceBoundary:
			maker.Sentence(ev.Start, ev.End, ev.Text)
			stats.SentenceBoundaries++
		case StreamEnded:
		case StreamError:
			return Result{}, ev.Err
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{
		Audio:             audio,
		Format:            s.cfg.OutputFormat,
		WordSubtitles:     maker.WordCues(req.WordsInCue),
		SentenceSubtitles: maker.SentenceCues(),
		Stats:             stats,
	}, nil
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
