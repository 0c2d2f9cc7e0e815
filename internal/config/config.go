package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/antoniostano/nightingale/internal/tts"
	"github.com/antoniostano/nightingale/internal/voices"
)

// Config contains all runtime settings for the synthesis service.
type Config struct {
	BindAddr         string
	ShutdownTimeout  time.Duration
	SynthesisTimeout time.Duration
	MetricsNamespace string

	WSSEndpoint  string
	VoiceListURL string
	OutputFormat string

	DefaultVoice  string
	DefaultRate   string
	DefaultVolume string
	DefaultPitch  string
	WordsInCue    int
}

// Load reads environment variables and applies safe defaults.
func Load() (Config, error) {
	cfg := Config{
		BindAddr:         envOrDefault("APP_BIND_ADDR", ":8080"),
		MetricsNamespace: envOrDefault("APP_METRICS_NAMESPACE", "nightingale"),
		WSSEndpoint:      envOrDefault("TTS_WSS_ENDPOINT", tts.DefaultEndpoint),
		VoiceListURL:     envOrDefault("TTS_VOICE_LIST_URL", voices.DefaultListURL),
		OutputFormat:     envOrDefault("TTS_OUTPUT_FORMAT", tts.DefaultOutputFormat),
		DefaultVoice:     envOrDefault("TTS_DEFAULT_VOICE", tts.DefaultVoice),
		DefaultRate:      envOrDefault("TTS_DEFAULT_RATE", "+0%"),
		DefaultVolume:    envOrDefault("TTS_DEFAULT_VOLUME", "+0%"),
		DefaultPitch:     envOrDefault("TTS_DEFAULT_PITCH", "+0Hz"),
		WordsInCue:       1,
		ShutdownTimeout:  15 * time.Second,
		SynthesisTimeout: 90 * time.Second,
	}

	var err error
	cfg.ShutdownTimeout, err = durationFromEnv("APP_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.SynthesisTimeout, err = durationFromEnv("TTS_SYNTHESIS_TIMEOUT", cfg.SynthesisTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.WordsInCue, err = intFromEnv("TTS_WORDS_IN_CUE", cfg.WordsInCue)
	if err != nil {
		return Config{}, err
	}

	if cfg.SynthesisTimeout < 5*time.Second {
		return Config{}, fmt.Errorf("TTS_SYNTHESIS_TIMEOUT must be at least 5s")
	}
	if cfg.WordsInCue < 1 {
		return Config{}, fmt.Errorf("TTS_WORDS_IN_CUE must be positive")
	}
	if !strings.HasPrefix(cfg.WSSEndpoint, "ws://") && !strings.HasPrefix(cfg.WSSEndpoint, "wss://") {
		return Config{}, fmt.Errorf("TTS_WSS_ENDPOINT must be a ws:// or wss:// URL")
	}

	// Fail on bad default prosody at startup instead of on the first request.
	if _, err := tts.NewVoiceSpec(cfg.DefaultVoice, cfg.DefaultRate, cfg.DefaultVolume, cfg.DefaultPitch); err != nil {
		return Config{}, fmt.Errorf("default voice settings: %w", err)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return d, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return n, nil
}
