package config

import (
	"os"
	"strconv"
)

// Config carries the deployment settings for the transcription service.
// Construct it once in main and pass it down; nothing reads the environment
// after Load returns.
type Config struct {
	Port         string
	TempDir      string
	YTDLPBin     string
	WhisperBin   string
	WhisperModel string

	// MaxClipSeconds rejects requests whose time range exceeds this many
	// seconds. Zero disables the check.
	MaxClipSeconds float64
}

// Load reads configuration from environment variables, falling back to the
// package defaults.
func Load() Config {
	cfg := Config{
		Port:           GetEnvOrDefault("PORT", DefaultPort),
		TempDir:        GetEnvOrDefault("TEMP_DIR", DefaultTempDir),
		YTDLPBin:       GetEnvOrDefault("YTDLP_BIN", DefaultYTDLPBin),
		WhisperBin:     GetEnvOrDefault("WHISPER_BIN", DefaultWhisperBin),
		WhisperModel:   GetEnvOrDefault("WHISPER_MODEL", DefaultWhisperModel),
		MaxClipSeconds: DefaultMaxClipSeconds,
	}

	if v := os.Getenv("MAX_CLIP_SECONDS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.MaxClipSeconds = f
		}
	}

	return cfg
}

// GetEnvOrDefault returns the environment value for key, or def when unset.
func GetEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
