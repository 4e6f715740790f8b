package config

// Transcription Constants
const (
	// DefaultWhisperModel is the speech model used when none is configured
	DefaultWhisperModel = "base"

	// DefaultWhisperBin is the whisper CLI binary name
	DefaultWhisperBin = "whisper"

	// DefaultYTDLPBin is the downloader binary name
	DefaultYTDLPBin = "yt-dlp"

	// DefaultMaxClipSeconds caps the requested time range (0 disables the cap)
	DefaultMaxClipSeconds = 600.0
)

// Directory Constants
const (
	// DefaultTempDir holds per-request audio working directories
	DefaultTempDir = "./temp_audio"
)

// Server Constants
const (
	// DefaultPort is the HTTP listen port
	DefaultPort = "8080"
)
