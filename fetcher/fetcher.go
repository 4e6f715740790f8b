package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"clipscribe/timerange"
)

// Fetcher materializes the audio for a clip window as a local file. Each
// successful call owns exactly one temp directory; the caller must invoke
// Cleanup on every exit path once the file is no longer needed.
type Fetcher interface {
	Fetch(ctx context.Context, url string, r timerange.Range) (string, error)
	Cleanup(path string)
}

// FetchError wraps any downloader or decoder failure.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed: %s: %v", e.Reason, e.Err)
	}
	return "fetch failed: " + e.Reason
}

func (e *FetchError) Unwrap() error { return e.Err }

// YTDLP downloads source audio with yt-dlp and trims it to the requested
// window with ffmpeg. It never retries; retry policy belongs to the caller.
type YTDLP struct {
	bin     string
	tempDir string
}

// NewYTDLP creates a fetcher invoking the given yt-dlp binary and writing
// per-request directories under tempDir.
func NewYTDLP(bin, tempDir string) *YTDLP {
	if bin == "" {
		bin = "yt-dlp"
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &YTDLP{bin: bin, tempDir: tempDir}
}

// Fetch downloads the best available audio for url into a fresh per-request
// directory, then decodes exactly [r.Start, r.End] into a mono 16 kHz WAV.
// The intermediate download is removed before returning; on any failure the
// whole request directory is removed and a *FetchError returned.
func (f *YTDLP) Fetch(ctx context.Context, url string, r timerange.Range) (string, error) {
	reqDir := filepath.Join(f.tempDir, uuid.New().String())
	if err := os.MkdirAll(reqDir, 0o755); err != nil {
		return "", &FetchError{Reason: "create temp directory", Err: err}
	}

	source, err := f.download(ctx, url, reqDir)
	if err != nil {
		os.RemoveAll(reqDir)
		return "", err
	}

	clip := filepath.Join(reqDir, "clip.wav")
	if err := trim(source, clip, r); err != nil {
		os.RemoveAll(reqDir)
		return "", err
	}
	os.Remove(source)

	fi, err := os.Stat(clip)
	if err != nil || fi.Size() == 0 {
		os.RemoveAll(reqDir)
		return "", &FetchError{Reason: "decoder produced empty or missing audio, requested range may be outside media duration"}
	}

	return clip, nil
}

// download runs yt-dlp for the best audio-only format and returns the path
// of the downloaded file.
func (f *YTDLP) download(ctx context.Context, url, reqDir string) (string, error) {
	outTemplate := filepath.Join(reqDir, "source.%(ext)s")
	cmd := exec.CommandContext(ctx, f.bin,
		"-f", "bestaudio/best",
		"--no-playlist",
		"--quiet", "--no-warnings",
		"-o", outTemplate,
		url,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = "downloader exited with an error"
		}
		return "", &FetchError{Reason: reason, Err: err}
	}

	matches, err := filepath.Glob(filepath.Join(reqDir, "source.*"))
	if err != nil || len(matches) == 0 {
		return "", &FetchError{Reason: "downloader produced no audio file"}
	}
	return matches[0], nil
}

// trim decodes the window [r.Start, r.End] out of source as 16 kHz mono WAV.
// Seek and stop are passed as exact second offsets so the clip duration
// matches the requested window, not the nearest keyframe range.
func trim(source, out string, r timerange.Range) error {
	err := ffmpeg.Input(source, ffmpeg.KwArgs{
		"ss": formatSeconds(r.Start),
		"to": formatSeconds(r.End),
	}).Output(out, ffmpeg.KwArgs{
		"vn":     "",
		"acodec": "pcm_s16le",
		"ar":     "16000",
		"ac":     "1",
	}).OverWriteOutput().Run()
	if err != nil {
		return &FetchError{Reason: "audio decode/trim failed", Err: err}
	}
	return nil
}

// Cleanup removes the request directory owning the given clip path.
func (f *YTDLP) Cleanup(path string) {
	if path == "" {
		return
	}
	os.RemoveAll(filepath.Dir(path))
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
