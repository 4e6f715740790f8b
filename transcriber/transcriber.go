package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"clipscribe/types"
)

// Options tune a single transcription call.
type Options struct {
	// Language hints the spoken language; empty lets the model detect it.
	Language string
	// Model overrides the configured model name for this call.
	Model string
}

// Result is the normalized output of one transcription: the full text joined
// with single spaces, plus the ordered timestamped segments it came from.
type Result struct {
	Text     string
	Segments []types.Segment
}

// Transcriber turns a local audio file into timestamped text. Implementations
// block until the model finishes; an empty transcript is a successful empty
// Result, not an error, so silent clips transcribe cleanly.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, opts Options) (Result, error)
}

// TranscribeError wraps a speech-model failure.
type TranscribeError struct {
	Reason string
	Err    error
}

func (e *TranscribeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transcription failed: %s: %v", e.Reason, e.Err)
	}
	return "transcription failed: " + e.Reason
}

func (e *TranscribeError) Unwrap() error { return e.Err }

// WhisperCLI runs the openai-whisper command line once per request and parses
// the JSON transcript it writes next to the audio file.
type WhisperCLI struct {
	bin   string
	model string
}

// NewWhisperCLI creates a whisper adapter. Empty arguments fall back to the
// "whisper" binary and the "base" model.
func NewWhisperCLI(bin, model string) *WhisperCLI {
	if bin == "" {
		bin = "whisper"
	}
	if model == "" {
		model = "base"
	}
	return &WhisperCLI{bin: bin, model: model}
}

// Transcribe blocks on one whisper invocation for audioPath.
func (w *WhisperCLI) Transcribe(ctx context.Context, audioPath string, opts Options) (Result, error) {
	model := opts.Model
	if model == "" {
		model = w.model
	}

	outDir := filepath.Dir(audioPath)
	args := []string{
		audioPath,
		"--model", model,
		"--output_format", "json",
		"--output_dir", outDir,
		"--fp16", "False",
		"--verbose", "False",
	}
	if opts.Language != "" {
		args = append(args, "--language", opts.Language)
	}

	cmd := exec.CommandContext(ctx, w.bin, args...)
	if _, err := cmd.Output(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return Result{}, &TranscribeError{Reason: strings.TrimSpace(string(ee.Stderr))}
		}
		return Result{}, &TranscribeError{Reason: "run whisper", Err: err}
	}

	jsonPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return Result{}, &TranscribeError{Reason: "transcript output missing", Err: err}
	}

	return parseWhisperJSON(data)
}

type whisperOutput struct {
	Text     string `json:"text"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// parseWhisperJSON normalizes whisper's JSON into a Result. Segment texts are
// trimmed and the full text is their single-space join, keeping the segments
// in the order the model emitted them.
func parseWhisperJSON(data []byte) (Result, error) {
	var parsed whisperOutput
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Result{}, &TranscribeError{Reason: "parse transcript output", Err: err}
	}

	var res Result
	var texts []string
	for _, s := range parsed.Segments {
		text := strings.TrimSpace(s.Text)
		res.Segments = append(res.Segments, types.Segment{Start: s.Start, End: s.End, Text: text})
		if text != "" {
			texts = append(texts, text)
		}
	}
	res.Text = strings.Join(texts, " ")
	return res, nil
}
