package transcriber

import (
	"errors"
	"testing"
)

func TestParseWhisperJSON(t *testing.T) {
	data := []byte(`{
		"text": " Hello world. This is a test. ",
		"segments": [
			{"start": 0.0, "end": 2.1, "text": " Hello world."},
			{"start": 2.1, "end": 4.0, "text": " This is a test."}
		]
	}`)

	res, err := parseWhisperJSON(data)
	if err != nil {
		t.Fatalf("parseWhisperJSON: %v", err)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(res.Segments))
	}
	if res.Text != "Hello world. This is a test." {
		t.Errorf("full text = %q, want single-space join of trimmed segments", res.Text)
	}
	if res.Segments[0].Start != 0 || res.Segments[0].End != 2.1 {
		t.Errorf("segment 0 timing mismatch: %+v", res.Segments[0])
	}
	if res.Segments[1].Text != "This is a test." {
		t.Errorf("segment text not trimmed: %q", res.Segments[1].Text)
	}
}

func TestParseWhisperJSONEmptyIsSuccess(t *testing.T) {
	res, err := parseWhisperJSON([]byte(`{"text": "", "segments": []}`))
	if err != nil {
		t.Fatalf("empty transcript must not be an error: %v", err)
	}
	if res.Text != "" || len(res.Segments) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestParseWhisperJSONGarbage(t *testing.T) {
	_, err := parseWhisperJSON([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for malformed output")
	}
	var te *TranscribeError
	if !errors.As(err, &te) {
		t.Errorf("expected *TranscribeError, got %T", err)
	}
}
