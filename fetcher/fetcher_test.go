package fetcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanupRemovesRequestDirectory(t *testing.T) {
	base := t.TempDir()
	reqDir := filepath.Join(base, "req")
	if err := os.MkdirAll(reqDir, 0o755); err != nil {
		t.Fatal(err)
	}
	clip := filepath.Join(reqDir, "clip.wav")
	if err := os.WriteFile(clip, []byte("riff"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewYTDLP("", base)
	f.Cleanup(clip)

	if _, err := os.Stat(reqDir); !os.IsNotExist(err) {
		t.Errorf("request directory still exists after Cleanup")
	}

	// An empty path is a no-op, not a panic.
	f.Cleanup("")
}

func TestFetchErrorWrapping(t *testing.T) {
	cause := errors.New("exit status 1")
	err := error(&FetchError{Reason: "downloader exited with an error", Err: cause})

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatal("errors.As failed for *FetchError")
	}
	if !errors.Is(err, cause) {
		t.Error("FetchError must unwrap to its cause")
	}
	if fe.Error() == "" {
		t.Error("empty error string")
	}
}
