package cache

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"clipscribe/types"
)

func baseRequest() types.TranscriptionRequest {
	return types.TranscriptionRequest{
		VideoURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		StartTime: "0:10",
		EndTime:   "0:20",
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	req := baseRequest()
	first := Key(req)
	for i := 0; i < 10; i++ {
		if got := Key(req); got != first {
			t.Fatalf("key changed between calls: %q vs %q", first, got)
		}
	}
	if !strings.HasPrefix(first, keyPrefix) {
		t.Errorf("key %q missing prefix %q", first, keyPrefix)
	}
}

func TestKeyChangesWithEachFlag(t *testing.T) {
	base := Key(baseRequest())

	flip := func(name string, mutate func(*types.TranscriptionRequest)) {
		req := baseRequest()
		mutate(&req)
		if Key(req) == base {
			t.Errorf("flipping %s did not change the key", name)
		}
	}

	no := false
	flip("generate_srt", func(r *types.TranscriptionRequest) { r.GenerateSRT = &no })
	flip("analyze_sentiment", func(r *types.TranscriptionRequest) { r.AnalyzeSentiment = true })
	flip("analyze_pos", func(r *types.TranscriptionRequest) { r.AnalyzePOS = true })
	flip("analyze_word_frequency", func(r *types.TranscriptionRequest) { r.AnalyzeWordFrequency = true })
	flip("analyze_topic", func(r *types.TranscriptionRequest) { r.AnalyzeTopic = true })
	flip("start_time", func(r *types.TranscriptionRequest) { r.StartTime = "0:11" })
	flip("end_time", func(r *types.TranscriptionRequest) { r.EndTime = "0:21" })
	flip("video_url", func(r *types.TranscriptionRequest) { r.VideoURL = "https://example.com/other" })
}

func TestKeyNormalizesEquivalentInputs(t *testing.T) {
	a := baseRequest()

	b := baseRequest()
	b.VideoURL = "  HTTPS://WWW.YouTube.com/watch?v=dQw4w9WgXcQ "
	b.StartTime = "10"
	b.EndTime = "20"

	if Key(a) != Key(b) {
		t.Errorf("equivalent requests produced different keys:\n a %q\n b %q", Key(a), Key(b))
	}

	// An explicit generate_srt=true equals the default.
	yes := true
	c := baseRequest()
	c.GenerateSRT = &yes
	if Key(a) != Key(c) {
		t.Error("explicit generate_srt=true should key the same as the default")
	}
}

func TestKeyDistinctAcrossRandomURLs(t *testing.T) {
	gofakeit.Seed(11)

	seen := make(map[string]string)
	for i := 0; i < 200; i++ {
		req := baseRequest()
		req.VideoURL = gofakeit.URL()
		k := Key(req)
		if prev, ok := seen[k]; ok && prev != req.VideoURL {
			t.Fatalf("key collision between %q and %q", prev, req.VideoURL)
		}
		seen[k] = req.VideoURL
	}
}
