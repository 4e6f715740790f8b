package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/url"
	"strings"
	"time"

	"clipscribe/cache"
	"clipscribe/common"
	"clipscribe/config"
	"clipscribe/fetcher"
	"clipscribe/subtitle"
	"clipscribe/timerange"
	"clipscribe/transcriber"
	"clipscribe/types"
)

// Pipeline wires the transcription stages together. Collaborators are
// injected so tests can substitute deterministic fakes; the zero values of
// Cache and Archive are valid (caching and archiving simply switch off).
type Pipeline struct {
	Fetcher     fetcher.Fetcher
	Transcriber transcriber.Transcriber
	Cache       *cache.Cache

	// Archive, when configured together with ArchiveBucket, receives a
	// best-effort JSON copy of every successful response.
	Archive       *common.S3
	ArchiveBucket string
	ArchivePrefix string

	Cfg config.Config
}

// Run executes one synchronous transcription request: cache lookup,
// validation, segment download, transcription, SRT formatting, cache write.
// The temporary audio file is removed on every exit path. Errors carry the
// originating stage and class via *StageError.
func (p *Pipeline) Run(ctx context.Context, req types.TranscriptionRequest) (*types.TranscriptionResponse, error) {
	start := time.Now()

	key := cache.Key(req)
	if resp, ok := p.Cache.Get(ctx, key); ok {
		log.Printf("Cache HIT: %s", key)
		return resp, nil
	}
	log.Printf("Cache MISS: %s", key)

	if err := validateURL(req.VideoURL); err != nil {
		return nil, inputErr("validate", err)
	}
	rng, err := timerange.New(req.StartTime, req.EndTime)
	if err != nil {
		return nil, inputErr("validate", err)
	}
	if max := p.Cfg.MaxClipSeconds; max > 0 && rng.Duration() > max {
		return nil, inputErr("validate",
			fmt.Errorf("%w: %.0fs requested, limit is %.0fs", ErrClipTooLong, rng.Duration(), max))
	}

	fetchStart := time.Now()
	audioPath, err := p.Fetcher.Fetch(ctx, req.VideoURL, rng)
	downloadSecs := time.Since(fetchStart).Seconds()
	if err != nil {
		return nil, upstreamErr("fetch", err)
	}
	defer p.Fetcher.Cleanup(audioPath)
	log.Printf("Downloaded segment in %.2fs -> %s", downloadSecs, audioPath)

	transcribeStart := time.Now()
	result, err := p.Transcriber.Transcribe(ctx, audioPath, transcriber.Options{Model: p.Cfg.WhisperModel})
	transcribeSecs := time.Since(transcribeStart).Seconds()
	if err != nil {
		return nil, upstreamErr("transcribe", err)
	}
	log.Printf("Transcribed in %.2fs", transcribeSecs)

	resp := &types.TranscriptionResponse{
		Message:              "Processing successful.",
		Transcription:        result.Text,
		OriginalURL:          req.VideoURL,
		TimeRange:            rng.String(),
		DownloadSeconds:      round2(downloadSecs),
		TranscriptionSeconds: round2(transcribeSecs),
	}
	if req.WantSRT() {
		srt := subtitle.ToSRT(result.Segments, subtitle.Options{})
		resp.SRTTranscription = &srt
	}
	resp.TotalSeconds = round2(time.Since(start).Seconds())

	p.Cache.Set(ctx, key, resp)
	p.archive(ctx, key, resp)

	return resp, nil
}

// archive writes the response to S3 when a bucket is configured. Failures
// are logged and never affect the response.
func (p *Pipeline) archive(ctx context.Context, key string, resp *types.TranscriptionResponse) {
	if p.Archive == nil || p.ArchiveBucket == "" {
		return
	}

	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Printf("Warning: failed to encode transcript for archiving: %v", err)
		return
	}

	objKey := p.ArchivePrefix + "transcripts/" + strings.TrimPrefix(key, "transcription:") + ".json"
	uctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := p.Archive.Put(uctx, p.ArchiveBucket, objKey, bytes.NewReader(b), "application/json"); err != nil {
		log.Printf("Warning: transcript archive upload failed: %v", err)
		return
	}
	log.Printf("Archived transcript to s3://%s/%s", p.ArchiveBucket, objKey)
}

// validateURL rejects anything that is not a plausible http(s) source before
// any external process is spawned.
func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
