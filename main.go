package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"clipscribe/api"
	"clipscribe/cache"
	"clipscribe/common"
	"clipscribe/config"
	"clipscribe/fetcher"
	"clipscribe/orchestrator"
	"clipscribe/transcriber"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()

	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		log.Fatalf("failed to create temp directory %s: %v", cfg.TempDir, err)
	}
	log.Printf("Temporary download directory ready at %s", cfg.TempDir)

	store, err := cache.NewFromEnv()
	if err != nil {
		log.Printf("Warning: Redis unavailable: %v (caching disabled)", err)
		store = nil
	} else {
		log.Println("Redis connection established")
		defer store.Close()
	}

	archive, bucket, prefix := initArchive()

	pipeline := &orchestrator.Pipeline{
		Fetcher:       fetcher.NewYTDLP(cfg.YTDLPBin, cfg.TempDir),
		Transcriber:   transcriber.NewWhisperCLI(cfg.WhisperBin, cfg.WhisperModel),
		Cache:         store,
		Archive:       archive,
		ArchiveBucket: bucket,
		ArchivePrefix: prefix,
		Cfg:           cfg,
	}

	r := api.NewRouter(pipeline)
	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/transcribe")

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// initArchive returns an S3 client and target bucket/prefix if configured via env.
// Required: S3_BUCKET. Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE=true
func initArchive() (*common.S3, string, string) {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		log.Println("S3 not configured; transcript archiving disabled")
		return nil, "", ""
	}

	cfg := common.S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}
	client, err := common.NewS3(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		return nil, "", ""
	}

	prefix := strings.TrimSpace(os.Getenv("S3_PREFIX"))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return client, bucket, prefix
}
