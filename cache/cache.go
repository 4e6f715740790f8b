package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"clipscribe/types"
)

// DefaultTTL bounds how long a cached transcription stays valid.
const DefaultTTL = time.Hour

// Config configures the Redis connection backing the result cache.
type Config struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	TTL      time.Duration
}

// Cache is a Redis-backed look-aside store for full transcription responses.
// It fails open: a nil *Cache and any backend error both behave as a miss on
// read and a no-op on write, so caching never blocks the pipeline.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFromEnv creates a Cache using environment variables REDIS_ADDR,
// REDIS_PASS, REDIS_DB and CACHE_TTL_SECONDS.
func NewFromEnv() (*Cache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil && v >= 0 {
			db = v
		}
	}
	ttl := DefaultTTL
	if t := os.Getenv("CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	cfg := Config{Addr: addr, Password: os.Getenv("REDIS_PASS"), DB: db, TTL: ttl}
	return New(cfg)
}

// New creates a Cache and verifies connectivity with a short ping.
func New(cfg Config) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// Get returns the cached response for key, or (nil, false) on a miss. Backend
// errors are logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, key string) (*types.TranscriptionResponse, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Warning: cache GET failed, treating as miss: %v", err)
		return nil, false
	}

	var resp types.TranscriptionResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		log.Printf("Warning: cached value for %s is unreadable, treating as miss: %v", key, err)
		return nil, false
	}
	return &resp, true
}

// Set stores the response under key with the configured TTL. Failures are
// logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, resp *types.TranscriptionResponse) {
	if c == nil || resp == nil {
		return
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Warning: failed to encode response for caching: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("Warning: cache SET failed: %v", err)
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
