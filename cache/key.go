package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"clipscribe/timerange"
	"clipscribe/types"
)

// keyPrefix namespaces transcription results in Redis.
const keyPrefix = "transcription:"

// Key derives the deterministic cache key for a request: a sha256 over the
// canonical concatenation of the normalized URL, the time range in seconds,
// and every option flag in fixed order. Identical normalized requests always
// map to the same key across restarts; flipping any one flag changes it.
func Key(req types.TranscriptionRequest) string {
	canonical := fmt.Sprintf("%s|%s|%s|%t|%t|%t|%t|%t",
		normalizeURL(req.VideoURL),
		normalizeTime(req.StartTime),
		normalizeTime(req.EndTime),
		req.WantSRT(),
		req.AnalyzeSentiment,
		req.AnalyzePOS,
		req.AnalyzeWordFrequency,
		req.AnalyzeTopic,
	)
	sum := sha256.Sum256([]byte(canonical))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// normalizeURL trims whitespace and lower-cases scheme and host so that
// trivially different spellings of the same URL share a key. Unparseable
// input is keyed on the trimmed string as-is; validation rejects it later.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

// normalizeTime keys on seconds when the string parses, so "1:05" and "65"
// describe the same window. Key derivation happens before validation, so an
// unparseable string falls back to its trimmed form rather than failing.
func normalizeTime(s string) string {
	if secs, err := timerange.ParseSeconds(s); err == nil {
		return strconv.FormatFloat(secs, 'f', -1, 64)
	}
	return strings.TrimSpace(s)
}
