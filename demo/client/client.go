package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"clipscribe/types"
)

// Client is a thin HTTP client for the transcription API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL. The timeout is generous
// because transcription is synchronous on the server side.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Minute},
	}
}

type errorPayload struct {
	Error string `json:"error"`
}

// Transcribe submits a transcription request and blocks until the server
// responds with the full payload or an error.
func (c *Client) Transcribe(ctx context.Context, req types.TranscriptionRequest) (*types.TranscriptionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/transcribe", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ep errorPayload
		if err := json.NewDecoder(resp.Body).Decode(&ep); err == nil && ep.Error != "" {
			return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, ep.Error)
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var out types.TranscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
