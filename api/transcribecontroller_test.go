package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"clipscribe/orchestrator"
	"clipscribe/timerange"
	"clipscribe/types"
)

type stubPipeline struct {
	resp *types.TranscriptionResponse
	err  error
}

func (s *stubPipeline) Run(ctx context.Context, req types.TranscriptionRequest) (*types.TranscriptionResponse, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, p Pipeline, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := NewRouter(p)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"video_url":"https://example.com/v","start_time":"0:10","end_time":"0:20"}`

func TestTranscribeSuccess(t *testing.T) {
	p := &stubPipeline{resp: &types.TranscriptionResponse{
		Message:       "Processing successful.",
		Transcription: "hello",
		OriginalURL:   "https://example.com/v",
		TimeRange:     "0:10 - 0:20",
	}}

	w := doRequest(t, p, validBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp types.TranscriptionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Transcription != "hello" || resp.Analysis != nil {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestTranscribeRejectsMalformedBody(t *testing.T) {
	w := doRequest(t, &stubPipeline{}, `{"video_url": 42}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestTranscribeStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "input error",
			err:  &orchestrator.StageError{Stage: "validate", Class: orchestrator.ClassInput, Err: timerange.ErrInvalidRange},
			want: http.StatusBadRequest,
		},
		{
			name: "fetch failure",
			err:  &orchestrator.StageError{Stage: "fetch", Class: orchestrator.ClassUpstream, Err: errors.New("boom")},
			want: http.StatusBadGateway,
		},
		{
			name: "transcribe failure",
			err:  &orchestrator.StageError{Stage: "transcribe", Class: orchestrator.ClassUpstream, Err: errors.New("boom")},
			want: http.StatusBadGateway,
		},
		{
			name: "unexpected error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, &stubPipeline{err: tc.err}, validBody)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
			if tc.want != http.StatusBadRequest && strings.Contains(w.Body.String(), "boom") {
				t.Errorf("downstream detail leaked to caller: %s", w.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(&stubPipeline{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}
