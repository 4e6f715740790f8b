package types

// TranscriptionRequest is the payload accepted by POST /api/transcribe.
// The analyze_* flags are accepted for forward compatibility but are not
// implemented yet; they only participate in cache key derivation.
type TranscriptionRequest struct {
	VideoURL  string `json:"video_url" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	// GenerateSRT defaults to true when omitted.
	GenerateSRT *bool `json:"generate_srt"`

	AnalyzeSentiment     bool `json:"analyze_sentiment"`
	AnalyzePOS           bool `json:"analyze_pos"`
	AnalyzeWordFrequency bool `json:"analyze_word_frequency"`
	AnalyzeTopic         bool `json:"analyze_topic"`
}

// WantSRT reports whether SRT output was requested (default true).
func (r TranscriptionRequest) WantSRT() bool {
	return r.GenerateSRT == nil || *r.GenerateSRT
}

// Segment is a timestamped span of recognized speech. Segments arrive from
// the transcriber in chronological order and are never mutated afterwards.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResponse is the full response payload, also the unit stored
// in the result cache.
type TranscriptionResponse struct {
	Message          string  `json:"message"`
	Transcription    string  `json:"transcription"`
	SRTTranscription *string `json:"srt_transcription"`

	// Analysis is always null until the analyze_* features land.
	Analysis any `json:"analysis"`

	OriginalURL string `json:"original_url"`
	TimeRange   string `json:"time_range"`

	DownloadSeconds      float64 `json:"download_seconds"`
	TranscriptionSeconds float64 `json:"transcription_seconds"`
	TotalSeconds         float64 `json:"total_seconds"`
}
