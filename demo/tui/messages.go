package tui

import "clipscribe/types"

// resultMsg carries a completed transcription back into the update loop.
type resultMsg struct {
	resp *types.TranscriptionResponse
}

// errMsg carries a failed request back into the update loop.
type errMsg struct {
	err error
}
