package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"clipscribe/demo/client"
	"clipscribe/types"
)

// submitRequest runs the blocking API call off the update loop.
func submitRequest(c *client.Client, req types.TranscriptionRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.Transcribe(context.Background(), req)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{resp: resp}
	}
}
