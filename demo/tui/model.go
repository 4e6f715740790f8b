package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clipscribe/demo/client"
	"clipscribe/types"
)

// State represents the client state machine
type State string

const (
	StateSubmitting State = "submitting"
	StateComplete   State = "complete"
	StateError      State = "error"
)

// Model represents the TUI client state (thin client; the server does the work)
type Model struct {
	Client  *client.Client
	Request types.TranscriptionRequest

	State    State
	Started  time.Time
	Elapsed  time.Duration
	Response *types.TranscriptionResponse
	Err      error
}

// NewModel creates a model that submits req against the given client as soon
// as the program starts.
func NewModel(c *client.Client, req types.TranscriptionRequest) Model {
	return Model{
		Client:  c,
		Request: req,
		State:   StateSubmitting,
		Started: time.Now(),
	}
}

// tickMsg drives the elapsed-time display while waiting on the server.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(submitRequest(m.Client, m.Request), tick())
}
