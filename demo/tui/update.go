package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tickMsg:
		if m.State == StateSubmitting {
			m.Elapsed = time.Since(m.Started)
			return m, tick()
		}

	case resultMsg:
		m.State = StateComplete
		m.Response = msg.resp
		m.Elapsed = time.Since(m.Started)

	case errMsg:
		m.State = StateError
		m.Err = msg.err
		m.Elapsed = time.Since(m.Started)
	}

	return m, nil
}
