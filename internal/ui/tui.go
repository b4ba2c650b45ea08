// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program and the stop channel for playback
package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Control carries requests from the TUI back to the playback loop
type Control struct {
	Stop chan struct{}
	once sync.Once
}

// NewControl creates a new control handler
func NewControl() *Control {
	return &Control{
		Stop: make(chan struct{}),
	}
}

func (c *Control) stop() {
	c.once.Do(func() { close(c.Stop) })
}

// NewModel creates a new TUI model
func NewModel(info Info, ctrl *Control) Model {
	return Model{
		info:    info,
		state:   "playing",
		mark:    -1,
		control: ctrl,
	}
}

// NewProgram creates the TUI program. The caller starts it with Run and
// feeds it ProgressMsg and DoneMsg through Send.
func NewProgram(info Info, ctrl *Control) *tea.Program {
	return tea.NewProgram(NewModel(info, ctrl), tea.WithAltScreen())
}
