// ABOUTME: Bubbletea model for the playback TUI
// ABOUTME: Shows settings, progress and the character being sent
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Info describes what is being played
type Info struct {
	Chars      []rune // one per mark, ' ' for word gaps
	WPM        float64
	Frequency  float64
	SampleRate int
	NoiseKind  string
	NoiseLevel float64
	Backend    string
	Seed       uint64
}

// Model represents the TUI state
type Model struct {
	info Info

	// Playback
	state   string
	elapsed float64
	total   float64
	mark    int
	err     error

	control *Control

	// Dimensions
	width  int
	height int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ProgressMsg:
		m.applyProgress(msg)
	case DoneMsg:
		m.state = "done"
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderSettings()
	s += m.renderProgress()
	s += m.renderHelp()

	return s
}

// renderHeader renders playback state
func (m Model) renderHeader() string {
	status := "Playing"
	switch {
	case m.err != nil:
		status = "Error: " + m.err.Error()
	case m.state == "done":
		status = "Finished"
	case m.state == "stopping":
		status = "Stopping..."
	}

	return fmt.Sprintf(`┌─ CW Generator ───────────────────────────────────────┐
│ Status: %-45s │
├──────────────────────────────────────────────────────┤
`, truncate(status, 45))
}

// renderSettings renders the synthesis settings
func (m Model) renderSettings() string {
	noise := "off"
	if m.info.NoiseLevel > 0 {
		noise = fmt.Sprintf("%s %.2f", m.info.NoiseKind, m.info.NoiseLevel)
	}

	return fmt.Sprintf("│ Speed: %-6s Tone: %-8s Noise: %-18s │\n"+
		"│ Output: %-12s Seed: %-25s │\n",
		fmt.Sprintf("%.0fwpm", m.info.WPM),
		fmt.Sprintf("%.0fHz", m.info.Frequency),
		truncate(noise, 18),
		truncate(fmt.Sprintf("%s %dHz", m.info.Backend, m.info.SampleRate), 12),
		fmt.Sprintf("%d", m.info.Seed))
}

// renderProgress renders the progress bar and sent text
func (m Model) renderProgress() string {
	percent := 0
	if m.total > 0 {
		percent = int(m.elapsed / m.total * 100)
	}

	current := ""
	if m.mark >= 0 && m.mark < len(m.info.Chars) && m.info.Chars[m.mark] != ' ' {
		current = strings.ToUpper(string(m.info.Chars[m.mark]))
	}

	return fmt.Sprintf("│                                                      │\n"+
		"│ [%s] %3d%% %5.1fs/%-5.1fs │\n"+
		"│ Sending: %-44s │\n"+
		"│ Sent:    %-44s │\n"+
		"├──────────────────────────────────────────────────────┤\n",
		renderBar(percent, 100, 30), percent, m.elapsed, m.total,
		current,
		tail(strings.ToUpper(m.sentText()), 44))
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ q:Stop                                               │
└──────────────────────────────────────────────────────┘
`
}

// sentText returns the characters up to and including the current mark
func (m Model) sentText() string {
	if m.mark < 0 {
		return ""
	}
	end := m.mark + 1
	if end > len(m.info.Chars) {
		end = len(m.info.Chars)
	}
	return string(m.info.Chars[:end])
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.state = "stopping"
		if m.control != nil {
			m.control.stop()
		}
		return m, tea.Quit
	}

	return m, nil
}

// applyProgress updates model from a progress message
func (m *Model) applyProgress(msg ProgressMsg) {
	m.elapsed = msg.Elapsed
	m.total = msg.Total
	m.mark = msg.Mark
}

// ProgressMsg updates playback position
type ProgressMsg struct {
	Elapsed float64 // seconds
	Total   float64 // seconds
	Mark    int
}

// DoneMsg reports that playback ended
type DoneMsg struct {
	Err error
}

// Utility functions
func renderBar(value, max, width int) string {
	if value > max {
		value = max
	}
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

// tail keeps the end of s, which is where new characters appear
func tail(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return "..." + s[len(s)-length+3:]
}
