// ABOUTME: Tests for TUI model and state management
// ABOUTME: Tests progress updates, key handling and rendering helpers
package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testInfo() Info {
	return Info{
		Chars:      []rune("sos me"),
		WPM:        20,
		Frequency:  600,
		SampleRate: 22050,
		NoiseKind:  "pink",
		NoiseLevel: 0.2,
		Backend:    "oto",
		Seed:       42,
	}
}

func TestNewModel(t *testing.T) {
	model := NewModel(testInfo(), nil) // Control is optional for testing

	if model.state != "playing" {
		t.Errorf("expected state 'playing', got '%s'", model.state)
	}
	if model.mark != -1 {
		t.Errorf("expected mark -1 before playback, got %d", model.mark)
	}
	if model.sentText() != "" {
		t.Errorf("expected no sent text, got %q", model.sentText())
	}
}

func TestProgressMsg(t *testing.T) {
	model := NewModel(testInfo(), nil)

	updated, cmd := model.Update(ProgressMsg{Elapsed: 1.5, Total: 3, Mark: 4})
	if cmd != nil {
		t.Error("expected no command for progress")
	}
	m := updated.(Model)

	if m.elapsed != 1.5 || m.total != 3 || m.mark != 4 {
		t.Errorf("progress not applied: %+v", m)
	}
	if m.sentText() != "sos m" {
		t.Errorf("expected sent text 'sos m', got %q", m.sentText())
	}
}

func TestDoneMsgQuits(t *testing.T) {
	model := NewModel(testInfo(), nil)

	updated, cmd := model.Update(DoneMsg{Err: errors.New("device lost")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	m := updated.(Model)
	if m.state != "done" || m.err == nil {
		t.Errorf("expected done state with error, got %s / %v", m.state, m.err)
	}
}

func TestQuitKeyStopsPlayback(t *testing.T) {
	ctrl := NewControl()
	model := NewModel(testInfo(), ctrl)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	select {
	case <-ctrl.Stop:
	default:
		t.Fatal("expected stop to be signalled")
	}

	// a second stop must not panic on the closed channel
	updated.(Model).Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if updated.(Model).state != "stopping" {
		t.Errorf("expected state 'stopping', got '%s'", updated.(Model).state)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	model := NewModel(testInfo(), NewControl())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("expected no command for unbound key")
	}
}

func TestView(t *testing.T) {
	model := NewModel(testInfo(), nil)
	if model.View() != "Loading..." {
		t.Error("expected loading view before the first resize")
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated, _ = updated.Update(ProgressMsg{Elapsed: 1, Total: 2, Mark: 1})
	view := updated.View()

	for _, want := range []string{"CW Generator", "20wpm", "600Hz", "pink 0.20", "50%", "Sending: O", "Sent:    SO"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewNoiseOff(t *testing.T) {
	info := testInfo()
	info.NoiseLevel = 0
	updated, _ := NewModel(info, nil).Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if !strings.Contains(updated.View(), "Noise: off") {
		t.Error("expected noise shown as off")
	}
}

func TestTruncateFunction(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"this is longer than allowed", 10, "this is..."},
		{"", 10, ""},
		{"abc", 3, "abc"},
		{"abcde", 4, "a..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q",
				tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestTailFunction(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"this is longer than allowed", 10, "...allowed"},
		{"abcde", 4, "...e"},
	}

	for _, tt := range tests {
		result := tail(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("tail(%q, %d) = %q, expected %q",
				tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{0, "░░░░"},
		{50, "██░░"},
		{100, "████"},
		{150, "████"},
	}

	for _, tt := range tests {
		if got := renderBar(tt.value, 100, 4); got != tt.expected {
			t.Errorf("renderBar(%d) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
