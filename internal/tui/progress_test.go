package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRowUpdateMsg(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "MOD", Width: 20},
		{Header: "VERSION", Width: 10},
		{Header: "STATUS", Width: 10},
	})
	m.AddRow("AutomaticGates", []string{"AutomaticGates", "1.5.0", "pending"})
	m.AddRow("UIInfoSuite2", []string{"UIInfoSuite2", "2.3.7", "pending"})

	updated, _ := m.Update(RowUpdateMsg{
		Key:    "AutomaticGates",
		Fields: map[string]string{"STATUS": "installed"},
	})
	m = updated.(ProgressModel)

	if m.rows[0].Fields[2] != "installed" {
		t.Errorf("expected STATUS=installed, got %q", m.rows[0].Fields[2])
	}
	// Second row unchanged.
	if m.rows[1].Fields[2] != "pending" {
		t.Errorf("expected row 2 STATUS=pending, got %q", m.rows[1].Fields[2])
	}
}

func TestRowUpdateMsg_UnknownKey(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})
	m.AddRow("AutomaticGates", []string{"pending"})

	updated, _ := m.Update(RowUpdateMsg{
		Key:    "NoSuchMod",
		Fields: map[string]string{"STATUS": "installed"},
	})
	m = updated.(ProgressModel)

	if m.rows[0].Fields[0] != "pending" {
		t.Errorf("expected STATUS unchanged, got %q", m.rows[0].Fields[0])
	}
}

func TestWorkDoneMsg(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})

	updated, cmd := m.Update(WorkDoneMsg{})
	m = updated.(ProgressModel)

	if !m.done {
		t.Error("expected done after WorkDoneMsg")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestErrorMsg(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})

	updated, cmd := m.Update(ErrorMsg{Err: errors.New("copy failed")})
	m = updated.(ProgressModel)

	if !m.done {
		t.Error("expected done after ErrorMsg")
	}
	if m.Err() == nil {
		t.Error("expected Err() to be non-nil")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestView(t *testing.T) {
	m := NewProgressModel("installing mods", []Column{
		{Header: "MOD", Width: 20},
		{Header: "VERSION", Width: 10},
		{Header: "STATUS", Width: 10},
	})
	m.AddRow("AutomaticGates", []string{"AutomaticGates", "1.5.0", "pending"})
	m.AddRow("UIInfoSuite2", []string{"UIInfoSuite2", "2.3.7", "installed"})

	view := m.View()

	for _, want := range []string{"MOD", "VERSION", "STATUS", "AutomaticGates", "UIInfoSuite2", "pending", "installed"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestTickMsg(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})
	m.AddRow("AutomaticGates", []string{"pending"})

	updated, cmd := m.Update(tickMsg{})
	m = updated.(ProgressModel)

	if m.tick != 1 {
		t.Errorf("expected tick=1 after tickMsg, got %d", m.tick)
	}
	if cmd == nil {
		t.Error("expected next tick command")
	}
}

func TestTickStopsAfterDone(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})
	updated, _ := m.Update(WorkDoneMsg{})
	m = updated.(ProgressModel)

	updated, cmd := m.Update(tickMsg{})
	m = updated.(ProgressModel)

	if cmd != nil {
		t.Error("expected no tick command after done")
	}
}

func TestProgressCounts(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "MOD", Width: 20},
		{Header: "STATUS", Width: 10},
	})
	m.AddRow("a", []string{"a", "pending"})
	m.AddRow("b", []string{"b", "pending"})
	m.AddRow("c", []string{"c", "installed"})

	processed, total := m.progressCounts()
	if total != 3 {
		t.Errorf("expected total=3, got %d", total)
	}
	if processed != 1 {
		t.Errorf("expected processed=1, got %d", processed)
	}
}

func TestViewShowsSpinnerWhenNotDone(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})
	m.AddRow("a", []string{"pending"})

	if !strings.Contains(m.View(), "Processing") {
		t.Error("expected view to contain Processing footer when not done")
	}
}

func TestViewHidesSpinnerWhenDone(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})
	m.AddRow("a", []string{"installed"})
	updated, _ := m.Update(WorkDoneMsg{})
	m = updated.(ProgressModel)

	if strings.Contains(m.View(), "Processing") {
		t.Error("expected view to NOT contain Processing footer when done")
	}
}

func TestCtrlC(t *testing.T) {
	m := NewProgressModel("test", []Column{
		{Header: "STATUS", Width: 10},
	})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(ProgressModel)

	if !m.done {
		t.Error("expected done after ctrl+c")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"a longer string here", 10, "a longe..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		got := TruncateWithEllipsis(tt.input, tt.max)
		if got != tt.want {
			t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestNonEmptyOrDash(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "-"},
		{"  ", "-"},
		{"2.3.7", "2.3.7"},
		{" 2.3.7 ", "2.3.7"},
	}
	for _, tt := range tests {
		got := NonEmptyOrDash(tt.input)
		if got != tt.want {
			t.Errorf("NonEmptyOrDash(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
