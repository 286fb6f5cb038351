package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testMenu() MenuModel {
	return NewMenuModel("choose", []MenuItem{
		{Label: "install mods"},
		{Label: "remove mods"},
		{Label: "continue", Desc: "move to the next step"},
	})
}

func TestMenuSelect(t *testing.T) {
	m := testMenu()

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(MenuModel)
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(MenuModel)

	if m.Choice() != 1 {
		t.Errorf("expected choice 1, got %d", m.Choice())
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestMenuVimKeys(t *testing.T) {
	m := testMenu()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(MenuModel)
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(MenuModel)
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(MenuModel)
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(MenuModel)

	if m.Choice() != 1 {
		t.Errorf("expected choice 1, got %d", m.Choice())
	}
}

func TestMenuCursorStaysInBounds(t *testing.T) {
	m := testMenu()

	updated, _ := m.Update(keyMsg("up"))
	m = updated.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor moved above first item: %d", m.cursor)
	}

	for i := 0; i < 5; i++ {
		updated, _ = m.Update(keyMsg("down"))
		m = updated.(MenuModel)
	}
	if m.cursor != 2 {
		t.Errorf("cursor moved past last item: %d", m.cursor)
	}
}

func TestMenuCancel(t *testing.T) {
	m := testMenu()

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(MenuModel)
	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(MenuModel)

	if m.Choice() != -1 {
		t.Errorf("expected cancelled choice -1, got %d", m.Choice())
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestMenuView(t *testing.T) {
	m := testMenu()
	view := m.View()

	for _, want := range []string{"choose", "install mods", "remove mods", "move to the next step"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if !strings.Contains(view, "> install mods") {
		t.Error("expected cursor on first item")
	}
}
