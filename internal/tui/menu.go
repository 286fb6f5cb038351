package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one selectable entry in a menu.
type MenuItem struct {
	Label string
	Desc  string
}

// MenuModel is a bubbletea model presenting a single-choice menu.
type MenuModel struct {
	title  string
	items  []MenuItem
	cursor int
	choice int
	done   bool
}

// NewMenuModel creates a menu with the given title and items.
func NewMenuModel(title string, items []MenuItem) MenuModel {
	return MenuModel{title: title, items: items, choice: -1}
}

// Choice returns the selected item index, or -1 when the menu was
// cancelled.
func (m MenuModel) Choice() int {
	return m.choice
}

// Init satisfies the tea.Model interface.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update satisfies the tea.Model interface.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = m.cursor
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.choice = -1
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View satisfies the tea.Model interface.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Label)
		if i == m.cursor {
			line = SelectedStyle.Render(fmt.Sprintf("> %s", item.Label))
		}
		b.WriteString(line)
		if item.Desc != "" {
			b.WriteString(FaintStyle.Render("  " + item.Desc))
		}
		b.WriteByte('\n')
	}
	b.WriteString(FaintStyle.Render("\n↑/↓ move · enter select · q quit\n"))
	return b.String()
}

// RunMenu presents the menu on the terminal and returns the chosen index,
// or -1 when the user cancelled.
func RunMenu(title string, items []MenuItem) (int, error) {
	p := tea.NewProgram(NewMenuModel(title, items))
	final, err := p.Run()
	if err != nil {
		return -1, err
	}
	if m, ok := final.(MenuModel); ok {
		return m.Choice(), nil
	}
	return -1, nil
}
