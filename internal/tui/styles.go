package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles the column header row and menu titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// SelectedStyle highlights the active menu entry.
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// FaintStyle renders auxiliary hints.
	FaintStyle = lipgloss.NewStyle().Faint(true)

	statusStyles = map[string]lipgloss.Style{
		// Terminal states
		"installed": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"removed":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"present":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"done":      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),

		// Active states
		"installing": lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"removing":   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),

		// Skipped / warning
		"skipped": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"absent":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),

		// Error
		"failed": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"error":  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),

		// Pending
		"pending": lipgloss.NewStyle().Faint(true),
	}
)

// StatusStyle returns the lipgloss style for the given status string.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
