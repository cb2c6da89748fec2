package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/demoscript/internal/ui"
)

// Styles groups the lipgloss styles used by the dashboard view.
type Styles struct {
	Title  lipgloss.Style
	Panel  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Total  lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles builds the style set from the active TUI theme.
func NewStyles() Styles {
	theme := ui.GetCurrentTUITheme()
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text),
		Value: lipgloss.NewStyle().
			Foreground(theme.Text),
		Total: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Dim),
	}
}
