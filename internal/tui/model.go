// Package tui renders a finished report as a read-only terminal dashboard.
// The pipeline completes before the dashboard starts, so the model has no
// execution state to track; it lays out the report panels and waits for a
// quit key.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/demoscript/internal/format"
	"github.com/agbru/demoscript/internal/report"
)

// KeyMap defines the key bindings of the dashboard.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the standard dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the root bubbletea model for the report dashboard.
type Model struct {
	report  report.Report
	version string
	keymap  KeyMap
	styles  Styles
	width   int
	height  int
}

// NewModel creates a dashboard model for the given report.
func NewModel(rep report.Report, version string) Model {
	return Model{
		report:  rep,
		version: version,
		keymap:  DefaultKeyMap(),
		styles:  NewStyles(),
	}
}

// Init implements tea.Model. The report is already complete, so there is
// nothing to kick off.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("demoscript %s", m.version)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Panel.Render(m.sequencePanel()))
	b.WriteString("\n")
	b.WriteString(m.styles.Panel.Render(m.primesPanel()))
	b.WriteString("\n")
	b.WriteString(m.styles.Panel.Render(m.usersPanel()))
	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(fmt.Sprintf("Total: %d", m.report.Total)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render(m.keymap.Quit.Help().Key + " " + m.keymap.Quit.Help().Desc))
	b.WriteString("\n")

	return b.String()
}

// sequencePanel renders the Fibonacci section.
func (m Model) sequencePanel() string {
	values := make([]string, len(m.report.Sequence))
	for i, v := range m.report.Sequence {
		values[i] = fmt.Sprintf("%d", v)
	}
	return m.styles.Label.Render(fmt.Sprintf("Fibonacci(%d)", m.report.Terms)) + "\n" +
		m.styles.Value.Render(strings.Join(values, ", "))
}

// primesPanel renders the primes section.
func (m Model) primesPanel() string {
	values := make([]string, len(m.report.Primes))
	for i, v := range m.report.Primes {
		values[i] = fmt.Sprintf("%d", v)
	}
	return m.styles.Label.Render(fmt.Sprintf("Primes up to %d", m.report.PrimeLimit)) + "\n" +
		m.styles.Value.Render(strings.Join(values, ", "))
}

// usersPanel renders the classified roster with stage timings appended.
func (m Model) usersPanel() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Users"))
	for _, c := range m.report.Classified {
		b.WriteString("\n")
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("%s (%d): %s", c.Name, c.Age, c.Status)))
	}
	if len(m.report.Stages) > 0 {
		b.WriteString("\n")
		parts := make([]string, len(m.report.Stages))
		for i, st := range m.report.Stages {
			parts[i] = fmt.Sprintf("%s %s", st.Name, format.FormatExecutionDuration(st.Duration))
		}
		b.WriteString(m.styles.Footer.Render(strings.Join(parts, " · ")))
	}
	return b.String()
}

// Run starts the dashboard program and blocks until the user quits or the
// context is canceled.
//
// Parameters:
//   - ctx: The context bounding the event loop.
//   - rep: The finished report to display.
//   - version: The application version shown in the title.
//
// Returns:
//   - error: A terminal setup or event loop error.
func Run(ctx context.Context, rep report.Report, version string) error {
	program := tea.NewProgram(NewModel(rep, version), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
