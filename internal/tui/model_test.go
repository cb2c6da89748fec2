package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/demoscript/internal/report"
	"github.com/agbru/demoscript/internal/ui"
	"github.com/agbru/demoscript/internal/users"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(ui.DarkTheme) })

	rep := report.Build(report.Inputs{
		Terms:      10,
		PrimeLimit: 30,
		Roster:     users.DefaultRoster(),
	}, nil)
	return NewModel(rep, "1.0.0")
}

// TestModelInit verifies there is no startup command.
func TestModelInit(t *testing.T) {
	if cmd := newTestModel(t).Init(); cmd != nil {
		t.Error("Init() should return nil: the report is already complete")
	}
}

// TestModelUpdate_Quit verifies every quit binding ends the program.
func TestModelUpdate_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := newTestModel(t).Update(tt.msg)
			if cmd == nil {
				t.Fatal("quit key should produce a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("quit key should produce tea.Quit, got %T", cmd())
			}
		})
	}
}

// TestModelUpdate_OtherKeys verifies non-quit keys are ignored.
func TestModelUpdate_OtherKeys(t *testing.T) {
	_, cmd := newTestModel(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("non-quit keys should not produce a command")
	}
}

// TestModelUpdate_WindowSize verifies the model records the terminal size.
func TestModelUpdate_WindowSize(t *testing.T) {
	updated, cmd := newTestModel(t).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil {
		t.Error("resize should not produce a command")
	}

	m, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", updated)
	}
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.width, m.height)
	}
}

// TestModelView verifies the dashboard shows every report section.
func TestModelView(t *testing.T) {
	view := newTestModel(t).View()

	for _, want := range []string{
		"demoscript 1.0.0",
		"Fibonacci(10)",
		"Primes up to 30",
		"Alice (30): adult",
		"Bob (17): minor",
		"Charlie (65): senior",
		"Total: 217",
		"quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q, got:\n%s", want, view)
		}
	}
}

// TestModelView_Timings verifies stage timings appear when present.
func TestModelView_Timings(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"fibonacci", "primes", "users"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should show the %q stage timing, got:\n%s", want, view)
		}
	}
}
