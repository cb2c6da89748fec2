package ui

import (
	"os"
	"testing"
)

// TestInitTheme verifies flag and environment handling.
func TestInitTheme(t *testing.T) {
	t.Cleanup(func() { SetCurrentTheme(DarkTheme) })

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if got := GetCurrentTheme(); got.Name != "none" {
			t.Errorf("theme = %q, want %q", got.Name, "none")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if got := GetCurrentTheme(); got.Name != "none" {
			t.Errorf("theme = %q, want %q", got.Name, "none")
		}
	})

	t.Run("empty NO_COLOR still disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if got := GetCurrentTheme(); got.Name != "none" {
			t.Errorf("theme = %q, want %q", got.Name, "none")
		}
	})

	t.Run("colors enabled by default", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if got := GetCurrentTheme(); got.Name != "dark" {
			t.Errorf("theme = %q, want %q", got.Name, "dark")
		}
	})
}

// TestSetCurrentTheme verifies the getter/setter round trip.
func TestSetCurrentTheme(t *testing.T) {
	t.Cleanup(func() { SetCurrentTheme(DarkTheme) })

	SetCurrentTheme(NoColorTheme)
	if got := GetCurrentTheme(); got.Name != "none" {
		t.Errorf("theme = %q, want %q", got.Name, "none")
	}

	SetCurrentTheme(DarkTheme)
	if got := GetCurrentTheme(); got.Name != "dark" {
		t.Errorf("theme = %q, want %q", got.Name, "dark")
	}
}

// TestGetCurrentTUITheme verifies the CLI-to-TUI theme mapping.
func TestGetCurrentTUITheme(t *testing.T) {
	t.Cleanup(func() { SetCurrentTheme(DarkTheme) })

	SetCurrentTheme(NoColorTheme)
	if got := GetCurrentTUITheme(); got != NoColorTUITheme {
		t.Error("no-color theme should map to NoColorTUITheme")
	}

	SetCurrentTheme(DarkTheme)
	if got := GetCurrentTUITheme(); got != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}

// TestColorAccessors verifies the accessors track the active theme.
func TestColorAccessors(t *testing.T) {
	t.Cleanup(func() { SetCurrentTheme(DarkTheme) })

	SetCurrentTheme(DarkTheme)
	if ColorSuccess() == "" || ColorReset() == "" {
		t.Error("dark theme accessors should return escape codes")
	}

	SetCurrentTheme(NoColorTheme)
	for name, got := range map[string]string{
		"Primary":   ColorPrimary(),
		"Success":   ColorSuccess(),
		"Warning":   ColorWarning(),
		"Error":     ColorError(),
		"Info":      ColorInfo(),
		"Bold":      ColorBold(),
		"Underline": ColorUnderline(),
		"Reset":     ColorReset(),
	} {
		if got != "" {
			t.Errorf("Color%s() = %q with colors disabled, want empty", name, got)
		}
	}
}
