package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles the CLI into a temporary directory and returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()

	binName := "demoscript"
	if runtime.GOOS == "windows" {
		binName = "demoscript.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/demoscript")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build demoscript: %v", err)
	}
	return binPath
}

// TestCLI_DefaultOutput verifies the exact stdout of a default run. This is
// the program's primary contract, so stderr is kept separate and stdout is
// compared byte for byte.
func TestCLI_DefaultOutput(t *testing.T) {
	binPath := buildBinary(t)

	cmd := exec.Command(binPath)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
	}

	want := "Fibonacci(10): [0, 1, 1, 2, 3, 5, 8, 13, 21, 34]\n" +
		"Primes up to 30: [2, 3, 5, 7, 11, 13, 17, 19, 23, 29]\n" +
		"  Alice: adult\n" +
		"  Bob: minor\n" +
		"  Charlie: senior\n" +
		"Total: 217\n"

	if stdout.String() != want {
		t.Errorf("stdout mismatch:\ngot:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

// TestCLI_E2E verifies the built binary across its flag surface.
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	rosterPath := filepath.Join(t.TempDir(), "bad_users.json")
	if err := os.WriteFile(rosterPath, []byte(`[{"name": "NoAge"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Custom Inputs",
			args:     []string{"-n", "5", "-limit", "10"},
			wantOut:  "Fibonacci(5): [0, 1, 1, 2, 3]",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-q"},
			wantOut:  "Total: 217",
			wantCode: 0,
		},
		{
			name:     "Verbose Stage Summary",
			args:     []string{"-v"},
			wantOut:  "stage summary",
			wantCode: 0,
		},
		{
			name:     "Metrics Dump",
			args:     []string{"-metrics"},
			wantOut:  "demoscript_stage_runs_total",
			wantCode: 0,
		},
		{
			name:     "Zero Terms",
			args:     []string{"-n", "0", "-limit", "1"},
			wantOut:  "Total: 0",
			wantCode: 0,
		},
		{
			name:     "Missing Field In Roster",
			args:     []string{"-users", rosterPath},
			wantOut:  "missing required field",
			wantCode: 4,
		},
		{
			name:     "Too Many Terms",
			args:     []string{"-n", "92"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Quiet Verbose Conflict",
			args:     []string{"-q", "-v"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Env Override",
			args:     nil,
			env:      []string{"DEMOSCRIPT_N=3"},
			wantOut:  "Fibonacci(3): [0, 1, 1]",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "demoscript",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Env = append(cmd.Env, tt.env...)
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Fatalf("Expected exit code %d, but command succeeded.\nOutput: %s", tt.wantCode, outStr)
				}
				if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("Exit code mismatch: got %d, want %d", exitErr.ExitCode(), tt.wantCode)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}
