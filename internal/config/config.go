// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over environment variables, which
// take priority over the built-in defaults. The defaults reproduce the demo
// report exactly.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/demoscript/internal/errors"
	"github.com/agbru/demoscript/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "DEMOSCRIPT_"

// Default input values. These mirror the fixed inputs of the demo report.
const (
	DefaultTerms      = 10
	DefaultPrimeLimit = 30
)

// MaxPrimeLimit bounds the prime search so a mistyped limit cannot turn the
// trial-division scan into an hour-long run.
const MaxPrimeLimit = 100_000_000

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Terms is the number of Fibonacci terms to generate.
	Terms int
	// PrimeLimit is the inclusive upper bound of the prime search.
	PrimeLimit int
	// UsersFile is the path of a JSON roster replacing the built-in one
	// (empty for the default roster).
	UsersFile string
	// Quiet suppresses logging and progress; only the report is printed.
	Quiet bool
	// Verbose enables debug logging and the per-stage timing summary.
	Verbose bool
	// NoColor disables ANSI colors in auxiliary output.
	NoColor bool
	// Metrics appends a Prometheus text-format dump after the report.
	Metrics bool
	// TUI renders the finished report in the terminal dashboard.
	TUI bool
}

// DefaultConfig returns the configuration the program runs with when no
// flags or environment variables are set.
func DefaultConfig() AppConfig {
	return AppConfig{
		Terms:      DefaultTerms,
		PrimeLimit: DefaultPrimeLimit,
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set explicitly, and
// validates the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and parse error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp if help was requested, a parse error, or a
//     validation error.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.IntVar(&cfg.Terms, "n", cfg.Terms, fmt.Sprintf("number of Fibonacci terms to generate (max %d)", fibonacci.MaxTerms))
	fs.IntVar(&cfg.PrimeLimit, "limit", cfg.PrimeLimit, "inclusive upper bound of the prime search")
	fs.StringVar(&cfg.UsersFile, "users", "", "JSON file with user records replacing the built-in roster")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the report lines")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging and stage timings")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "print a Prometheus metrics dump after the report")
	fs.BoolVar(&cfg.TUI, "tui", false, "show the report in a terminal dashboard")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot honor.
// A negative term count or prime limit is accepted (both degrade to empty
// output); only upper bounds are enforced.
func (c AppConfig) Validate() error {
	if c.Terms > fibonacci.MaxTerms {
		return apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("the sum of %d terms overflows an int64; the maximum is %d", c.Terms, fibonacci.MaxTerms),
		}
	}
	if c.PrimeLimit > MaxPrimeLimit {
		return apperrors.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("limit %d exceeds the maximum of %d", c.PrimeLimit, MaxPrimeLimit),
		}
	}
	if c.Quiet && c.Verbose {
		return apperrors.ValidationError{
			Field:   "quiet",
			Message: "cannot combine -quiet with -verbose",
		}
	}
	if c.Quiet && c.TUI {
		return apperrors.ValidationError{
			Field:   "tui",
			Message: "cannot combine -quiet with -tui",
		}
	}
	return nil
}
