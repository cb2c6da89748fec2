// Package app wires configuration, logging, metrics, and presentation into
// the runnable demoscript application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/demoscript/internal/config"
	apperrors "github.com/agbru/demoscript/internal/errors"
	"github.com/agbru/demoscript/internal/logging"
	"github.com/agbru/demoscript/internal/report"
	"github.com/agbru/demoscript/internal/ui"
)

// Application represents the demoscript application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Presenter report.Presenter
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithPresenter sets a custom report presenter for the application.
func WithPresenter(p report.Presenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector, including the program name.
//   - errWriter: The writer for usage and error output.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when help was requested, or a config error.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "demoscript"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The context for cancellation (used by the TUI event loop).
//   - out: The writer for the report output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(logLevel(a.Config))
	ui.InitTheme(a.Config.NoColor)

	if a.Logger == nil {
		a.Logger = logging.NewDefaultLogger()
	}

	return a.runReport(ctx, out)
}

// logLevel maps the quiet/verbose flags to a zerolog level.
func logLevel(cfg config.AppConfig) zerolog.Level {
	switch {
	case cfg.Quiet:
		return zerolog.ErrorLevel
	case cfg.Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCode maps a construction error to the process exit code.
func ExitCode(err error) int {
	return apperrors.ExitCodeFor(err)
}
