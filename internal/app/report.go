package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/demoscript/internal/cli"
	apperrors "github.com/agbru/demoscript/internal/errors"
	"github.com/agbru/demoscript/internal/format"
	"github.com/agbru/demoscript/internal/logging"
	"github.com/agbru/demoscript/internal/metrics"
	"github.com/agbru/demoscript/internal/report"
	"github.com/agbru/demoscript/internal/tui"
	"github.com/agbru/demoscript/internal/users"
)

// runReport executes the report pipeline and hands the result to the
// configured front end (plain CLI output or the TUI dashboard).
func (a *Application) runReport(ctx context.Context, out io.Writer) int {
	roster, err := a.loadRoster()
	if err != nil {
		a.Logger.Error("failed to load roster", err, logging.String("file", a.Config.UsersFile))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	var recorder *metrics.Recorder
	if a.Config.Metrics {
		recorder = metrics.NewRecorder()
	}

	// The spinner only animates in verbose CLI mode; the default run must
	// produce nothing but the report lines.
	progress := cli.NewProgressIndicator(a.Config.Verbose && !a.Config.TUI, a.ErrWriter)

	observe := func(stage string, d time.Duration) {
		progress.Advance(stage)
		if recorder != nil {
			recorder.ObserveStage(stage, d)
		}
		a.Logger.Debug("stage complete",
			logging.String("stage", stage),
			logging.String("duration", format.FormatExecutionDuration(d)))
	}

	rep := report.Build(report.Inputs{
		Terms:      a.Config.Terms,
		PrimeLimit: a.Config.PrimeLimit,
		Roster:     roster,
	}, observe)
	progress.Done()

	if recorder != nil {
		recorder.CaptureMemory()
	}

	if a.Config.TUI {
		return a.presentTUI(ctx, rep)
	}
	return a.presentCLI(rep, recorder, out)
}

// loadRoster returns the configured roster: the built-in demo trio, or the
// decoded contents of -users when set.
func (a *Application) loadRoster() ([]users.Record, error) {
	if a.Config.UsersFile == "" {
		return users.DefaultRoster(), nil
	}
	return users.LoadRoster(a.Config.UsersFile)
}

// presentCLI writes the report, optional stage summary, and optional
// metrics dump to out.
func (a *Application) presentCLI(rep report.Report, recorder *metrics.Recorder, out io.Writer) int {
	presenter := a.Presenter
	if presenter == nil {
		presenter = cli.CLIResultPresenter{}
	}

	presenter.PresentReport(rep, out)

	if a.Config.Verbose {
		presenter.PresentStageSummary(rep.Stages, out)
	}

	if recorder != nil {
		fmt.Fprintln(out)
		if err := recorder.WriteText(out); err != nil {
			a.Logger.Error("failed to write metrics", err)
			return apperrors.ExitErrorGeneric
		}
	}

	return apperrors.ExitSuccess
}

// presentTUI shows the finished report in the terminal dashboard.
func (a *Application) presentTUI(ctx context.Context, rep report.Report) int {
	if err := tui.Run(ctx, rep, Version); err != nil {
		a.Logger.Error("dashboard failed", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
