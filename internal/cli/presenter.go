package cli

import (
	"io"

	"github.com/agbru/demoscript/internal/report"
)

// CLIResultPresenter implements report.Presenter for command-line output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ report.Presenter = CLIResultPresenter{}

// PresentReport writes the report body using DisplayReport.
func (CLIResultPresenter) PresentReport(rep report.Report, out io.Writer) {
	DisplayReport(out, rep)
}

// PresentStageSummary writes the timing table using DisplayStageSummary.
func (CLIResultPresenter) PresentStageSummary(stages []report.StageResult, out io.Writer) {
	DisplayStageSummary(out, stages)
}
