package report

import "io"

// Presenter renders an assembled report. The pipeline does not print;
// presentation is injected so the CLI and TUI front ends (and tests) can
// render the same Report their own way.
type Presenter interface {
	// PresentReport writes the report body to out.
	PresentReport(rep Report, out io.Writer)
	// PresentStageSummary writes the per-stage timing summary to out.
	PresentStageSummary(stages []StageResult, out io.Writer)
}
