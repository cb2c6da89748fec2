// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayStageSummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatIntList], [FormatInt64List].

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/demoscript/internal/format"
	"github.com/agbru/demoscript/internal/report"
	"github.com/agbru/demoscript/internal/ui"
)

// FormatInt64List renders values in list notation: [0, 1, 1, 2].
//
// Parameters:
//   - values: The values to render.
//
// Returns:
//   - string: The bracketed, comma-separated list.
func FormatInt64List(values []int64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	return b.String()
}

// FormatIntList renders values in list notation: [2, 3, 5].
func FormatIntList(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	return b.String()
}

// DisplayReport writes the four report sections to out, in fixed order:
// the Fibonacci line, the primes line, one indented line per classified
// user, and the total line. This output is the program's contract and is
// written without any colorization.
//
// Parameters:
//   - out: The output writer.
//   - rep: The assembled report.
func DisplayReport(out io.Writer, rep report.Report) {
	fmt.Fprintf(out, "Fibonacci(%d): %s\n", rep.Terms, FormatInt64List(rep.Sequence))
	fmt.Fprintf(out, "Primes up to %d: %s\n", rep.PrimeLimit, FormatIntList(rep.Primes))
	for _, c := range rep.Classified {
		fmt.Fprintf(out, "  %s: %s\n", c.Name, c.Status)
	}
	fmt.Fprintf(out, "Total: %d\n", rep.Total)
}

// DisplayStageSummary displays the per-stage timing table shown in verbose
// mode. Uses manual padding to correctly handle ANSI color codes.
//
// Parameters:
//   - out: The output writer.
//   - stages: The stage results, in execution order.
func DisplayStageSummary(out io.Writer, stages []report.StageResult) {
	fmt.Fprintf(out, "\n--- Stage Summary ---\n")

	maxNameLen := 5 // "Stage" header length
	for _, st := range stages {
		if len(st.Name) > maxNameLen {
			maxNameLen = len(st.Name)
		}
	}

	fmt.Fprintf(out, "%sStage%s%s   %sDuration%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-5),
		ui.ColorUnderline(), ui.ColorReset())

	for _, st := range stages {
		duration := format.FormatExecutionDuration(st.Duration)
		if st.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s\n",
			ui.ColorPrimary(), st.Name, ui.ColorReset(), padRight("", maxNameLen-len(st.Name)),
			ui.ColorWarning(), duration, ui.ColorReset())
	}
}

// padRight returns s extended with spaces to the given extra length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
