//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate defines the animation interval of the progress spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples the progress indicator from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressIndicator drives a spinner across the report stages. The stages
// complete in microseconds, so the indicator exists for parity with slow
// inputs (a large -limit) rather than as a fixture of every run; it writes
// to the given writer, never to the report stream.
type ProgressIndicator struct {
	sp      Spinner
	enabled bool
}

// NewProgressIndicator creates a progress indicator writing to out.
// When enabled is false every method is a no-op, which is how quiet and
// default runs avoid any terminal animation.
//
// Parameters:
//   - enabled: Whether the indicator should animate at all.
//   - out: The writer the spinner draws on (normally stderr).
//
// Returns:
//   - *ProgressIndicator: The indicator.
func NewProgressIndicator(enabled bool, out io.Writer) *ProgressIndicator {
	if !enabled {
		return &ProgressIndicator{}
	}
	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	return &ProgressIndicator{sp: sp, enabled: true}
}

// Advance updates the spinner text as the pipeline moves past the named
// stage.
func (p *ProgressIndicator) Advance(name string) {
	if !p.enabled {
		return
	}
	p.sp.UpdateSuffix(" " + name)
}

// Done stops the spinner.
func (p *ProgressIndicator) Done() {
	if !p.enabled {
		return
	}
	p.sp.Stop()
}
