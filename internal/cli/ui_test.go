package cli

import (
	"io"
	"testing"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/demoscript/internal/cli/mocks"
)

// withMockSpinner swaps the spinner factory for the duration of a test.
func withMockSpinner(t *testing.T, mock Spinner) {
	t.Helper()
	prev := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return mock }
	t.Cleanup(func() { newSpinner = prev })
}

// TestProgressIndicator_Enabled verifies the spinner lifecycle across a
// full pipeline run: start, one suffix update per stage, stop.
func TestProgressIndicator_Enabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocks.NewMockSpinner(ctrl)
	withMockSpinner(t, mock)

	gomock.InOrder(
		mock.EXPECT().Start(),
		mock.EXPECT().UpdateSuffix(" fibonacci"),
		mock.EXPECT().UpdateSuffix(" primes"),
		mock.EXPECT().UpdateSuffix(" users"),
		mock.EXPECT().Stop(),
	)

	p := NewProgressIndicator(true, io.Discard)
	p.Advance("fibonacci")
	p.Advance("primes")
	p.Advance("users")
	p.Done()
}

// TestProgressIndicator_Disabled verifies that a disabled indicator never
// touches the spinner.
func TestProgressIndicator_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocks.NewMockSpinner(ctrl)
	withMockSpinner(t, mock)
	// No EXPECT calls: any spinner interaction fails the test.

	p := NewProgressIndicator(false, io.Discard)
	p.Advance("fibonacci")
	p.Done()
}

// TestRealSpinner verifies the adapter satisfies the interface and wires
// the suffix through to the wrapped spinner.
func TestRealSpinner(t *testing.T) {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(io.Discard))
	var sp Spinner = &realSpinner{s}

	sp.UpdateSuffix(" working")
	if s.Suffix != " working" {
		t.Errorf("Suffix = %q, want %q", s.Suffix, " working")
	}
}
