// Package report assembles the demo report: the Fibonacci prefix, the prime
// list, the classified roster, and the aggregate total. Stages run strictly
// in that order; each consumes only its own input, and the report is the
// only thing the stages share.
package report

import (
	"time"

	"github.com/agbru/demoscript/internal/fibonacci"
	"github.com/agbru/demoscript/internal/primes"
	"github.com/agbru/demoscript/internal/users"
)

// Stage names, used for metrics labels and the timing summary.
const (
	StageFibonacci = "fibonacci"
	StagePrimes    = "primes"
	StageUsers     = "users"
)

// StageResult records the outcome of a single report stage.
type StageResult struct {
	// Name is the stage identifier.
	Name string
	// Duration is the time the stage took to complete.
	Duration time.Duration
}

// Inputs holds everything the pipeline needs to build a report.
type Inputs struct {
	// Terms is the number of Fibonacci terms to generate.
	Terms int
	// PrimeLimit is the inclusive upper bound of the prime search.
	PrimeLimit int
	// Roster is the list of user records to classify.
	Roster []users.Record
}

// Report is the assembled result of one pipeline run.
type Report struct {
	// Terms and PrimeLimit echo the inputs, for the report labels.
	Terms      int
	PrimeLimit int

	// Sequence is the generated Fibonacci prefix.
	Sequence []int64
	// Primes is the list of primes found.
	Primes []int
	// Classified is the classified roster, in input order.
	Classified []users.Classified
	// Total is sum(Sequence) + sum(Primes).
	Total int64

	// Stages holds the per-stage timings, in execution order.
	Stages []StageResult
}

// StageObserver is notified after each stage completes. Used to feed the
// metrics recorder and the progress indicator without coupling the pipeline
// to either.
type StageObserver func(stage string, d time.Duration)

// Build runs the three stages in fixed order and assembles the report.
// The observer may be nil. Build cannot fail: every stage is a total
// function of its input, and roster decoding errors are surfaced before
// the pipeline runs.
//
// Parameters:
//   - in: The pipeline inputs.
//   - observe: An optional per-stage completion callback.
//
// Returns:
//   - Report: The assembled report.
func Build(in Inputs, observe StageObserver) Report {
	rep := Report{Terms: in.Terms, PrimeLimit: in.PrimeLimit}

	rep.Sequence = runStage(&rep, StageFibonacci, observe, func() []int64 {
		return fibonacci.Sequence(in.Terms)
	})
	rep.Primes = runStage(&rep, StagePrimes, observe, func() []int {
		return primes.UpTo(in.PrimeLimit)
	})
	rep.Classified = runStage(&rep, StageUsers, observe, func() []users.Classified {
		return users.Classify(in.Roster)
	})

	rep.Total = fibonacci.Sum(rep.Sequence) + primes.Sum(rep.Primes)
	return rep
}

// runStage times fn, appends its StageResult, and notifies the observer.
func runStage[T any](rep *Report, name string, observe StageObserver, fn func() T) T {
	start := time.Now()
	result := fn()
	elapsed := time.Since(start)

	rep.Stages = append(rep.Stages, StageResult{Name: name, Duration: elapsed})
	if observe != nil {
		observe(name, elapsed)
	}
	return result
}
