// Package metrics records per-stage execution metrics in a private
// Prometheus registry. The program is a batch process, so instead of
// serving a scrape endpoint it can dump the registry in text exposition
// format at the end of a run.
package metrics

import (
	"io"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "demoscript"

// Recorder collects stage counters, stage durations, and a heap snapshot.
type Recorder struct {
	registry      *prometheus.Registry
	stageRuns     *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	heapAlloc     prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, so tests and
// repeated runs never collide with the global default registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stageRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_runs_total",
			Help:      "Number of times each report stage has run.",
		}, []string{"stage"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of each report stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"stage"}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mem_heap_alloc_bytes",
			Help:      "Heap bytes in use, read at the end of the run.",
		}),
	}
	r.registry.MustRegister(r.stageRuns, r.stageDuration, r.heapAlloc)
	return r
}

// ObserveStage records one completed run of the named stage.
//
// Parameters:
//   - stage: The stage name ("fibonacci", "primes", "users").
//   - d: The stage's wall-clock duration.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	r.stageRuns.WithLabelValues(stage).Inc()
	r.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// CaptureMemory reads the runtime memory statistics and updates the heap
// gauge. Called once after the report is assembled.
func (r *Recorder) CaptureMemory() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	r.heapAlloc.Set(float64(m.HeapAlloc))
}

// WriteText gathers the registry and writes every metric family to out in
// Prometheus text exposition format.
//
// Parameters:
//   - out: The destination writer.
//
// Returns:
//   - error: A gather or encoding error.
func (r *Recorder) WriteText(out io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
