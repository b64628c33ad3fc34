// Package metrics defines the injected observability collector for the
// analysis core. The core never keeps ambient global counters; callers that
// want latency or degradation tallies inject a Collector.
package metrics

import (
	"log/slog"
	"time"
)

// Collector receives analysis observations. Implementations must be safe
// for concurrent use.
type Collector interface {
	// ObserveAnalysis records one completed analysis operation.
	ObserveAnalysis(op string, d time.Duration, results int)
	// ObserveDegradation records a silent degradation (oracle failure,
	// alignment miss, rejected input, classification miss).
	ObserveDegradation(op, kind string)
}

// Nop discards all observations.
type Nop struct{}

func (Nop) ObserveAnalysis(string, time.Duration, int) {}
func (Nop) ObserveDegradation(string, string)          {}

// Slog logs observations through a structured logger, analyses at debug
// level and degradations at warning level.
type Slog struct {
	Log *slog.Logger
}

func (s Slog) ObserveAnalysis(op string, d time.Duration, results int) {
	s.Log.Debug("analysis complete", "op", op, "duration", d, "results", results)
}

func (s Slog) ObserveDegradation(op, kind string) {
	s.Log.Warn("analysis degraded", "op", op, "kind", kind)
}
