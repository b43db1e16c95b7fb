package primecount

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBase is called once per run after the factor base is built.
	RecordBase(duration time.Duration)

	// RecordSlice is called after each sieved slice.
	RecordSlice(duration time.Duration)

	// RecordRun is called after each run.
	// duration is the total time taken, err is nil if successful.
	RecordRun(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBase(time.Duration)       {}
func (NoopMetricsCollector) RecordSlice(time.Duration)      {}
func (NoopMetricsCollector) RecordRun(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BaseCount       atomic.Int64
	BaseTotalNanos  atomic.Int64
	SliceCount      atomic.Int64
	SliceTotalNanos atomic.Int64
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
}

// RecordBase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBase(duration time.Duration) {
	b.BaseCount.Add(1)
	b.BaseTotalNanos.Add(duration.Nanoseconds())
}

// RecordSlice implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSlice(duration time.Duration) {
	b.SliceCount.Add(1)
	b.SliceTotalNanos.Add(duration.Nanoseconds())
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BaseCount:     b.BaseCount.Load(),
		BaseAvgNanos:  avgNanos(b.BaseTotalNanos.Load(), b.BaseCount.Load()),
		SliceCount:    b.SliceCount.Load(),
		SliceAvgNanos: avgNanos(b.SliceTotalNanos.Load(), b.SliceCount.Load()),
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunAvgNanos:   avgNanos(b.RunTotalNanos.Load(), b.RunCount.Load()),
		RunTotalNanos: b.RunTotalNanos.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BaseCount     int64
	BaseAvgNanos  int64
	SliceCount    int64
	SliceAvgNanos int64
	RunCount      int64
	RunErrors     int64
	RunAvgNanos   int64
	RunTotalNanos int64
}
