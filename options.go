package primecount

import (
	"io"
	"log/slog"
)

const (
	// defaultWorkers matches a typical small multicore machine without
	// oversubscribing it.
	defaultWorkers = 4

	// maxWorkers caps the pool size.
	maxWorkers = 100
)

type options struct {
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
	progressWriter   io.Writer
	baseStatsFunc    func(BaseStats)
	memoryLimit      int64
}

// Option configures a Count run.
type Option func(*options)

// WithWorkers sets the worker-pool size. Zero disables threading entirely and
// sieves every slice on the calling goroutine; the valid range is 0 to 100
// and the default is 4.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to keep logging disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metricsCollector = mc
		}
	}
}

// WithProgressWriter sets the stream for the coarse progress indicator that
// sliced runs emit once they span more than 1000 slices. The indicator
// rewrites a single line with carriage returns, so the writer should be a
// terminal-like stream. If nil (the default), progress stays disabled.
func WithProgressWriter(w io.Writer) Option {
	return func(o *options) {
		o.progressWriter = w
	}
}

// WithBaseStatsFunc registers a callback invoked once per sliced run, after
// the factor base is built and before the first slice is submitted. Console
// frontends use it to print the intermediate base totals while the long part
// of the run is still ahead.
func WithBaseStatsFunc(fn func(BaseStats)) Option {
	return func(o *options) {
		o.baseStatsFunc = fn
	}
}

// WithMemoryLimit caps the managed sieve memory in bytes. Slice submission
// blocks while the cap is exhausted; a cap too small to hold the factor base
// plus one slice window fails the run up front. If 0 (the default), memory is
// tracked but not limited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          defaultWorkers,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
