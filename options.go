package sievego

import (
	"log/slog"

	"github.com/hupe1980/sievego/sieve"
)

type options struct {
	segmentWidth     uint64
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		segmentWidth: sieve.DefaultWidth,
		workers:      1,
	}
}

// Option configures Counter behavior.
type Option func(*options)

// WithSegmentWidth configures the nominal segment width in numbers per
// window. Each worker's buffer holds width/2 bits, so the default (1<<20)
// costs 64KiB per worker regardless of n.
func WithSegmentWidth(width uint64) Option {
	return func(o *options) {
		o.segmentWidth = width
	}
}

// WithWorkers configures the number of concurrent segment workers.
// 1 (the default) runs the sieve sequentially.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sievego.BasicMetricsCollector{}
//	counter, _ := sievego.New(sievego.WithMetricsCollector(metrics))
//	// ... run counts ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}
