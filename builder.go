// Package sievego provides an embedded prime-counting engine.
//
// This file implements the fluent builder API for creating and configuring
// Counter instances. The builder is immutable - each method returns a new
// builder with the updated configuration.
package sievego

import (
	"runtime"

	"github.com/hupe1980/sievego/sieve"
)

// NewBuilder creates a new Counter builder.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	counter, err := sievego.NewBuilder().
//	    SegmentWidth(1 << 20).
//	    Workers(8).
//	    Build()
func NewBuilder() Builder {
	return Builder{
		segmentWidth: sieve.DefaultWidth,
		workers:      1,
	}
}

// Builder is an immutable fluent builder for creating Counter instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	segmentWidth uint64
	workers      int
	logger       *Logger
	metrics      MetricsCollector
}

// SegmentWidth sets the nominal segment width in numbers per window.
// Default: 1<<20 (64KiB buffer per worker).
func (b Builder) SegmentWidth(width uint64) Builder {
	b.segmentWidth = width
	return b
}

// Workers sets the number of concurrent segment workers.
// Default: 1 (sequential).
func (b Builder) Workers(workers int) Builder {
	b.workers = workers
	return b
}

// Parallel sets the worker count to the number of available CPUs.
func (b Builder) Parallel() Builder {
	b.workers = runtime.NumCPU()
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build creates the Counter.
func (b Builder) Build() (*Counter, error) {
	var optFns []Option
	optFns = append(optFns, WithSegmentWidth(b.segmentWidth), WithWorkers(b.workers))
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}
	return New(optFns...)
}

// MustBuild creates the Counter, panicking on error.
func (b Builder) MustBuild() *Counter {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
