package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// RecordSegment is called from the sieving hot path, possibly from multiple
// workers at once; implementations must be cheap and safe for concurrent use.
type MetricsCollector interface {
	// RecordBaseSieve is called once per run after the base sieve.
	// primes is the number of base primes produced.
	RecordBaseSieve(duration time.Duration, primes int)

	// RecordSegment is called after every sieved segment.
	RecordSegment(duration time.Duration)

	// RecordCount is called after each counting run.
	// err is nil if the run completed.
	RecordCount(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBaseSieve(time.Duration, int) {}
func (NoopMetricsCollector) RecordSegment(time.Duration)        {}
func (NoopMetricsCollector) RecordCount(time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BaseSieveCount      atomic.Int64
	BaseSieveTotalNanos atomic.Int64
	BasePrimes          atomic.Int64
	SegmentCount        atomic.Int64
	SegmentTotalNanos   atomic.Int64
	CountRuns           atomic.Int64
	CountErrors         atomic.Int64
	CountTotalNanos     atomic.Int64
}

// RecordBaseSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBaseSieve(duration time.Duration, primes int) {
	b.BaseSieveCount.Add(1)
	b.BaseSieveTotalNanos.Add(duration.Nanoseconds())
	b.BasePrimes.Add(int64(primes))
}

// RecordSegment implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegment(duration time.Duration) {
	b.SegmentCount.Add(1)
	b.SegmentTotalNanos.Add(duration.Nanoseconds())
}

// RecordCount implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCount(duration time.Duration, err error) {
	b.CountRuns.Add(1)
	b.CountTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CountErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BaseSieveCount:  b.BaseSieveCount.Load(),
		BasePrimes:      b.BasePrimes.Load(),
		SegmentCount:    b.SegmentCount.Load(),
		SegmentAvgNanos: avg(b.SegmentTotalNanos.Load(), b.SegmentCount.Load()),
		CountRuns:       b.CountRuns.Load(),
		CountErrors:     b.CountErrors.Load(),
		CountAvgNanos:   avg(b.CountTotalNanos.Load(), b.CountRuns.Load()),
	}
}

func avg(totalNanos, count int64) int64 {
	if count == 0 {
		return 0
	}
	return totalNanos / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BaseSieveCount  int64
	BasePrimes      int64
	SegmentCount    int64
	SegmentAvgNanos int64
	CountRuns       int64
	CountErrors     int64
	CountAvgNanos   int64
}
