package sievego

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/sievego/primeset"
	"github.com/hupe1980/sievego/resultstore"
	"github.com/hupe1980/sievego/sieve"
)

// Result describes one completed counting run.
type Result = sieve.Result

// Counter counts primes with a segmented Sieve of Eratosthenes.
// A Counter is immutable and safe for concurrent use; every call is an
// independent computation.
type Counter struct {
	segmentWidth uint64
	workers      int
	logger       *Logger
	metrics      MetricsCollector
}

// New creates a Counter.
func New(optFns ...Option) (*Counter, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.segmentWidth == 0 {
		return nil, ErrInvalidSegmentWidth
	}
	if opts.workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	logger := opts.logger
	if logger == nil {
		logger = NoopLogger()
	}
	metrics := opts.metricsCollector
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	return &Counter{
		segmentWidth: opts.segmentWidth,
		workers:      opts.workers,
		logger:       logger,
		metrics:      metrics,
	}, nil
}

// Count computes pi(n), the number of primes in [2, n]. The count is
// deterministic and identical for every worker count.
func (c *Counter) Count(ctx context.Context, n uint64) (Result, error) {
	s, err := c.newSieve(n)
	if err != nil {
		return Result{}, translateError(err)
	}

	res, err := s.Count(ctx)
	c.metrics.RecordCount(res.Elapsed, err)
	if err == nil {
		c.metrics.RecordBaseSieve(res.BaseElapsed, res.BasePrimes)
	}
	c.logger.LogCount(ctx, res, err)

	return res, translateError(err)
}

// Primes computes the full set of primes in [2, n].
func (c *Counter) Primes(ctx context.Context, n uint64) (*primeset.Set, error) {
	s, err := c.newSieve(n)
	if err != nil {
		return nil, translateError(err)
	}

	start := time.Now()
	set, err := s.Primes(ctx)
	c.metrics.RecordCount(time.Since(start), err)

	return set, translateError(err)
}

// CountCached computes pi(n) through a result ledger. A ledger hit returns
// the stored record without sieving; a miss computes the count and records
// it. The boolean reports whether the ledger was hit.
func (c *Counter) CountCached(ctx context.Context, ledger resultstore.Store, n uint64) (resultstore.Record, bool, error) {
	rec, err := ledger.Get(ctx, n)
	switch {
	case err == nil:
		c.logger.DebugContext(ctx, "result ledger hit", "n", n, "count", rec.Count)
		return rec, true, nil
	case !errors.Is(err, resultstore.ErrNotFound):
		return resultstore.Record{}, false, err
	}

	res, err := c.Count(ctx, n)
	if err != nil {
		return resultstore.Record{}, false, err
	}

	rec = resultstore.Record{
		N:            res.N,
		Count:        res.Count,
		SegmentWidth: c.segmentWidth,
		Workers:      res.Workers,
		ElapsedSec:   res.Elapsed.Seconds(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := ledger.Put(ctx, rec); err != nil {
		return resultstore.Record{}, false, err
	}

	return rec, false, nil
}

func (c *Counter) newSieve(n uint64) (*sieve.Sieve, error) {
	return sieve.New(n, func(o *sieve.Options) {
		o.Width = c.segmentWidth
		o.Workers = c.workers
		o.Logger = c.logger.Logger
		o.OnSegment = func(_ sieve.Segment, _ uint64, elapsed time.Duration) {
			c.metrics.RecordSegment(elapsed)
		}
	})
}
