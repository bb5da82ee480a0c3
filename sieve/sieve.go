package sieve

import (
	"context"
	"log/slog"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/sievego/internal/intmath"
	"github.com/hupe1980/sievego/primeset"
)

// Options configures a Sieve.
type Options struct {
	// Width is the nominal segment width in numbers per window.
	Width uint64

	// Workers is the number of concurrent segment workers. 1 runs the
	// sieve sequentially.
	Workers int

	// Logger receives sampled per-segment diagnostics at Debug level.
	// Nil disables diagnostics.
	Logger *slog.Logger

	// OnSegment, if set, is called after every sieved segment. It must be
	// safe for concurrent use when Workers > 1.
	OnSegment func(seg Segment, survivors uint64, elapsed time.Duration)
}

// DefaultOptions holds the default Sieve options.
var DefaultOptions = Options{
	Width:   DefaultWidth,
	Workers: 1,
}

// Sieve counts primes in [2, n] using a segmented Sieve of Eratosthenes.
// A Sieve is immutable after construction and safe for concurrent use; every
// Count/Primes call is an independent computation.
type Sieve struct {
	n         uint64
	width     uint64
	workers   int
	logger    *slog.Logger
	onSegment func(Segment, uint64, time.Duration)
}

// New creates a Sieve for counting primes in [2, n].
func New(n uint64, optFns ...func(o *Options)) (*Sieve, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if n > MaxLimit {
		return nil, &ErrLimitTooLarge{Limit: n}
	}
	if opts.Width == 0 {
		return nil, ErrInvalidWidth
	}
	if opts.Workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Sieve{
		n:         n,
		width:     opts.Width,
		workers:   opts.Workers,
		logger:    logger,
		onSegment: opts.OnSegment,
	}, nil
}

// Result describes one completed counting run.
type Result struct {
	// N is the upper bound of the counted interval [2, N].
	N uint64

	// Count is pi(N), the number of primes in [2, N].
	Count uint64

	// Segments is the number of non-empty windows that were sieved.
	Segments uint64

	// Workers is the worker count the run was configured with.
	Workers int

	// BasePrimes is the number of base primes up to floor(sqrt(N)).
	BasePrimes int

	// BaseElapsed is the time spent in the unsegmented base sieve.
	BaseElapsed time.Duration

	// Elapsed is the total wall-clock time of the computation.
	Elapsed time.Duration
}

// Count computes pi(n). The count is deterministic and identical for every
// worker count.
func (s *Sieve) Count(ctx context.Context) (Result, error) {
	start := time.Now()

	res := Result{N: s.n, Workers: s.workers}
	if s.n < 2 {
		res.Elapsed = time.Since(start)
		return res, nil
	}

	base, baseElapsed := s.basePrimes()
	res.BasePrimes = len(base)
	res.BaseElapsed = baseElapsed

	var (
		odd  uint64
		segs uint64
		err  error
	)
	if s.workers > 1 {
		odd, segs, err = s.countParallel(ctx, base)
	} else {
		odd, segs, err = s.countSequential(ctx, base)
	}
	if err != nil {
		return Result{}, err
	}

	res.Count = 1 + odd // 1 accounts for the prime 2
	res.Segments = segs
	res.Elapsed = time.Since(start)

	s.logger.Debug("count complete",
		"n", res.N,
		"count", res.Count,
		"segments", res.Segments,
		"workers", res.Workers,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// Primes computes the full set of primes in [2, n]. The segmented sieve is
// identical to Count; survivors are collected instead of merely counted.
func (s *Sieve) Primes(ctx context.Context) (*primeset.Set, error) {
	set := primeset.New()
	if s.n < 2 {
		return set, nil
	}
	set.Add(2)

	base, _ := s.basePrimes()

	if s.workers > 1 {
		if err := s.collectParallel(ctx, base, set); err != nil {
			return nil, err
		}
		return set, nil
	}

	prog := newProgress()
	buf := s.newBuffer()
	for seg := range Segments(s.n, s.width) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		segStart := time.Now()
		survivors := segmentSurvivors(seg, base, buf, set.Add)
		s.observeSegment(prog, seg, survivors, time.Since(segStart))
	}

	return set, nil
}

func (s *Sieve) basePrimes() ([]uint64, time.Duration) {
	start := time.Now()
	limit := intmath.Sqrt(s.n)
	base := BasePrimes(limit)

	elapsed := time.Since(start)
	s.logger.Debug("base sieve complete",
		"limit", limit,
		"primes", len(base),
		"elapsed", elapsed,
	)

	return base, elapsed
}

func (s *Sieve) countSequential(ctx context.Context, base []uint64) (uint64, uint64, error) {
	prog := newProgress()
	buf := s.newBuffer()

	var total, segs uint64
	for seg := range Segments(s.n, s.width) {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		segStart := time.Now()
		survivors := sieveSegment(seg, base, buf)
		total += survivors
		segs++
		s.observeSegment(prog, seg, survivors, time.Since(segStart))
	}

	return total, segs, nil
}

// countParallel distributes segments dynamically over a fixed worker pool.
// Workers pull from an unbuffered channel, so faster workers naturally take
// more segments. Each worker owns one reusable buffer and a private partial
// sum; partials are folded only after Wait.
func (s *Sieve) countParallel(ctx context.Context, base []uint64) (uint64, uint64, error) {
	g, ctx := errgroup.WithContext(ctx)
	segCh := make(chan Segment)

	g.Go(func() error {
		defer close(segCh)
		for seg := range Segments(s.n, s.width) {
			select {
			case segCh <- seg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	prog := newProgress()
	partials := make([]uint64, s.workers)
	segCounts := make([]uint64, s.workers)

	for w := 0; w < s.workers; w++ {
		g.Go(func() error {
			buf := s.newBuffer()
			for seg := range segCh {
				segStart := time.Now()
				survivors := sieveSegment(seg, base, buf)
				partials[w] += survivors
				segCounts[w]++
				s.observeSegment(prog, seg, survivors, time.Since(segStart))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	var total, segs uint64
	for w := 0; w < s.workers; w++ {
		total += partials[w]
		segs += segCounts[w]
	}

	return total, segs, nil
}

// collectParallel is countParallel with per-worker prime sets merged into dst
// after all workers finish.
func (s *Sieve) collectParallel(ctx context.Context, base []uint64, dst *primeset.Set) error {
	g, ctx := errgroup.WithContext(ctx)
	segCh := make(chan Segment)

	g.Go(func() error {
		defer close(segCh)
		for seg := range Segments(s.n, s.width) {
			select {
			case segCh <- seg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	prog := newProgress()
	locals := make([]*primeset.Set, s.workers)

	for w := 0; w < s.workers; w++ {
		g.Go(func() error {
			local := primeset.New()
			locals[w] = local

			buf := s.newBuffer()
			for seg := range segCh {
				segStart := time.Now()
				survivors := segmentSurvivors(seg, base, buf, local.Add)
				s.observeSegment(prog, seg, survivors, time.Since(segStart))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, local := range locals {
		dst.Union(local)
	}

	return nil
}

// newBuffer allocates a segment buffer sized for the widest possible window.
func (s *Sieve) newBuffer() *bitset.BitSet {
	return bitset.New(uint((min(s.width, s.n) + 1) / 2))
}

// newProgress returns the sampler shared by all workers of one run. Sampling
// keeps verbose diagnostics cheap; it never orders or gates the computation.
func newProgress() *rate.Sometimes {
	return &rate.Sometimes{First: 5, Interval: time.Second}
}

func (s *Sieve) observeSegment(prog *rate.Sometimes, seg Segment, survivors uint64, elapsed time.Duration) {
	if s.onSegment != nil {
		s.onSegment(seg, survivors, elapsed)
	}
	prog.Do(func() {
		s.logger.Debug("segment complete",
			"low", seg.Low,
			"high", seg.High,
			"survivors", survivors,
			"elapsed", elapsed,
		)
	})
}
