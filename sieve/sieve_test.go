package sieve

import (
	"context"
	"testing"
	"time"

	"github.com/cznic/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPrimes(t *testing.T, n uint64, optFns ...func(o *Options)) uint64 {
	t.Helper()

	s, err := New(n, optFns...)
	require.NoError(t, err)

	res, err := s.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, n, res.N)

	return res.Count
}

// TestCountKnownValues checks pi(n) against the known values of the
// prime-counting function.
func TestCountKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		n        uint64
		expected uint64
	}{
		{"Zero", 0, 0},
		{"One", 1, 0},
		{"Two", 2, 1},
		{"Three", 3, 2},
		{"Ten", 10, 4},
		{"Hundred", 100, 25},
		{"Thousand", 1000, 168},
		{"ThousandthPrime", 7919, 1000},
		{"Million", 1_000_000, 78498},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countPrimes(t, tt.n))
		})
	}
}

func TestCountTenMillion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10^7 count in short mode")
	}
	assert.Equal(t, uint64(664579), countPrimes(t, 10_000_000, func(o *Options) {
		o.Workers = 4
	}))
}

// TestCountWorkerEquivalence verifies that the count is invariant to the
// worker count, for an n spanning several segment boundaries.
func TestCountWorkerEquivalence(t *testing.T) {
	const width = 1 << 12
	const n = 3*width + 7

	sequential := countPrimes(t, n, func(o *Options) {
		o.Width = width
	})

	for _, workers := range []int{1, 2, 4, 8, 16} {
		got := countPrimes(t, n, func(o *Options) {
			o.Width = width
			o.Workers = workers
		})
		assert.Equal(t, sequential, got, "workers=%d", workers)
	}
}

func TestCountIdempotent(t *testing.T) {
	s, err := New(100_000, func(o *Options) { o.Workers = 4 })
	require.NoError(t, err)

	first, err := s.Count(context.Background())
	require.NoError(t, err)
	second, err := s.Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Count, second.Count)
	assert.Equal(t, first.Segments, second.Segments)
}

// TestCountWidthEquivalence verifies that the segment width never changes
// the count, including degenerate widths.
func TestCountWidthEquivalence(t *testing.T) {
	const n = 10_000
	expected := countPrimes(t, n)

	for _, width := range []uint64{1, 2, 7, 64, 1 << 10, n * 2} {
		got := countPrimes(t, n, func(o *Options) {
			o.Width = width
		})
		assert.Equal(t, expected, got, "width=%d", width)
	}
}

func TestCountSegmentsReported(t *testing.T) {
	s, err := New(1_000_000, func(o *Options) { o.Width = 1 << 16 })
	require.NoError(t, err)

	res, err := s.Count(context.Background())
	require.NoError(t, err)

	// ceil((10^6 - 2) / 2^16) windows, none of them empty.
	assert.Equal(t, uint64(16), res.Segments)
	assert.Equal(t, 168, res.BasePrimes) // pi(1000)
}

func TestCountCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		s, err := New(1_000_000, func(o *Options) { o.Workers = workers })
		require.NoError(t, err)

		_, err = s.Count(ctx)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		n        uint64
		optFn    func(o *Options)
		expected error
	}{
		{"ZeroWidth", 100, func(o *Options) { o.Width = 0 }, ErrInvalidWidth},
		{"ZeroWorkers", 100, func(o *Options) { o.Workers = 0 }, ErrInvalidWorkers},
		{"NegativeWorkers", 100, func(o *Options) { o.Workers = -1 }, ErrInvalidWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, tt.optFn)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("LimitTooLarge", func(t *testing.T) {
		_, err := New(uint64(MaxLimit) + 1)
		var tl *ErrLimitTooLarge
		require.ErrorAs(t, err, &tl)
		assert.Equal(t, uint64(MaxLimit)+1, tl.Limit)
	})
}

// TestPrimesOracle cross-checks the full prime set against an independent
// primality test.
func TestPrimesOracle(t *testing.T) {
	const n = 100_000

	s, err := New(n, func(o *Options) { o.Width = 1 << 14 })
	require.NoError(t, err)

	set, err := s.Primes(context.Background())
	require.NoError(t, err)

	var oracle uint64
	for x := uint64(0); x <= n; x++ {
		prime := mathutil.IsPrimeUint64(x)
		if prime {
			oracle++
		}
		assert.Equal(t, prime, set.Contains(x), "x=%d", x)
	}
	assert.Equal(t, oracle, set.Cardinality())
}

func TestPrimesMatchesCount(t *testing.T) {
	const n = 250_000

	for _, workers := range []int{1, 4} {
		s, err := New(n, func(o *Options) {
			o.Width = 1 << 14
			o.Workers = workers
		})
		require.NoError(t, err)

		res, err := s.Count(context.Background())
		require.NoError(t, err)

		set, err := s.Primes(context.Background())
		require.NoError(t, err)

		assert.Equal(t, res.Count, set.Cardinality(), "workers=%d", workers)
		assert.True(t, set.Contains(2))
		assert.Equal(t, uint64(249_989), set.Max()) // largest prime <= 250000
	}
}

func TestOnSegmentHook(t *testing.T) {
	var segments uint64

	s, err := New(100_000, func(o *Options) {
		o.Width = 1 << 14
		o.OnSegment = func(Segment, uint64, time.Duration) {
			segments++
		}
	})
	require.NoError(t, err)

	res, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.Segments, segments)
}
