package sievego

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/resultstore"
	"github.com/hupe1980/sievego/sieve"
)

func TestCounterCount(t *testing.T) {
	tests := []struct {
		name     string
		n        uint64
		expected uint64
	}{
		{"Zero", 0, 0},
		{"Ten", 10, 4},
		{"Thousand", 1000, 168},
		{"Million", 1_000_000, 78498},
	}

	counter, err := New()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := counter.Count(context.Background(), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Count)
			assert.Equal(t, tt.n, res.N)
		})
	}
}

func TestCounterCountParallel(t *testing.T) {
	counter, err := New(
		WithWorkers(4),
		WithSegmentWidth(1<<14),
	)
	require.NoError(t, err)

	res, err := counter.Count(context.Background(), 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(78498), res.Count)
	assert.Equal(t, 4, res.Workers)
}

func TestCounterPrimes(t *testing.T) {
	counter, err := New(WithSegmentWidth(1 << 12))
	require.NoError(t, err)

	set, err := counter.Primes(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, uint64(25), set.Cardinality())
	assert.True(t, set.Contains(2))
	assert.True(t, set.Contains(97))
	assert.False(t, set.Contains(91)) // 7*13
}

func TestNewValidation(t *testing.T) {
	_, err := New(WithSegmentWidth(0))
	assert.ErrorIs(t, err, ErrInvalidSegmentWidth)

	_, err = New(WithWorkers(0))
	assert.ErrorIs(t, err, ErrInvalidWorkers)

	_, err = New(WithWorkers(-3))
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestCountLimitTooLarge(t *testing.T) {
	counter, err := New()
	require.NoError(t, err)

	_, err = counter.Count(context.Background(), uint64(sieve.MaxLimit)+1)

	var tl *ErrLimitTooLarge
	require.ErrorAs(t, err, &tl)
	assert.Equal(t, uint64(sieve.MaxLimit)+1, tl.Limit)

	// the sieve-level error stays reachable through Unwrap
	var cause *sieve.ErrLimitTooLarge
	assert.ErrorAs(t, err, &cause)
}

func TestCounterMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	counter, err := New(
		WithSegmentWidth(1<<14),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	_, err = counter.Count(context.Background(), 100_000)
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.CountRuns)
	assert.Equal(t, int64(0), stats.CountErrors)
	assert.Equal(t, int64(1), stats.BaseSieveCount)
	assert.Equal(t, int64(65), stats.BasePrimes) // pi(316)
	assert.Equal(t, int64(7), stats.SegmentCount)
}

func TestCountCached(t *testing.T) {
	ctx := context.Background()
	ledger := resultstore.NewBlobStore(blobstore.NewMemoryStore(), nil)

	counter, err := New(WithWorkers(2))
	require.NoError(t, err)

	rec, hit, err := counter.CountCached(ctx, ledger, 1000)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, uint64(168), rec.Count)

	again, hit, err := counter.CountCached(ctx, ledger, 1000)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, rec, again)
}

func TestBuilder(t *testing.T) {
	counter, err := NewBuilder().
		SegmentWidth(1 << 16).
		Workers(2).
		Build()
	require.NoError(t, err)

	res, err := counter.Count(context.Background(), 10_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1229), res.Count)
}

func TestBuilderImmutable(t *testing.T) {
	base := NewBuilder().SegmentWidth(1 << 16)

	a := base.Workers(2)
	b := base.Workers(0)

	_, err := a.Build()
	assert.NoError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrInvalidWorkers)

	// base is unchanged
	_, err = base.Build()
	assert.NoError(t, err)
}

func TestBuilderMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder().Workers(0).MustBuild()
	})
}
