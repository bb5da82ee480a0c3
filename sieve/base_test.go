package sieve

import (
	"testing"

	"github.com/cznic/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePrimes(t *testing.T) {
	tests := []struct {
		name     string
		limit    uint64
		expected []uint64
	}{
		{"Zero", 0, nil},
		{"One", 1, nil},
		{"Two", 2, []uint64{2}},
		{"Ten", 10, []uint64{2, 3, 5, 7}},
		{"Thirty", 30, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
		{"PrimeLimit", 31, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BasePrimes(tt.limit))
		})
	}
}

func TestBasePrimesCount(t *testing.T) {
	// pi(1000) = 168, pi(10^4) = 1229
	assert.Len(t, BasePrimes(1000), 168)
	assert.Len(t, BasePrimes(10_000), 1229)
}

// TestBasePrimesOracle cross-checks every classification against an
// independent primality test.
func TestBasePrimesOracle(t *testing.T) {
	const limit = 10_000

	primes := BasePrimes(limit)

	inSieve := make(map[uint64]bool, len(primes))
	var prev uint64
	for _, p := range primes {
		require.Greater(t, p, prev, "output must be strictly ascending")
		prev = p
		inSieve[p] = true
	}

	for x := uint64(0); x <= limit; x++ {
		assert.Equal(t, mathutil.IsPrimeUint64(x), inSieve[x], "x=%d", x)
	}
}
