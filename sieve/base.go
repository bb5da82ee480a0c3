package sieve

import "math"

// BasePrimes returns all primes <= limit in ascending order using a classic
// unsegmented Sieve of Eratosthenes.
//
// The result is immutable reference data for segment sieving: correctness of
// the segmented phase depends only on this slice covering every prime up to
// floor(sqrt(n)).
func BasePrimes(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}

	composite := make([]bool, limit+1)

	for i := uint64(2); i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	// pi(x) ~ x/ln(x); 1.2x headroom avoids regrowth for all limits >= 2.
	capacity := int(1.2 * float64(limit) / math.Log(float64(limit+1)))
	primes := make([]uint64, 0, max(capacity, 4))
	for i := uint64(2); i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}

	return primes
}
