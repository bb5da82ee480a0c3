// Package intmath provides exact integer arithmetic helpers for the sieve.
package intmath

import "math"

// Sqrt returns the integer square root of n, i.e. the largest r such that
// r*r <= n.
//
// The float64 seed from math.Sqrt can be off by one for large n, so the
// result is corrected until r*r <= n < (r+1)*(r+1) holds exactly. All
// comparisons are done via division to stay overflow-free for any uint64.
func Sqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	r := uint64(math.Sqrt(float64(n)))

	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// CeilDiv returns ceil(a/b) for b > 0.
func CeilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}
