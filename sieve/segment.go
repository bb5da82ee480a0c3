package sieve

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/sievego/internal/intmath"
)

// markSegment marks every odd composite in seg by setting its bit in buf.
// Bit i corresponds to the odd candidate seg.Low + 2*i. buf must be cleared
// by the caller and sized for seg.OddCount() bits.
//
// base must contain every prime up to floor(sqrt(high)) in ascending order.
// Base primes with p² > seg.High mark nothing here, and since base is
// ascending neither can any later prime, so the loop terminates early.
func markSegment(seg Segment, base []uint64, buf *bitset.BitSet) {
	for _, p := range base {
		if p == 2 {
			// Even numbers are not represented in the buffer.
			continue
		}

		p2 := p * p
		if p2 > seg.High {
			break
		}

		// First multiple of p in [Low, High] that is >= p². Smaller
		// multiples carry a smaller prime factor and were marked by it.
		start := max(p2, intmath.CeilDiv(seg.Low, p)*p)

		// p is odd, so start+p flips parity.
		if start%2 == 0 {
			start += p
		}

		for x := start; x <= seg.High; x += 2 * p {
			buf.Set(uint((x - seg.Low) / 2))
		}
	}
}

// sieveSegment sieves one segment and returns its survivor count.
func sieveSegment(seg Segment, base []uint64, buf *bitset.BitSet) uint64 {
	buf.ClearAll()
	markSegment(seg, base, buf)
	return seg.OddCount() - uint64(buf.Count())
}

// segmentSurvivors sieves one segment and calls visit for every surviving
// (prime) value in ascending order. It returns the survivor count.
func segmentSurvivors(seg Segment, base []uint64, buf *bitset.BitSet, visit func(uint64)) uint64 {
	buf.ClearAll()
	markSegment(seg, base, buf)

	var survivors uint64
	odd := seg.OddCount()
	for i := uint64(0); i < odd; i++ {
		if !buf.Test(uint(i)) {
			visit(seg.Low + 2*i)
			survivors++
		}
	}
	return survivors
}
