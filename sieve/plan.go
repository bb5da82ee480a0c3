package sieve

import "iter"

// DefaultWidth is the default nominal segment width in numbers per window.
// At this width a segment buffer occupies 64KiB regardless of n.
const DefaultWidth = 1 << 20

// MaxLimit is the largest supported n. Beyond it, p² checks and window
// strides could overflow uint64.
const MaxLimit = 1 << 62

// Segment is one unit of sieving work: the closed range [Low, High] with Low
// normalized to an odd number. Segments never overlap; together they cover
// every odd integer in [3, n] exactly once.
type Segment struct {
	Low  uint64
	High uint64
}

// OddCount returns the number of odd integers in the segment.
func (s Segment) OddCount() uint64 {
	return (s.High-s.Low)/2 + 1
}

// Segments yields the ordered windows covering [3, n] with the given nominal
// width. Nominal window i spans [3+i*width, min(3+(i+1)*width-1, n)]; the low
// bound is advanced to the next odd number. A window emptied by that
// adjustment (a single even number) is skipped.
func Segments(n, width uint64) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if n < 3 || width == 0 {
			return
		}
		for low := uint64(3); low <= n; low += width {
			high := min(low+width-1, n)
			segLow := low
			if segLow%2 == 0 {
				segLow++
			}
			if segLow > high {
				continue
			}
			if !yield(Segment{Low: segLow, High: high}) {
				return
			}
		}
	}
}
