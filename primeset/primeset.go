// Package primeset provides a compressed set of prime numbers.
//
// The set wraps a 64-bit Roaring Bitmap. Primes cluster densely in runs of
// odd numbers, which roaring's run-length containers compress well, so a full
// set of primes up to 10^8 fits comfortably in memory.
package primeset

import (
	"io"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is a mutable set of primes. It is not safe for concurrent mutation;
// build per-worker sets and merge them with Union.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates an empty Set.
func New() *Set {
	return &Set{rb: roaring64.New()}
}

// Add inserts p into the set.
func (s *Set) Add(p uint64) {
	s.rb.Add(p)
}

// AddMany inserts all values of ps into the set.
func (s *Set) AddMany(ps []uint64) {
	s.rb.AddMany(ps)
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p uint64) bool {
	return s.rb.Contains(p)
}

// Cardinality returns the number of primes in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Max returns the largest prime in the set. The set must be non-empty.
func (s *Set) Max() uint64 {
	return s.rb.Maximum()
}

// Union merges other into s.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Values returns an iterator over the primes in ascending order.
func (s *Set) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Slice returns the primes in ascending order as a slice.
func (s *Set) Slice() []uint64 {
	return s.rb.ToArray()
}

// Optimize converts dense containers to run-length encoding. Call once after
// construction, before serialization.
func (s *Set) Optimize() {
	s.rb.RunOptimize()
}

// WriteTo serializes the set in the portable roaring64 format.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	return s.rb.WriteTo(w)
}

// ReadFrom deserializes a set previously written with WriteTo, replacing the
// receiver's contents.
func (s *Set) ReadFrom(r io.Reader) (int64, error) {
	return s.rb.ReadFrom(r)
}
