// Package resultstore persists completed prime-count results.
//
// The sieve is deterministic, so a stored count for a given n never goes
// stale; a ledger hit can replace an arbitrarily long recomputation. Two
// backends are provided: any blobstore.Store, and a DynamoDB table for runs
// that publish results from multiple machines.
package resultstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no result is stored for the requested n.
var ErrNotFound = errors.New("result not found")

// Record is one persisted counting result with its provenance.
type Record struct {
	// N is the upper bound of the counted interval [2, N].
	N uint64 `json:"n"`

	// Count is pi(N).
	Count uint64 `json:"count"`

	// SegmentWidth and Workers describe the run that produced the count.
	// They never affect the count itself.
	SegmentWidth uint64 `json:"segment_width"`
	Workers      int    `json:"workers"`

	// ElapsedSec is the wall-clock duration of the run in seconds.
	ElapsedSec float64 `json:"elapsed_sec"`

	// CreatedAt is when the result was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// Store is a ledger of counting results keyed by n.
type Store interface {
	// Put records a result. Recording the same n with the same count is
	// idempotent; a different count for an existing n returns
	// *ErrCountMismatch.
	Put(ctx context.Context, rec Record) error

	// Get returns the stored result for n, or ErrNotFound.
	Get(ctx context.Context, n uint64) (Record, error)
}

// ErrCountMismatch indicates that a result was recorded for an n that already
// has a record with a different count. Since counts are deterministic, this
// always signals a defect (or corrupted storage), never a benign race.
type ErrCountMismatch struct {
	N        uint64
	Existing uint64
	New      uint64
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("count mismatch for n=%d: stored %d, new %d", e.N, e.Existing, e.New)
}
