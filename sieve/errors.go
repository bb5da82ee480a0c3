package sieve

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth is returned when the segment width is not positive.
	ErrInvalidWidth = errors.New("segment width must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("worker count must be positive")
)

// ErrLimitTooLarge indicates that n exceeds MaxLimit, the largest value for
// which all intermediate products (p², strides, window bounds) fit in uint64.
type ErrLimitTooLarge struct {
	Limit uint64
}

func (e *ErrLimitTooLarge) Error() string {
	return fmt.Sprintf("limit %d exceeds maximum supported limit %d", e.Limit, uint64(MaxLimit))
}
