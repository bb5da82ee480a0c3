package sievego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sievego/sieve"
)

var (
	// ErrInvalidSegmentWidth is returned when the configured segment
	// width is not positive.
	ErrInvalidSegmentWidth = errors.New("segment width must be positive")

	// ErrInvalidWorkers is returned when the configured worker count is
	// not positive.
	ErrInvalidWorkers = errors.New("worker count must be positive")
)

// ErrLimitTooLarge indicates that n exceeds the largest supported limit.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLimitTooLarge struct {
	Limit uint64
	cause error
}

func (e *ErrLimitTooLarge) Error() string {
	return fmt.Sprintf("limit too large: %d", e.Limit)
}

func (e *ErrLimitTooLarge) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sieve.ErrInvalidWidth) {
		return fmt.Errorf("%w: %w", ErrInvalidSegmentWidth, err)
	}
	if errors.Is(err, sieve.ErrInvalidWorkers) {
		return fmt.Errorf("%w: %w", ErrInvalidWorkers, err)
	}
	var tl *sieve.ErrLimitTooLarge
	if errors.As(err, &tl) {
		return &ErrLimitTooLarge{Limit: tl.Limit, cause: err}
	}

	return err
}
