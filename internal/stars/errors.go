package stars

import (
	"errors"
	"fmt"
)

// Domain errors for state construction and validation.
var (
	// ErrMass indicates a star with zero, negative, or non-finite mass.
	// Force-to-acceleration conversion divides by mass, so such a star
	// must never enter a state.
	ErrMass = errors.New("stars: mass must be strictly positive and finite")

	// ErrNotFinite indicates a NaN or Inf in a position or velocity.
	ErrNotFinite = errors.New("stars: non-finite position or velocity")

	// ErrEmptyState indicates a state with no stars.
	ErrEmptyState = errors.New("stars: state contains no stars")

	// ErrSizeMismatch indicates two buffers that must pair 1:1 by index
	// but differ in length.
	ErrSizeMismatch = errors.New("stars: state buffers differ in length")
)

// StarError wraps a validation error with the index of the offending star.
type StarError struct {
	Index   int
	ID      uint64
	Wrapped error
}

func (e *StarError) Error() string {
	return fmt.Sprintf("star %d (id %d): %v", e.Index, e.ID, e.Wrapped)
}

func (e *StarError) Unwrap() error {
	return e.Wrapped
}
