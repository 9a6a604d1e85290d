package array

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by every access or removal with an index
	// outside [0, Len()).
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrAllocation is wrapped when a buffer of the requested capacity
	// cannot be obtained.
	ErrAllocation = errors.New("array: allocation failed")
)

func rangeError(index, size int) error {
	return fmt.Errorf("array: index %d out of range [0,%d): %w", index, size, ErrOutOfRange)
}

func allocationError(capacity, limit int) error {
	return fmt.Errorf("array: capacity %d exceeds limit %d: %w", capacity, limit, ErrAllocation)
}
