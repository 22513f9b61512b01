// Package api
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO contract over caller-owned storage.

package api

// Ring is a fixed-capacity FIFO container contract.
// Implementations borrow the backing storage for their entire lifetime;
// they never allocate, grow, or free it.
type Ring[T any] interface {
	// Push appends one element; returns ErrFull when no slot is free.
	Push(item T) error
	// Pop removes the oldest element; returns ErrEmpty when none is held.
	Pop() (T, error)
	// Used returns the number of live elements.
	Used() int
	// Free returns the number of elements that can still be accepted.
	Free() int
	// Cap returns the fixed storage capacity.
	Cap() int
}
