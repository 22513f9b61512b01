// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the ringio library.

package api

import "errors"

// Sentinel errors returned by ring operations. Compare with errors.Is.
var (
	// ErrFull is returned by Push and by bulk writes that could not
	// accept a single byte. A partial bulk write is never an error.
	ErrFull = errors.New("ring buffer is full")

	// ErrEmpty is returned by Pop. Bulk reads never return it; they
	// report exhaustion as a zero count.
	ErrEmpty = errors.New("ring buffer is empty")

	// ErrInvalidArgument reports a malformed request such as a nil
	// destination where one is required.
	ErrInvalidArgument = errors.New("invalid argument")
)
