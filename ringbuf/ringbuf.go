// File: ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic fixed-capacity ring buffer bound to caller-owned storage.
// head and tail are next-slot indices and may rest at len(data) until
// the next operation clamps them to zero (lazy wrap, no modulo).

package ringbuf

import (
	"sync"

	"github.com/momentics/ringio/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a bounded FIFO over a caller-supplied slice.
// `used` is authoritative for full/empty; head==tail alone is ambiguous.
type RingBuffer[T any] struct {
	data []T
	head int // next slot to write
	tail int // next slot to read
	used int
	lk   sync.Locker
}

// nopLocker is the guard for single-threaded rings.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// New binds a ring buffer to storage without a concurrency guard.
// The caller keeps ownership of storage and must not alias it into
// another ring. A zero-length slice is legal: every push fails full,
// every pop fails empty.
func New[T any](storage []T) *RingBuffer[T] {
	return &RingBuffer[T]{data: storage, lk: nopLocker{}}
}

// NewShared binds a ring buffer to storage with a mutex guard.
// Every operation holds the lock for its full duration, so at most
// one operation executes at a time.
func NewShared[T any](storage []T) *RingBuffer[T] {
	return &RingBuffer[T]{data: storage, lk: &sync.Mutex{}}
}

// Push appends one element; returns api.ErrFull when used == cap.
func (r *RingBuffer[T]) Push(item T) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if r.used == len(r.data) {
		return api.ErrFull
	}
	if r.head == len(r.data) {
		r.head = 0
	}
	r.data[r.head] = item
	r.head++
	r.used++
	return nil
}

// Pop removes and returns the oldest element; api.ErrEmpty when none.
func (r *RingBuffer[T]) Pop() (T, error) {
	r.lk.Lock()
	defer r.lk.Unlock()
	var zero T
	if r.used == 0 {
		return zero, api.ErrEmpty
	}
	if r.tail == len(r.data) {
		r.tail = 0
	}
	item := r.data[r.tail]
	r.data[r.tail] = zero // drop the reference for GC
	r.tail++
	r.used--
	return item, nil
}

// Used returns the number of live elements.
func (r *RingBuffer[T]) Used() int {
	r.lk.Lock()
	defer r.lk.Unlock()
	return r.used
}

// Free returns the number of elements that can still be accepted.
func (r *RingBuffer[T]) Free() int {
	r.lk.Lock()
	defer r.lk.Unlock()
	return len(r.data) - r.used
}

// Cap returns the fixed storage capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}
