// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffers over caller-owned storage.
// RingBuffer[T] gives single-element FIFO semantics for any element type;
// Buffer specializes the same bookkeeping for bytes and adds wrap-aware
// bulk transfers plus io.Reader/io.Writer streaming adapters.
// The backing storage is borrowed, never allocated, grown, or freed.
// See ringbuf.go, buffer.go, dump.go for implementation details.
package ringbuf
