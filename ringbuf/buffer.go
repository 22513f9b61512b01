// File: ringbuf/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte specialization of the ring buffer: wrap-aware bulk transfers
// and streaming adapters. Only this type exposes byte-run operations;
// RingBuffer[T] for other element types has no streaming surface.

package ringbuf

import (
	"io"
	"sync"

	"github.com/momentics/ringio/api"
)

// Ensure compile-time interface compliance.
var (
	_ io.ReadWriter = (*Buffer)(nil)
	_ io.ByteReader = (*Buffer)(nil)
	_ io.ByteWriter = (*Buffer)(nil)
)

// Buffer is a byte ring buffer over caller-owned storage.
type Buffer struct {
	RingBuffer[byte]
}

// NewBuffer binds a byte buffer to storage without a concurrency guard.
func NewBuffer(storage []byte) *Buffer {
	return &Buffer{RingBuffer[byte]{data: storage, lk: nopLocker{}}}
}

// NewSharedBuffer binds a byte buffer to storage with a mutex guard.
func NewSharedBuffer(storage []byte) *Buffer {
	return &Buffer{RingBuffer[byte]{data: storage, lk: &sync.Mutex{}}}
}

// WriteBulk copies as much of p as currently fits and returns the count.
// It never blocks: a short count means the caller must come back for the
// remainder. api.ErrFull is returned only when not a single byte fits;
// a zero-length p succeeds with 0 even then.
func (b *Buffer) WriteBulk(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.lk.Lock()
	defer b.lk.Unlock()

	n := len(b.data)
	free := n - b.used
	if free == 0 {
		return 0, api.ErrFull
	}
	writable := len(p)
	if writable > free {
		writable = free
	}

	if b.head > b.tail {
		// Free region wraps: [head, n) then [0, tail).
		beforeWrap := n - b.head
		if beforeWrap >= writable {
			copy(b.data[b.head:], p[:writable])
			b.head += writable
		} else {
			copy(b.data[b.head:], p[:beforeWrap])
			copy(b.data, p[beforeWrap:writable])
			b.head = writable - beforeWrap
		}
	} else {
		// Free region is contiguous. An empty buffer is re-anchored
		// at the origin before the copy.
		if b.head == b.tail {
			b.head, b.tail = 0, 0
		}
		copy(b.data[b.head:], p[:writable])
		b.head += writable
	}
	b.used += writable
	return writable, nil
}

// ReadBulk moves up to len(p) live bytes into p and returns the count.
// It never fails: an empty buffer or zero-length destination yields 0.
func (b *Buffer) ReadBulk(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	b.lk.Lock()
	defer b.lk.Unlock()

	if b.used == 0 {
		return 0
	}
	n := len(b.data)
	readable := b.used
	if readable > len(p) {
		readable = len(p)
	}

	if b.head > b.tail {
		// Live region is contiguous: [tail, head).
		copy(p[:readable], b.data[b.tail:])
		b.tail += readable
	} else {
		// Live region wraps (or the buffer is full): [tail, n) then [0, head).
		beforeWrap := n - b.tail
		if beforeWrap >= readable {
			copy(p[:readable], b.data[b.tail:])
			b.tail += readable
		} else {
			copy(p[:beforeWrap], b.data[b.tail:])
			copy(p[beforeWrap:readable], b.data)
			b.tail = readable - beforeWrap
		}
	}
	b.used -= readable
	return readable
}

// Write implements io.Writer over WriteBulk. Per that contract a short
// count must carry an error, so a partial transfer reports
// io.ErrShortWrite and a rejected one api.ErrFull.
func (b *Buffer) Write(p []byte) (int, error) {
	n, err := b.WriteBulk(p)
	if err != nil {
		return n, err
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Read implements io.Reader over ReadBulk. A drained buffer returns
// (0, nil): exhausted for now, not end of stream. Callers polling a
// shared buffer retry; io.EOF is never produced.
func (b *Buffer) Read(p []byte) (int, error) {
	return b.ReadBulk(p), nil
}

// WriteByte implements io.ByteWriter; api.ErrFull when no slot is free.
func (b *Buffer) WriteByte(c byte) error {
	return b.Push(c)
}

// ReadByte implements io.ByteReader; api.ErrEmpty when nothing is held.
func (b *Buffer) ReadByte() (byte, error) {
	return b.Pop()
}
