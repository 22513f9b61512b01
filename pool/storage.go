// File: pool/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/ringio/api"

// Storage is a caller-owned byte region suitable as ring backing.
// On Linux it is an anonymous mapping; elsewhere a plain heap slice.
type Storage struct {
	buf    []byte // requested-length view handed to the ring
	region []byte // full mapped region, nil for heap storage
}

// Bytes returns the storage view to bind a ring buffer to.
func (s *Storage) Bytes() []byte { return s.buf }

// Release returns the region to the OS. The owning ring must not be
// used afterwards. Heap-backed storage is left to the GC.
func (s *Storage) Release() error {
	if s.region == nil {
		s.buf = nil
		return nil
	}
	region := s.region
	s.buf, s.region = nil, nil
	return releasePages(region)
}

// Alloc acquires n bytes of backing storage. n == 0 is legal and
// yields an empty view; n < 0 is rejected.
func Alloc(n int) (*Storage, error) {
	if n < 0 {
		return nil, api.ErrInvalidArgument
	}
	if n == 0 {
		return &Storage{buf: []byte{}}, nil
	}
	return allocPages(n)
}
