//go:build !linux

// File: pool/storage_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed fallback for platforms without the mmap path.

package pool

func allocPages(n int) (*Storage, error) {
	return &Storage{buf: make([]byte, n)}, nil
}

func releasePages(region []byte) error {
	return nil
}
