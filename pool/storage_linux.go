//go:build linux

// File: pool/storage_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux page-backed storage via anonymous mmap.

package pool

import "golang.org/x/sys/unix"

func allocPages(n int) (*Storage, error) {
	page := unix.Getpagesize()
	size := (n + page - 1) / page * page
	region, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	return &Storage{buf: region[:n], region: region}, nil
}

func releasePages(region []byte) error {
	return unix.Munmap(region)
}
