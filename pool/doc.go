// Package pool
// Author: momentics <momentics@gmail.com>
//
// Backing-storage helpers for ring buffers. The buffers themselves
// never allocate; callers that want page-aligned or mmap-backed
// storage acquire it here and stay responsible for releasing it
// after the ring is done. Platform specifics live in storage_linux.go
// and storage_stub.go.
package pool
