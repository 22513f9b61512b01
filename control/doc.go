// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability companions for ring buffers: a debug probe registry
// and a Prometheus-instrumented buffer wrapper. The core in package
// ringbuf never logs or counts; everything here is opt-in layering.
package control
