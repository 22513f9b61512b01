// Package api
// Author: momentics
//
// Live debug and introspection support.

package api

// Debug exposes runtime introspection probes.
type Debug interface {
	// DumpState emits a snapshot of registered probe output.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a named debug probe.
	RegisterProbe(name string, fn func() any)
}
