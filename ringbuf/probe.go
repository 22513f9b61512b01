// File: ringbuf/probe.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe integration for control.DebugProbes.

package ringbuf

// StateProbe returns a snapshot function suitable for registration
// with a probe registry. Each invocation reads the indices under the
// buffer's own guard.
func (r *RingBuffer[T]) StateProbe() func() any {
	return func() any {
		r.lk.Lock()
		defer r.lk.Unlock()
		return map[string]any{
			"head": r.head,
			"tail": r.tail,
			"used": r.used,
			"cap":  len(r.data),
		}
	}
}
