// File: control/debug_test.go
// Author: momentics <momentics@gmail.com>

package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/ringio/control"
	"github.com/momentics/ringio/ringbuf"
)

func TestDebugProbesBufferState(t *testing.T) {
	dp := control.NewDebugProbes()
	b := ringbuf.NewSharedBuffer(make([]byte, 16))
	dp.RegisterProbe("relay_buffer", b.StateProbe())

	_, err := b.WriteBulk([]byte("abcde"))
	require.NoError(t, err)

	out := dp.DumpState()
	state, ok := out["relay_buffer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 5, state["used"])
	assert.Equal(t, 16, state["cap"])

	dp.UnregisterProbe("relay_buffer")
	assert.Empty(t, dp.DumpState())
}
