// File: ringbuf/ringbuf_test.go
// Author: momentics <momentics@gmail.com>

package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/ringio/api"
)

func TestPushPopFIFOOrder(t *testing.T) {
	r := New(make([]int, 10))

	for i := 0; i < 10; i++ {
		require.NoError(t, r.Push(100+i))
	}
	require.ErrorIs(t, r.Push(999), api.ErrFull)

	for i := 0; i < 10; i++ {
		v, err := r.Pop()
		require.NoError(t, err)
		assert.Equal(t, 100+i, v)
	}
	_, err := r.Pop()
	require.ErrorIs(t, err, api.ErrEmpty)
}

func TestCapacityConservation(t *testing.T) {
	r := NewShared(make([]string, 7))

	check := func() {
		assert.Equal(t, r.Cap(), r.Used()+r.Free())
	}
	check()
	for i := 0; i < 30; i++ {
		if i%3 == 0 {
			r.Pop()
		} else {
			r.Push("x")
		}
		check()
	}
}

func TestPopEmptyFailsClosed(t *testing.T) {
	r := New(make([]int, 4))
	_, err := r.Pop()
	require.ErrorIs(t, err, api.ErrEmpty)
	assert.Equal(t, 0, r.Used())

	// The failed pop must not have disturbed the indices.
	require.NoError(t, r.Push(1))
	v, err := r.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestPushFullFailsClosed(t *testing.T) {
	r := New(make([]byte, 2))
	require.NoError(t, r.Push('a'))
	require.NoError(t, r.Push('b'))
	require.ErrorIs(t, r.Push('c'), api.ErrFull)
	assert.Equal(t, 2, r.Used())

	v, err := r.Pop()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), v)
}

func TestZeroCapacityStorage(t *testing.T) {
	r := New([]int{})
	assert.Equal(t, 0, r.Cap())
	assert.Equal(t, 0, r.Used())
	assert.Equal(t, 0, r.Free())
	require.ErrorIs(t, r.Push(1), api.ErrFull)
	_, err := r.Pop()
	require.ErrorIs(t, err, api.ErrEmpty)
}

func TestWrapAroundReusesSlots(t *testing.T) {
	r := New(make([]int, 3))

	// Drive both indices past the array end more than once.
	next, expect := 0, 0
	for round := 0; round < 5; round++ {
		for r.Free() > 0 {
			require.NoError(t, r.Push(next))
			next++
		}
		for r.Used() > 1 {
			v, err := r.Pop()
			require.NoError(t, err)
			require.Equal(t, expect, v)
			expect++
		}
	}
	for r.Used() > 0 {
		v, err := r.Pop()
		require.NoError(t, err)
		require.Equal(t, expect, v)
		expect++
	}
	assert.Equal(t, next, expect)
}

type frame struct {
	seq     int
	payload string
}

func TestStructElements(t *testing.T) {
	r := New(make([]frame, 2))
	require.NoError(t, r.Push(frame{1, "first"}))
	require.NoError(t, r.Push(frame{2, "second"}))

	f, err := r.Pop()
	require.NoError(t, err)
	assert.Equal(t, frame{1, "first"}, f)
	f, err = r.Pop()
	require.NoError(t, err)
	assert.Equal(t, frame{2, "second"}, f)
}

func TestStateProbeSnapshot(t *testing.T) {
	r := New(make([]byte, 8))
	probe := r.StateProbe()

	require.NoError(t, r.Push('x'))
	require.NoError(t, r.Push('y'))
	_, err := r.Pop()
	require.NoError(t, err)

	state, ok := probe().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, state["head"])
	assert.Equal(t, 1, state["tail"])
	assert.Equal(t, 1, state["used"])
	assert.Equal(t, 8, state["cap"])
}
