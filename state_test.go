package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	pass := func(prior *Slots, onChange func()) (int, func(int), *Slots) {
		c := BeginPass(prior, onChange)
		v, set, c := State(0, c)
		return v, set, EndPass(c)
	}

	t.Run("coalesces writes until flush", func(t *testing.T) {
		v, set, slots := pass(EmptySlots(), nil)
		assert.Equal(t, 0, v)

		set(10)
		set(20)

		// committed value is untouched until the flush
		v, _, _ = pass(slots, nil)
		assert.Equal(t, 0, v)

		slots, changed := Flush(slots)
		assert.True(t, changed)

		v, _, slots = pass(slots, nil)
		assert.Equal(t, 20, v)

		flushed, changed := Flush(slots)
		assert.False(t, changed)
		assert.Same(t, slots, flushed)
	})

	t.Run("notifies on every setter call", func(t *testing.T) {
		notified := 0
		_, set, _ := pass(EmptySlots(), func() { notified++ })

		set(1)
		set(2)
		set(2)

		assert.Equal(t, 3, notified)
	})

	t.Run("writing back the same value is not a change", func(t *testing.T) {
		_, set, slots := pass(EmptySlots(), nil)

		set(0)

		flushed, changed := Flush(slots)
		assert.False(t, changed)
		assert.Same(t, slots, flushed)
	})

	t.Run("setters work between passes", func(t *testing.T) {
		// an external event firing long after the pass ended
		_, set, slots := pass(EmptySlots(), nil)
		slots, changed := Flush(slots)
		assert.False(t, changed)

		set(99)

		slots, changed = Flush(slots)
		assert.True(t, changed)

		v, _, _ := pass(slots, nil)
		assert.Equal(t, 99, v)
	})

	t.Run("uncomparable values flush by reference", func(t *testing.T) {
		c := BeginPass(EmptySlots(), nil)
		first := []int{1}
		v, set, c := State(first, c)
		slots := EndPass(c)
		assert.Equal(t, []int{1}, v)

		// same backing slice: no change
		set(first)
		flushed, changed := Flush(slots)
		assert.False(t, changed)
		assert.Same(t, slots, flushed)

		// fresh slice, equal contents: still a change
		set([]int{1})
		_, changed = Flush(slots)
		assert.True(t, changed)
	})
}
