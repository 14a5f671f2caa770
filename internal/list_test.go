package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellList(t *testing.T) {
	t.Run("append keeps order", func(t *testing.T) {
		a, b := NewRefCell(1), NewRefCell(2)
		list := Empty().Append(a).Append(b)

		assert.Equal(t, 2, list.Len())

		head, rest := list.DropFirst()
		assert.Same(t, a, head)

		head, rest = rest.DropFirst()
		assert.Same(t, b, head)
		assert.Equal(t, 0, rest.Len())
	})

	t.Run("drop on empty is fatal", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrCellListExhausted, func() {
			Empty().DropFirst()
		})
	})

	t.Run("fold visits every cell", func(t *testing.T) {
		list := Empty().Append(NewRefCell(1)).Append(NewStateCell(2)).Append(NewRefCell(3))

		count := list.Fold(0, func(acc any, cell Cell) any {
			return acc.(int) + 1
		})

		assert.Equal(t, 3, count)
	})

	t.Run("identity comparison", func(t *testing.T) {
		a, b := NewStateCell(1), NewStateCell(1)
		list := Empty().Append(a).Append(b)

		same := list.Map(func(c Cell) Cell { return c })
		assert.True(t, SameCells(list, same))

		// same shape and equal payloads, but one cell replaced
		replaced := list.Map(func(c Cell) Cell {
			if c == Cell(b) {
				return NewStateCell(1)
			}
			return c
		})
		assert.False(t, SameCells(list, replaced))

		assert.False(t, SameCells(list, Empty()))
	})
}

func TestIdentical(t *testing.T) {
	assert.True(t, identical(nil, nil))
	assert.False(t, identical(nil, 1))
	assert.True(t, identical(3, 3))
	assert.False(t, identical(3, 4))
	assert.False(t, identical(3, "3"))

	s := []int{1, 2}
	assert.True(t, identical(s, s))
	assert.False(t, identical(s, []int{1, 2}))

	m := map[string]int{}
	assert.True(t, identical(m, m))
	assert.False(t, identical(m, map[string]int{}))
}
