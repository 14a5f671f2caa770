package internal

import "reflect"

type cellKind int

const (
	kindState cellKind = iota
	kindReducer
	kindRef
	kindEffect
)

// Cell is a single persistent hook slot. The four kinds are a closed set;
// the unexported method keeps it that way. Payloads are stored erased as any
// and recovered by the typed wrappers in the root package.
type Cell interface {
	kind() cellKind
}

// asKind recovers the concrete cell popped for a slot. A mismatch means the
// host changed the hook kind declared at this position between passes.
func asKind[C Cell](cell Cell) C {
	c, ok := cell.(C)
	if !ok {
		panic(ErrCellKindMismatch)
	}

	return c
}

// StateCell holds a committed value and the pending value a setter wrote.
// The two are reconciled at flush time, never during a pass.
type StateCell struct {
	current any
	next    any
}

func NewStateCell(initial any) *StateCell {
	return &StateCell{current: initial, next: initial}
}

func (c *StateCell) kind() cellKind { return kindState }

func (c *StateCell) Current() any { return c.current }

// SetNext overwrites the pending value. Intermediate writes between flushes
// coalesce: only the last one is committed.
func (c *StateCell) SetNext(v any) { c.next = v }

// ReducerCell holds a committed value and the queue of pending updates.
// Updates are prepended at dispatch time, so the stored order is
// most-recent-first; flush folds them back in dispatch order.
type ReducerCell struct {
	current any
	updates []func(any) any
}

func NewReducerCell(initial any) *ReducerCell {
	return &ReducerCell{current: initial}
}

func (c *ReducerCell) kind() cellKind { return kindReducer }

func (c *ReducerCell) Current() any { return c.current }

func (c *ReducerCell) Dispatch(update func(any) any) {
	c.updates = append([]func(any) any{update}, c.updates...)
}

// RefCell is a single mutable box. Writes land immediately and are invisible
// to flush and change detection.
type RefCell struct {
	value any
}

func NewRefCell(initial any) *RefCell {
	return &RefCell{value: initial}
}

func (c *RefCell) kind() cellKind { return kindRef }

func (c *RefCell) Value() any { return c.value }

func (c *RefCell) Set(v any) { c.value = v }

// identical is the physical-equality check used by flush: comparable dynamic
// types compare by value, uncomparable ones (slices, maps, funcs) by
// reference, so payloads are never required to support value equality.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if va.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	default:
		// uncomparable struct or array: always treated as changed
		return false
	}
}
