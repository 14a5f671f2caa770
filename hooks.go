package reconciler

import "github.com/jchavarri/brisk-reconciler/internal"

// Slots is the recorded cell list a pass leaves behind: the persistent state
// of one hook sequence, held by the host between passes. A nil *Slots means
// the sequence has never run.
type Slots struct {
	list internal.CellList
}

// EmptySlots returns the initial state for a sequence that has never run.
func EmptySlots() *Slots {
	return nil
}

// Cursor is the replay position threaded through one pass's hook calls. Each
// hook call consumes a cursor and returns the next one; reusing an old
// cursor forks the pass and breaks positional identity.
type Cursor struct {
	hooks *internal.Hooks
}

// BeginPass starts a pass over the prior recorded state. onChange fires
// whenever a setter or dispatcher queues a mutation, including between
// passes; it is the host's signal to eventually schedule another pass. A nil
// onChange is allowed.
func BeginPass(prior *Slots, onChange func()) *Cursor {
	var list *internal.CellList
	if prior != nil {
		l := prior.list
		list = &l
	}

	return &Cursor{internal.OfState(list, onChange)}
}

// EndPass extracts the new recorded state once every hook declaration of the
// pass has run.
func EndPass(c *Cursor) *Slots {
	return &Slots{*c.hooks.ToState()}
}

// State declares a state hook: a committed value plus a setter that
// overwrites the pending value and notifies the host. Pending writes
// coalesce (last write wins) and commit at the next Flush. initial is used
// only when the slot mounts for the first time.
func State[T any](initial T, c *Cursor) (T, func(T), *Cursor) {
	cell, set, next := c.hooks.NextState(initial)

	setter := func(v T) { set(v) }
	return as[T](cell.Current()), setter, &Cursor{next}
}

// Reducer declares a reducer hook: a committed value plus a dispatcher that
// queues an action and notifies the host. Queued actions fold through reduce
// in dispatch order at the next Flush.
func Reducer[S, A any](initial S, reduce func(S, A) S, c *Cursor) (S, func(A), *Cursor) {
	cell, dispatch, next := c.hooks.NextReducer(initial)

	dispatcher := func(action A) {
		dispatch(func(s any) any { return reduce(as[S](s), action) })
	}
	return as[S](cell.Current()), dispatcher, &Cursor{next}
}

// Ref declares a ref hook: a mutable box whose writes land immediately,
// never notify the host, and never count as a change. Refs are the escape
// hatch for values that must not trigger another pass.
func Ref[T any](initial T, c *Cursor) (T, func(T), *Cursor) {
	cell, set, next := c.hooks.NextRef(initial)

	setter := func(v T) { set(v) }
	return as[T](cell.Value()), setter, &Cursor{next}
}

// EffectHandler is the shape of an effect's body: either a plain function or
// one returning a cleanup to run before the next execution and on unmount.
type EffectHandler interface {
	func() | func() func()
}

// Effect declares an effect hook. condition decides when the handler re-runs
// (see Always, OnMount and If); the handler itself runs from ExecuteEffects,
// never during the pass. On replay the freshly declared condition and
// handler replace the recorded ones while the recorded cleanup persists.
func Effect[H EffectHandler](condition Condition, handler H, c *Cursor) *Cursor {
	var fn func() func()
	switch handler := any(handler).(type) {
	case func():
		fn = func() func() {
			handler()
			return nil
		}
	case func() func():
		fn = handler
	}

	return &Cursor{c.hooks.NextEffect(condition.cond, fn)}
}

// ExecuteEffects drives every effect of a finished pass through one
// lifecycle phase, in declaration order, and reports whether at least one
// handler (or, on Unmount, cleanup) ran.
func ExecuteEffects(phase Lifecycle, s *Slots) bool {
	if s == nil {
		return false
	}

	return internal.ExecuteEffects(phase, s.list)
}

// Flush commits every state/reducer mutation queued since the last flush and
// reports whether any committed value changed. When nothing changed the
// input slots are returned as is. Setters captured during earlier passes
// keep writing to the cells of those passes; the host is expected to run
// another pass after a changed flush so event handlers close over fresh
// cells.
func Flush(s *Slots) (*Slots, bool) {
	if s == nil {
		return nil, false
	}

	list, changed := internal.FlushPendingUpdates(s.list)
	if !changed {
		return s, false
	}

	return &Slots{list}, true
}
