// Package reconciler implements an incremental stateful-computation engine:
// imperative-looking host code declares a sequence of persistent hooks
// (state, reducer, ref, effect) once per pass, and the engine matches each
// declaration to the cell recorded at the same position by the previous
// pass, carrying the underlying storage forward. Position is the only
// identity a hook has, so the host must make the same declarations in the
// same order on every pass.
//
// A pass threads a Cursor through the hook calls like an accumulator:
//
//	cursor := reconciler.BeginPass(slots, scheduleNextPass)
//	count, setCount, cursor := reconciler.State(0, cursor)
//	cursor = reconciler.Effect(reconciler.OnMount, func() { ... }, cursor)
//	slots = reconciler.EndPass(cursor)
//
// Setters and dispatchers queue mutations without touching committed values;
// Flush commits them between passes and reports whether anything changed.
// ExecuteEffects drives effect cells through a lifecycle phase over a
// finished pass. The engine owns none of the scheduling: when a pass runs,
// and what a change report triggers, are the host's business.
package reconciler

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}
