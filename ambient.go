package reconciler

// RunPass runs body with an ambient cursor installed for the calling
// goroutine, so hook calls inside body can use the Use* forms instead of
// threading a cursor by hand. Returns the new recorded state. RunPass nests:
// an inner RunPass shadows the outer cursor for its duration.
func RunPass(prior *Slots, onChange func(), body func()) *Slots {
	prev := lookupCursor()
	setActiveCursor(BeginPass(prior, onChange))

	defer func() {
		if prev != nil {
			setActiveCursor(prev)
		} else {
			clearActiveCursor()
		}
	}()

	body()

	return EndPass(activeCursor())
}

// UseState is the ambient form of State. Panics with ErrNoActivePass outside
// RunPass.
func UseState[T any](initial T) (T, func(T)) {
	value, setter, next := State(initial, activeCursor())
	setActiveCursor(next)
	return value, setter
}

// UseReducer is the ambient form of Reducer.
func UseReducer[S, A any](initial S, reduce func(S, A) S) (S, func(A)) {
	value, dispatch, next := Reducer(initial, reduce, activeCursor())
	setActiveCursor(next)
	return value, dispatch
}

// UseRef is the ambient form of Ref.
func UseRef[T any](initial T) (T, func(T)) {
	value, setter, next := Ref(initial, activeCursor())
	setActiveCursor(next)
	return value, setter
}

// UseEffect is the ambient form of Effect.
func UseEffect[H EffectHandler](condition Condition, handler H) {
	setActiveCursor(Effect(condition, handler, activeCursor()))
}

func activeCursor() *Cursor {
	c := lookupCursor()
	if c == nil {
		panic(ErrNoActivePass)
	}

	return c
}
