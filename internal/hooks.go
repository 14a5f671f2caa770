package internal

// Hooks is the pass cursor: a zipper over the cell list recorded by the
// previous pass. remaining is the not-yet-revisited tail (nil when there is
// no prior state at all, i.e. the first pass), processed is the prefix
// already matched or created during the current pass. Each declaration
// consumes at most one cell from remaining and appends exactly one to
// processed, so the two never diverge from the call count.
type Hooks struct {
	remaining *CellList
	processed CellList
	onChange  func()
}

// OfState starts a pass over a prior recorded state. prior is nil for a
// brand-new sequence. onChange fires on every setter/dispatch call and may be
// nil.
func OfState(prior *CellList, onChange func()) *Hooks {
	if onChange == nil {
		onChange = func() {}
	}

	return &Hooks{
		remaining: prior,
		processed: Empty(),
		onChange:  onChange,
	}
}

// ToState extracts the recorded cell list once every declaration of the pass
// has run. The result is the prior state of the next pass.
func (h *Hooks) ToState() *CellList {
	state := h.processed
	return &state
}

// ProcessNext is the replay primitive shared by all hook kinds. On a replay
// pass it pops the slot's recorded cell, folding the caller's fresh arguments
// into it through merge when one is given; on a first pass it appends the
// cell built by fresh. Popping past the recorded count panics with
// ErrCellListExhausted (see DropFirst).
func (h *Hooks) ProcessNext(fresh func() Cell, merge func(Cell) Cell) (Cell, *Hooks) {
	if h.remaining != nil {
		head, rest := h.remaining.DropFirst()
		if merge != nil {
			head = merge(head)
		}

		return head, &Hooks{
			remaining: &rest,
			processed: h.processed.Append(head),
			onChange:  h.onChange,
		}
	}

	cell := fresh()
	return cell, &Hooks{
		remaining: nil,
		processed: h.processed.Append(cell),
		onChange:  h.onChange,
	}
}

// NextState declares the next slot as a state cell. The setter overwrites the
// pending value and notifies the host; the committed value moves only at
// flush time.
func (h *Hooks) NextState(initial any) (*StateCell, func(any), *Hooks) {
	cell, next := h.ProcessNext(func() Cell { return NewStateCell(initial) }, nil)
	state := asKind[*StateCell](cell)

	onChange := h.onChange
	setter := func(v any) {
		state.SetNext(v)
		onChange()
	}

	return state, setter, next
}

// NextReducer declares the next slot as a reducer cell. dispatch queues an
// update and notifies the host; updates fold into the committed value at
// flush time, in dispatch order.
func (h *Hooks) NextReducer(initial any) (*ReducerCell, func(func(any) any), *Hooks) {
	cell, next := h.ProcessNext(func() Cell { return NewReducerCell(initial) }, nil)
	reducer := asKind[*ReducerCell](cell)

	onChange := h.onChange
	dispatch := func(update func(any) any) {
		reducer.Dispatch(update)
		onChange()
	}

	return reducer, dispatch, next
}

// NextRef declares the next slot as a ref cell. Writes are immediate and
// silent: no onChange, no flush participation.
func (h *Hooks) NextRef(initial any) (*RefCell, func(any), *Hooks) {
	cell, next := h.ProcessNext(func() Cell { return NewRefCell(initial) }, nil)
	ref := asKind[*RefCell](cell)

	return ref, ref.Set, next
}

// NextEffect declares the next slot as an effect cell. On replay, the freshly
// declared condition and handler are merged into the carried cell while its
// recorded cleanup and previous condition persist.
func (h *Hooks) NextEffect(condition Condition, handler func() func()) *Hooks {
	_, next := h.ProcessNext(
		func() Cell { return NewEffectCell(condition, handler) },
		func(cell Cell) Cell {
			effect := asKind[*EffectCell](cell)
			effect.Refresh(condition, handler)
			return effect
		},
	)

	return next
}
