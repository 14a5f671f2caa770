package internal

// ExecuteEffects drives every effect cell of a finished pass through one
// lifecycle phase, in declaration order. Non-effect cells are skipped.
// Reports whether at least one effect ran.
func ExecuteEffects(phase Lifecycle, list CellList) bool {
	ran := list.Fold(false, func(acc any, cell Cell) any {
		effect, ok := cell.(*EffectCell)
		if !ok {
			return acc
		}

		ranNow := effect.Execute(phase)
		return acc.(bool) || ranNow
	})

	return ran.(bool)
}

// FlushPendingUpdates commits every pending state/reducer mutation queued
// since the last flush, producing the new recorded list. Changed cells are
// replaced, untouched ones keep their identity, so the changed report is a
// pure identity comparison of the two lists.
func FlushPendingUpdates(list CellList) (CellList, bool) {
	flushed := list.Map(flushCell)
	return flushed, !SameCells(list, flushed)
}

func flushCell(cell Cell) Cell {
	switch c := cell.(type) {
	case *StateCell:
		if identical(c.current, c.next) {
			return c
		}
		return &StateCell{current: c.next, next: c.next}

	case *ReducerCell:
		// updates are stored most-recent-first; fold from the tail so they
		// apply in dispatch order
		value := c.current
		for i := len(c.updates) - 1; i >= 0; i-- {
			value = c.updates[i](value)
		}

		if identical(value, c.current) {
			return c
		}
		return &ReducerCell{current: value}

	default:
		// refs and effects never participate in flush
		return cell
	}
}
