package internal

// CellList is the ordered heterogeneous sequence of hook cells recorded by a
// pass. Position in the list is the cell's identity: the Nth declaration of a
// pass is matched against the Nth cell of the previous pass, nothing else.
//
// Cells are strictly append-only within a pass, never removed or reordered,
// so the list is backed by a growable slice instead of a persistent linked
// structure. Append extends the arena without touching the prefix already
// visible to other CellList values, which is what lets a cursor build its
// processed list while still reading the remaining tail of the prior one.
type CellList struct {
	cells []Cell
}

// Empty returns a list with zero cells.
func Empty() CellList {
	return CellList{}
}

// Len reports the number of cells in the list.
func (l CellList) Len() int {
	return len(l.cells)
}

// Append returns the list extended with cell at the tail. The receiver stays
// valid: processed lists are built linearly, one append per declaration, so
// the backing array is never written twice at the same index.
func (l CellList) Append(cell Cell) CellList {
	return CellList{append(l.cells, cell)}
}

// DropFirst splits off the head cell. An empty list is a declaration-count
// violation (the host made more hook calls than the previous pass recorded)
// and panics with ErrCellListExhausted.
func (l CellList) DropFirst() (Cell, CellList) {
	if len(l.cells) == 0 {
		panic(ErrCellListExhausted)
	}

	return l.cells[0], CellList{l.cells[1:]}
}

// Fold traverses every cell left to right, threading acc through fn.
// Callers filter by kind inside fn.
func (l CellList) Fold(acc any, fn func(acc any, cell Cell) any) any {
	for _, cell := range l.cells {
		acc = fn(acc, cell)
	}

	return acc
}

// Map replaces each cell with fn(cell), preserving length and order. fn must
// return a cell of the same kind; returning the input unchanged preserves the
// slot's identity for SameCells.
func (l CellList) Map(fn func(Cell) Cell) CellList {
	if len(l.cells) == 0 {
		return CellList{}
	}

	cells := make([]Cell, len(l.cells))
	for i, cell := range l.cells {
		cells[i] = fn(cell)
	}

	return CellList{cells}
}

// SameCells compares two lists of equal shape cell by cell, by identity.
// Cells are pointers, so this detects whether a traversal (a flush) replaced
// any cell at all without requiring payloads to support value equality.
func SameCells(a, b CellList) bool {
	if len(a.cells) != len(b.cells) {
		return false
	}

	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}

	return true
}
