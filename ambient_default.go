//go:build !wasm

package reconciler

import (
	"sync"

	"github.com/petermattis/goid"
)

// Ambient cursors are keyed by goroutine id, so independent hosts on
// different goroutines never see each other's passes. A single pass is still
// single-threaded: the cursor must not be shared across goroutines.
var activeCursors sync.Map

func lookupCursor() *Cursor {
	if c, ok := activeCursors.Load(goid.Get()); ok {
		return c.(*Cursor)
	}

	return nil
}

func setActiveCursor(c *Cursor) {
	activeCursors.Store(goid.Get(), c)
}

func clearActiveCursor() {
	activeCursors.Delete(goid.Get())
}
