//go:build wasm

package reconciler

// wasm is single-threaded; one ambient cursor is enough.
var ambientCursor *Cursor

func lookupCursor() *Cursor {
	return ambientCursor
}

func setActiveCursor(c *Cursor) {
	ambientCursor = c
}

func clearActiveCursor() {
	ambientCursor = nil
}
