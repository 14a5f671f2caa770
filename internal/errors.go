package internal

import "errors"

// Fatal conditions. These are programming errors in the host's declaration
// sequence, not recoverable states: any attempt at recovery would silently
// shift cell identity for every later slot. They are raised with panic and
// carry these sentinels so hosts can recognize them at a recovery boundary.
var (
	// ErrCellListExhausted is raised when a pass declares more hooks than
	// the previous pass recorded.
	ErrCellListExhausted = errors.New("hooks: cell list exhausted: more hooks declared than recorded by the previous pass")

	// ErrCellKindMismatch is raised when a slot is revisited as a different
	// hook kind than the one recorded at the same position.
	ErrCellKindMismatch = errors.New("hooks: hook kind changed between passes for the same slot")

	// ErrNoActivePass is raised by the ambient Use* hooks when no pass is
	// running on the calling goroutine.
	ErrNoActivePass = errors.New("hooks: no pass in progress on this goroutine")
)
