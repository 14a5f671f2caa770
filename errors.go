package reconciler

import "github.com/jchavarri/brisk-reconciler/internal"

// Declaration-sequence violations are fatal: recovering from one would
// silently shift cell identity for every later slot. The engine panics with
// these sentinels so a host can still recognize them at a recovery boundary.
var (
	// ErrCellListExhausted: a pass declared more hooks than the previous
	// pass recorded.
	ErrCellListExhausted = internal.ErrCellListExhausted

	// ErrCellKindMismatch: a slot was revisited as a different hook kind.
	ErrCellKindMismatch = internal.ErrCellKindMismatch

	// ErrNoActivePass: an ambient Use* hook was called outside RunPass.
	ErrNoActivePass = internal.ErrNoActivePass
)
