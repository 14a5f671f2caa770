package reconciler

import "github.com/jchavarri/brisk-reconciler/internal"

// Condition gates when an effect's handler re-runs across passes.
type Condition struct {
	cond internal.Condition
}

var (
	// Always re-runs the handler on every Mount and Update, running the
	// previous cleanup first.
	Always = Condition{internal.AlwaysCondition()}

	// OnMount runs the handler once, on Mount; its cleanup runs on Unmount.
	OnMount = Condition{internal.OnMountCondition()}
)

// If re-runs the handler on Update only when changed reports that the
// carried value differs from the one declared on the previous pass. The
// handler always runs on Mount. The condition must stay an If for the slot
// on every pass; swapping it for Always or OnMount is silently ignored.
func If[C any](changed func(prev, next C) bool, value C) Condition {
	return Condition{internal.IfCondition(
		func(prev, next any) bool { return changed(as[C](prev), as[C](next)) },
		value,
	)}
}
