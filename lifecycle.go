package reconciler

import "github.com/jchavarri/brisk-reconciler/internal"

// Lifecycle is the phase ExecuteEffects drives effects with.
type Lifecycle = internal.Lifecycle

const (
	// Mount follows the first pass of a sequence.
	Mount = internal.Mount
	// Update follows every replay pass.
	Update = internal.Update
	// Unmount is the final teardown of a sequence.
	Unmount = internal.Unmount
)
