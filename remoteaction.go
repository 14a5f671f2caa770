package reconciler

import "slices"

type subscription[A any] struct {
	handler func(A)
}

// RemoteAction broadcasts host events to subscribed handlers. It is the
// channel by which the outside world reaches setters and dispatchers between
// passes: a pass subscribes a handler that closes over its dispatchers, and
// external code calls Act. Single-threaded, like the engine.
type RemoteAction[A any] struct {
	subs []*subscription[A]
}

func NewRemoteAction[A any]() *RemoteAction[A] {
	return &RemoteAction[A]{}
}

// Subscribe registers handler and returns a function that removes it.
// Handlers run in subscription order.
func (r *RemoteAction[A]) Subscribe(handler func(A)) func() {
	sub := &subscription[A]{handler}
	r.subs = append(r.subs, sub)

	return func() {
		if i := slices.Index(r.subs, sub); i >= 0 {
			r.subs = slices.Delete(r.subs, i, i+1)
		}
	}
}

// Act invokes every subscribed handler with action.
func (r *RemoteAction[A]) Act(action A) {
	// clonning to avoid mutation during iteration
	subs := slices.Clone(r.subs)

	for _, sub := range subs {
		sub.handler(action)
	}
}
