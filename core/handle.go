package core

import (
	"github.com/actorisle/isle/interop"
)

// Handle is the capability held by a registered actor. It lets the actor
// enqueue further work on its island and request island-wide termination,
// without exposing the Manager itself.
type Handle struct {
	m *Manager
}

// Post enqueues a message for another local actor. It returns false when
// the target is unknown or stopped.
func (h *Handle) Post(name string, msg interop.Message, sender string) bool {
	if h == nil || h.m == nil {
		return false
	}
	return h.m.Post(name, msg, sender)
}

// Stop requests termination of every actor on the island. It returns
// immediately; shutdown proceeds on a separate goroutine so an actor may
// call it from inside its own Receive.
func (h *Handle) Stop() {
	if h == nil || h.m == nil {
		return
	}
	go h.m.End()
}
