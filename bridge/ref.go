package bridge

import (
	"github.com/actorisle/isle/core"
	"github.com/actorisle/isle/interop"
)

// ActorRef is a send-capable handle to an actor, uniform over whichever
// island hosts it. Callers never branch on the variant; refs are
// constructed only by Island.Resolve.
type ActorRef interface {
	// Send delivers msg to the referenced actor and returns a status code.
	// The call blocks until the hosting island has accepted the message.
	Send(msg interop.Message) Status

	// Target returns the registered name the ref was resolved for.
	Target() string
}

// localRef delivers straight into the local Manager's mailbox.
type localRef struct {
	mgr    *core.Manager
	target string
	sender string
}

func (r *localRef) Send(msg interop.Message) Status {
	if r.mgr.Post(r.target, msg, r.sender) {
		return StatusOK
	}
	return StatusNotFound
}

func (r *localRef) Target() string { return r.target }

// remoteRef marshals through the dispatch table and crosses the boundary
// with the peer deliver capability it was bound to at resolution time.
type remoteRef struct {
	target  string
	sender  string
	deliver DeliverFunc
}

func (r *remoteRef) Send(msg interop.Message) Status {
	return dispatch(r.deliver, r.target, r.sender, msg)
}

func (r *remoteRef) Target() string { return r.target }
