package core

import (
	"github.com/actorisle/isle/interop"
)

// Control message identifiers. These stay below 1000 and never cross the
// island boundary; the interop catalog starts at 1000 for that reason.
const (
	// TypeStart is broadcast to every registered actor by Manager.Init.
	TypeStart interop.TypeID = 1

	// TypeStop is delivered to an actor whose mailbox is draining during
	// shutdown.
	TypeStop interop.TypeID = 2
)

// Start notifies an actor that the island is running and it may begin
// sending messages.
type Start struct{}

// TypeID returns the control identifier for Start.
func (Start) TypeID() interop.TypeID { return TypeStart }

// Stop notifies an actor that its run context is shutting down.
type Stop struct{}

// TypeID returns the control identifier for Stop.
func (Stop) TypeID() interop.TypeID { return TypeStop }

// Actor is a computational unit hosted by a Manager. Receive is invoked
// sequentially from the actor's own goroutine; implementations never need
// their own locking for actor-local state.
type Actor interface {
	// Receive processes a single message. sender is the registered name of
	// the sending actor, or empty when unknown.
	Receive(msg interop.Message, sender string)
}

// ThreadConfig carries run-context configuration for one actor. The bridge
// passes it through opaquely.
type ThreadConfig struct {
	// MailboxSize sets the capacity of the actor's message queue.
	MailboxSize int

	// DrainOnStop processes messages still queued when the run context is
	// asked to stop, instead of discarding them.
	DrainOnStop bool
}

// DefaultThreadConfig returns sensible defaults.
func DefaultThreadConfig() ThreadConfig {
	return ThreadConfig{
		MailboxSize: 1024,
		DrainOnStop: true,
	}
}

// envelope pairs a message with its sender name inside a mailbox.
type envelope struct {
	msg    interop.Message
	sender string
}
