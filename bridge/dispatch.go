package bridge

import (
	"errors"
	"log"

	"github.com/actorisle/isle/interop"
)

// DeliverFunc is the outbound boundary entry point of a peer island. It
// accepts the marshalled wire form and returns the status the peer's
// handler reported.
type DeliverFunc func(target, sender string, typeID interop.TypeID, data []byte) Status

// ExistsFunc is the outbound lookup entry point of a peer island.
type ExistsFunc func(name string) bool

// dispatch routes an outbound message across the boundary: it selects the
// conversion by the message's declared type identifier, marshals to wire
// form and invokes the deliver capability. The three negative outcomes stay
// distinguishable: an identifier absent from the catalog, a message that
// fails its own conversion, and a peer-reported routing failure.
func dispatch(deliver DeliverFunc, target, sender string, msg interop.Message) Status {
	data, err := interop.Encode(msg)
	if err != nil {
		if errors.Is(err, interop.ErrUnknownType) {
			return StatusUnknownType
		}
		// A catalog identifier whose conversion rejects its own message
		// means the two islands were built from skewed catalogs. Still a
		// plain status for the caller, but worth shouting about.
		log.Printf("[bridge] catalog skew: message %T declares id %d but fails its conversion: %v",
			msg, msg.TypeID(), err)
		return StatusTypeMismatch
	}
	return deliver(target, sender, msg.TypeID(), data)
}
