package bridge

import "fmt"

// Status is the integer result of a boundary-crossing operation. Zero is
// success; every failure is a distinct negative code. Both islands share
// these values as part of the wire contract.
type Status = int32

const (
	// StatusOK reports successful delivery.
	StatusOK Status = 0

	// StatusNotFound reports that the target actor is not registered on
	// the island that handled the call.
	StatusNotFound Status = -1

	// StatusUnknownType reports a type identifier absent from the catalog.
	StatusUnknownType Status = -2

	// StatusTypeMismatch reports a message whose concrete type, or whose
	// wire bytes, do not match the declared type identifier. This is an
	// internal-bug condition, not a routing failure.
	StatusTypeMismatch Status = -3

	// StatusNoManager reports a management or delivery call made before
	// CreateManager or after Shutdown.
	StatusNoManager Status = -4
)

// StatusString returns a readable name for a status code.
func StatusString(s Status) string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "target not found"
	case StatusUnknownType:
		return "unknown message type"
	case StatusTypeMismatch:
		return "type mismatch"
	case StatusNoManager:
		return "manager not created"
	default:
		return fmt.Sprintf("unknown status (%d)", s)
	}
}
