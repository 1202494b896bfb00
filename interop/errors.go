// Package interop provides error definitions for wire conversion
package interop

import "errors"

// Wire conversion errors
var (
	// ErrUnknownType indicates a type identifier absent from the catalog.
	ErrUnknownType = errors.New("unknown interop message type")

	// ErrTypeMismatch indicates a message whose concrete type does not match
	// its declared type identifier.
	ErrTypeMismatch = errors.New("message does not match its declared type id")

	// ErrShortBuffer indicates a wire buffer smaller than the fixed layout
	// for the declared type identifier.
	ErrShortBuffer = errors.New("wire buffer too short for message layout")
)
