// Package core provides error definitions for actor management
package core

import "errors"

// Registration errors
var (
	ErrEmptyName     = errors.New("actor name cannot be empty")
	ErrNilActor      = errors.New("actor cannot be nil")
	ErrDuplicateName = errors.New("actor name already registered")
	ErrManagerEnded  = errors.New("manager has been shut down")
)
