// Package config provides error definitions for configuration management
package config

import "errors"

// Configuration validation errors
var (
	ErrInvalidIslandName  = errors.New("invalid island name")
	ErrInvalidMailboxSize = errors.New("invalid mailbox size")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)

// Configuration loading errors
var (
	ErrConfigFileNotFound = errors.New("configuration file not found")
	ErrConfigParseError   = errors.New("configuration parse error")
	ErrConfigWatchError   = errors.New("configuration watch error")
)
