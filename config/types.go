// Package config provides configuration management for the actor bridge
package config

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// Config represents the complete bridge configuration for one island
type Config struct {
	// Island identification
	Island IslandConfig `yaml:"island" json:"island"`

	// Actor run-context defaults
	Actor ActorConfig `yaml:"actor" json:"actor"`

	// Logging configuration
	Log LogConfig `yaml:"log" json:"log"`
}

// IslandConfig identifies this runtime island
type IslandConfig struct {
	// Name of this island, used in logs and diagnostics
	Name string `yaml:"name" json:"name"`
}

// ActorConfig holds per-actor run-context defaults
type ActorConfig struct {
	// MailboxSize is the default mailbox capacity for registered actors
	MailboxSize int `yaml:"mailbox_size" json:"mailbox_size"`

	// DrainOnStop processes queued messages during shutdown
	DrainOnStop bool `yaml:"drain_on_stop" json:"drain_on_stop"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level filters log output
	Level LogLevel `yaml:"level" json:"level"`

	// Prefix is prepended to every log line
	Prefix string `yaml:"prefix" json:"prefix"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Island: IslandConfig{
			Name: "island",
		},
		Actor: ActorConfig{
			MailboxSize: 1024,
			DrainOnStop: true,
		},
		Log: LogConfig{
			Level:  LogLevelInfo,
			Prefix: "[bridge] ",
		},
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Island.Name == "" {
		return ErrInvalidIslandName
	}
	if c.Actor.MailboxSize <= 0 {
		return ErrInvalidMailboxSize
	}
	if !c.Log.Level.IsValid() {
		return ErrInvalidLogLevel
	}
	return nil
}
