// Package config provides configuration loading and parsing functionality
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFormat represents the configuration file format
type ConfigFormat string

const (
	FormatYAML ConfigFormat = "yaml"
	FormatJSON ConfigFormat = "json"
)

// Loader handles configuration loading from files and the environment
type Loader struct {
	// Configuration search paths
	searchPaths []string

	// Environment variable prefix
	envPrefix string

	// Default configuration
	defaultConfig *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		searchPaths: []string{
			".",
			"./config",
			"/etc/bridge",
		},
		envPrefix:     "BRIDGE",
		defaultConfig: DefaultConfig(),
	}
}

// SetSearchPaths sets the configuration file search paths
func (l *Loader) SetSearchPaths(paths []string) *Loader {
	l.searchPaths = paths
	return l
}

// SetEnvPrefix sets the environment variable prefix
func (l *Loader) SetEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load loads configuration from the specified file, applies environment
// overrides, and validates the result. An empty filename loads defaults
// plus environment overrides only.
func (l *Loader) Load(filename string) (*Config, error) {
	config := DefaultConfig()
	if l.defaultConfig != nil {
		clone := *l.defaultConfig
		config = &clone
	}

	if filename != "" {
		fileConfig, err := l.LoadFromFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", filename, err)
		}
		config = fileConfig
	}

	l.loadFromEnv(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific file
func (l *Loader) LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format := FormatYAML
	if filepath.Ext(filename) == ".json" {
		format = FormatJSON
	}

	return l.parseConfig(data, format)
}

// LoadFromReader loads configuration from an io.Reader
func (l *Loader) LoadFromReader(reader io.Reader, format ConfigFormat) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration data: %w", err)
	}

	return l.parseConfig(data, format)
}

// AutoLoad discovers a config file on the search paths and loads it,
// falling back to defaults when none is found.
func (l *Loader) AutoLoad() (*Config, error) {
	for _, dir := range l.searchPaths {
		for _, name := range []string{"bridge.yaml", "bridge.yml", "bridge.json"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return l.Load(path)
			}
		}
	}
	return l.Load("")
}

// parseConfig parses configuration data on top of the defaults
func (l *Loader) parseConfig(data []byte, format ConfigFormat) (*Config, error) {
	config := DefaultConfig()
	if l.defaultConfig != nil {
		clone := *l.defaultConfig
		config = &clone
	}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, config)
	case FormatJSON:
		err = json.Unmarshal(data, config)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParseError, err)
	}

	return config, nil
}

// loadFromEnv overrides configuration fields from environment variables
func (l *Loader) loadFromEnv(config *Config) {
	if v := l.getenv("ISLAND_NAME"); v != "" {
		config.Island.Name = v
	}
	if v := l.getenv("ACTOR_MAILBOX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Actor.MailboxSize = n
		}
	}
	if v := l.getenv("ACTOR_DRAIN_ON_STOP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Actor.DrainOnStop = b
		}
	}
	if v := l.getenv("LOG_LEVEL"); v != "" {
		config.Log.Level = LogLevel(strings.ToLower(v))
	}
	if v := l.getenv("LOG_PREFIX"); v != "" {
		config.Log.Prefix = v
	}
}

func (l *Loader) getenv(key string) string {
	return os.Getenv(l.envPrefix + "_" + key)
}
