package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
	if cfg.Island.Name == "" {
		t.Error("default island name is empty")
	}
	if cfg.Actor.MailboxSize <= 0 {
		t.Error("default mailbox size is not positive")
	}
	if !cfg.Log.Level.IsValid() {
		t.Errorf("default log level %q is invalid", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"EmptyIslandName", func(c *Config) { c.Island.Name = "" }, ErrInvalidIslandName},
		{"ZeroMailbox", func(c *Config) { c.Actor.MailboxSize = 0 }, ErrInvalidMailboxSize},
		{"NegativeMailbox", func(c *Config) { c.Actor.MailboxSize = -5 }, ErrInvalidMailboxSize},
		{"BadLogLevel", func(c *Config) { c.Log.Level = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	yamlData := `
island:
  name: alpha
actor:
  mailbox_size: 64
  drain_on_stop: false
log:
  level: debug
`
	cfg, err := NewLoader().LoadFromReader(strings.NewReader(yamlData), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if cfg.Island.Name != "alpha" {
		t.Errorf("island name %q, want alpha", cfg.Island.Name)
	}
	if cfg.Actor.MailboxSize != 64 {
		t.Errorf("mailbox size %d, want 64", cfg.Actor.MailboxSize)
	}
	if cfg.Actor.DrainOnStop {
		t.Error("drain_on_stop should be false")
	}
	if cfg.Log.Level != LogLevelDebug {
		t.Errorf("log level %q, want debug", cfg.Log.Level)
	}
	// Unset fields keep their defaults.
	if cfg.Log.Prefix != DefaultConfig().Log.Prefix {
		t.Errorf("log prefix %q, want default", cfg.Log.Prefix)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridge.yaml")
	data := "island:\n  name: beta\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Island.Name != "beta" {
		t.Errorf("island name %q, want beta", cfg.Island.Name)
	}

	if _, err := NewLoader().LoadFromFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrConfigFileNotFound) {
		t.Errorf("expected ErrConfigFileNotFound, got %v", err)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("BRIDGE_ISLAND_NAME", "gamma")
	t.Setenv("BRIDGE_ACTOR_MAILBOX_SIZE", "32")
	t.Setenv("BRIDGE_LOG_LEVEL", "WARN")

	cfg, err := NewLoader().Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Island.Name != "gamma" {
		t.Errorf("island name %q, want gamma", cfg.Island.Name)
	}
	if cfg.Actor.MailboxSize != 32 {
		t.Errorf("mailbox size %d, want 32", cfg.Actor.MailboxSize)
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("log level %q, want warn", cfg.Log.Level)
	}
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridge.yaml")
	if err := os.WriteFile(path, []byte("island:\n  name: before\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	w, err := NewWatcher(path, NewLoader())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Stop()

	if w.GetConfig().Island.Name != "before" {
		t.Errorf("initial island name %q, want before", w.GetConfig().Island.Name)
	}

	changed := make(chan string, 1)
	w.OnConfigChange(func(oldCfg, newCfg *Config) {
		changed <- newCfg.Island.Name
	})

	if err := os.WriteFile(path, []byte("island:\n  name: after\n"), 0o644); err != nil {
		t.Fatalf("rewrite temp config: %v", err)
	}
	if err := w.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if w.GetConfig().Island.Name != "after" {
		t.Errorf("reloaded island name %q, want after", w.GetConfig().Island.Name)
	}
	select {
	case name := <-changed:
		if name != "after" {
			t.Errorf("callback saw island name %q, want after", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("change callback not invoked")
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridge.yaml")
	if err := os.WriteFile(path, []byte("actor:\n  mailbox_size: -1\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := NewLoader().Load(path); !errors.Is(err, ErrInvalidMailboxSize) {
		t.Errorf("expected ErrInvalidMailboxSize, got %v", err)
	}
}
