package config

import (
	"slices"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := loadDefaultConfig()
	if err != nil {
		t.Fatalf("loadDefaultConfig returned error: %v", err)
	}

	if got := cfg.Logging.Level; got != "info" {
		t.Errorf("Logging.Level = %q, want info", got)
	}
	if !cfg.Logging.ToFile {
		t.Error("Logging.ToFile = false, want true")
	}
	if !cfg.Notifications.Enabled {
		t.Error("Notifications.Enabled = false, want true")
	}
	if got := cfg.Notifications.Tool; got != "auto" {
		t.Errorf("Notifications.Tool = %q, want auto", got)
	}
	if got := cfg.Notifications.Timeout; got != 5000 {
		t.Errorf("Notifications.Timeout = %d, want 5000", got)
	}
	if len(cfg.Terminals) != 0 {
		t.Errorf("default config has terminal overrides: %v", cfg.Terminals)
	}
}

func TestUserConfigMergesOverDefaults(t *testing.T) {
	cfg, err := loadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}

	// Partial user file: only the keys it names change.
	userConfig := `
[logging]
level = "debug"

[terminals.alacritty]
args = ["--option", "font.size=14"]
`
	if _, err := toml.Decode(userConfig, cfg); err != nil {
		t.Fatalf("toml.Decode returned error: %v", err)
	}

	if got := cfg.Logging.Level; got != "debug" {
		t.Errorf("Logging.Level = %q, want debug", got)
	}
	if !cfg.Logging.ToFile {
		t.Error("Logging.ToFile lost its default")
	}
	if got := cfg.Notifications.Timeout; got != 5000 {
		t.Errorf("Notifications.Timeout lost its default: %d", got)
	}

	override, err := cfg.TerminalOverride("alacritty")
	if err != nil {
		t.Fatalf("TerminalOverride returned error: %v", err)
	}
	if override == nil {
		t.Fatal("TerminalOverride = nil for configured section")
	}
	if !slices.Equal(override.Args, []string{"--option", "font.size=14"}) {
		t.Errorf("override.Args = %v", override.Args)
	}
}

func TestTerminalOverrideAbsent(t *testing.T) {
	cfg := &Config{}

	override, err := cfg.TerminalOverride("kitty")
	if err != nil {
		t.Fatalf("TerminalOverride returned error: %v", err)
	}
	if override != nil {
		t.Errorf("TerminalOverride = %+v for missing section, want nil", override)
	}
}

func TestTerminalOverrideBadType(t *testing.T) {
	cfg := &Config{
		Terminals: map[string]map[string]any{
			"kitty": {"args": "not-a-list"},
		},
	}

	if _, err := cfg.TerminalOverride("kitty"); err == nil {
		t.Error("expected decode error for non-list args")
	}
}
