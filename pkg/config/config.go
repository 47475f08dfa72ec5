// Package config provides configuration management for envlauncher.
// Two layers live here: the desktop-entry settings file that the desktop
// shell reads (preferred terminal, rcfile, banner, launch actions), and an
// optional TOML config with defaults merged from an embedded file covering
// logging, notifications, and per-terminal argument overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/envlauncher/internal/logging"
	"github.com/lvim-tech/envlauncher/pkg/utils"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	Logging       logging.Config           `toml:"logging"`
	Notifications utils.NotificationConfig `toml:"notifications"`

	// Terminals holds raw per-terminal override sections keyed by the
	// emulator command name; use TerminalOverride to decode one.
	Terminals map[string]map[string]any `toml:"terminals"`
}

// TerminalOverride описва user overrides за един terminal emulator
type TerminalOverride struct {
	Args []string `toml:"args" mapstructure:"args"`
}

var globalConfig *Config

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	return filepath.Join(utils.GetConfigDir(), "envlauncher", "config.toml")
}

// GetSystemConfigPath връща пътя до system config
func GetSystemConfigPath() string {
	return "/etc/envlauncher/config.toml"
}

// Load зарежда config с merge на defaults + user/system config
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// 1. Зареди defaults
	cfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. Decode the first config file found on top of the defaults;
	// keys absent from the file keep their default values.
	for _, path := range []string{GetUserConfigPath(), GetSystemConfigPath()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config %s: %v\n", path, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			break
		}
		break
	}

	globalConfig = cfg
	return globalConfig, nil
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get връща глобалния config (lazy load)
func Get() *Config {
	if globalConfig == nil {
		globalConfig, _ = Load()
	}
	return globalConfig
}

// TerminalOverride decodes the override section for one emulator, or nil
// when the config has none.
func (c *Config) TerminalOverride(name string) (*TerminalOverride, error) {
	raw, ok := c.Terminals[name]
	if !ok {
		return nil, nil
	}

	var override TerminalOverride
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &override,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid [terminals.%s] config: %w", name, err)
	}
	return &override, nil
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()

	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(filepath.Dir(userConfigPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
