// Package utils provides common utility functions for envlauncher.
// It includes helpers for command lookup, path expansion, XDG base
// directories, and desktop environment detection.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"
)

var shellSafePattern = regexp.MustCompile(`^[a-zA-Z0-9@%+=:,./_-]+$`)

// ShellQuote returns a string safe to splice into a shell statement.
// Safe strings pass through untouched; anything else is wrapped in single
// quotes with embedded quotes escaped. Paths from desktop entries and CLI
// arguments are attacker-adjacent, so every path inserted into a generated
// script must go through here.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if shellSafePattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// CommandExists проверява дали команда съществува в PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// StartDetachedProcess starts a process completely detached, in its own
// process group, so it outlives the envlauncher invocation.
func StartDetachedProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
	return cmd.Start()
}

// ExpandPath разширява ~ и environment variables в път
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		path = filepath.Join(GetHomeDir(), path[1:])
	}
	return os.ExpandEnv(path)
}

// FileExists проверява дали файл съществува
func FileExists(path string) bool {
	path = ExpandPath(path)
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir създава директория ако не съществува
func EnsureDir(path string) error {
	path = ExpandPath(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}

// GetHomeDir returns home directory
func GetHomeDir() string {
	return os.Getenv("HOME")
}

// GetConfigDir returns XDG config directory
func GetConfigDir() string {
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return configDir
	}
	return filepath.Join(GetHomeDir(), ".config")
}

// GetDataDir returns XDG data directory
func GetDataDir() string {
	if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
		return dataDir
	}
	return filepath.Join(GetHomeDir(), ".local", "share")
}

// GetStateDir returns XDG state directory
func GetStateDir() string {
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return stateDir
	}
	return filepath.Join(GetHomeDir(), ".local", "state")
}

// GetCurrentDesktop returns XDG_CURRENT_DESKTOP environment variable
func GetCurrentDesktop() string {
	return os.Getenv("XDG_CURRENT_DESKTOP")
}

// GetEnvOrDefault връща environment variable или default стойност
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
