package utils

import (
	"path/filepath"
	"testing"
)

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/u/.venv/bin/activate", "/home/u/.venv/bin/activate"},
		{"relative/path_1.sh", "relative/path_1.sh"},
		{"user@host:port", "user@host:port"},
		{"", "''"},
		{"/home/u/my venv", "'/home/u/my venv'"},
		{"a;b", "'a;b'"},
		{"$(whoami)", "'$(whoami)'"},
		{"a'b", `'a'\''b'`},
		{`"; rm -rf /tmp/x; echo`, `'"; rm -rf /tmp/x; echo'`},
	}
	for _, tt := range tests {
		if got := ShellQuote(tt.in); got != tt.want {
			t.Errorf("ShellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/u")

	if got := ExpandPath("~/.bashrc"); got != filepath.Join("/home/u", ".bashrc") {
		t.Errorf("ExpandPath(~/.bashrc) = %q", got)
	}
	if got := ExpandPath("/etc/profile"); got != "/etc/profile" {
		t.Errorf("ExpandPath(/etc/profile) = %q", got)
	}

	t.Setenv("ENVLAUNCHER_TEST_DIR", "/opt/envs")
	if got := ExpandPath("$ENVLAUNCHER_TEST_DIR/venv"); got != "/opt/envs/venv" {
		t.Errorf("ExpandPath with env var = %q", got)
	}
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("HOME", "/home/u")

	t.Setenv("XDG_CONFIG_HOME", "/home/u/cfg")
	if got := GetConfigDir(); got != "/home/u/cfg" {
		t.Errorf("GetConfigDir = %q", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	if got := GetConfigDir(); got != filepath.Join("/home/u", ".config") {
		t.Errorf("GetConfigDir fallback = %q", got)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("ENVLAUNCHER_TEST_VALUE", "set")
	if got := GetEnvOrDefault("ENVLAUNCHER_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnvOrDefault = %q, want set", got)
	}

	t.Setenv("ENVLAUNCHER_TEST_VALUE", "")
	if got := GetEnvOrDefault("ENVLAUNCHER_TEST_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnvOrDefault = %q, want fallback", got)
	}
}

func TestCommandExists(t *testing.T) {
	if !CommandExists("sh") {
		t.Error("CommandExists(sh) = false")
	}
	if CommandExists("envlauncher-definitely-not-installed") {
		t.Error("CommandExists reported a nonexistent command")
	}
}
