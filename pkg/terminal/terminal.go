// Package terminal provides an abstraction layer for terminal emulator
// programs. Each supported emulator implements the Launcher interface and
// knows how to open a window (or drop-down tab) running bash with a given
// rcfile. Emulators register themselves on package initialization and are
// resolved through a preference-ordered registry.
//
// Most variants are plain argument-vector construction plus a single
// process spawn. Two carry protocol logic: gnome-terminal registers an
// application identity with gnome-terminal-server over the session bus
// before launching, and yakuake is driven entirely through D-Bus calls.
package terminal

import (
	"fmt"
	"os/exec"
)

// AppID е application identity за window grouping в desktop shells
const AppID = "com.github.lvim-tech.EnvLauncher"

// Handle is a started launch that can be waited on. *exec.Cmd satisfies
// it. Bus-driven launchers return a nil Handle (there is no child process
// to wait for).
type Handle interface {
	Wait() error
}

// Launcher interface за различни terminal emulators
type Launcher interface {
	Command() string       // "gnome-terminal", "xterm", etc.
	Available() bool       // Проверка дали е инсталиран
	SetArgs(args []string) // Extra args от user config

	// Launch отваря прозорец с bash --rcfile scriptPath
	Launch(scriptPath string) (Handle, error)
}

// commandExists проверява дали команда съществува (stub-ва се в тестове)
var commandExists = func(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// startProcess spawns a terminal emulator process. The handle is returned
// so direct invocations can wait for the spawned shell to exit; windowed
// launches just drop it.
func startProcess(name string, args ...string) (Handle, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}
	return cmd, nil
}
