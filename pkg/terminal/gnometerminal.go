package terminal

import (
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/lvim-tech/envlauncher/internal/logging"
)

const (
	// registerPollInterval е интервалът между NameHasOwner проверки
	registerPollInterval = time.Second / 32
	// registerTimeout ограничава чакането за app-id регистрация
	registerTimeout = time.Second
)

// gnomeServerPaths are the well-known install locations of
// gnome-terminal-server, checked in order.
var gnomeServerPaths = []string{
	"/usr/libexec/gnome-terminal-server",
	"/usr/lib/gnome-terminal/gnome-terminal-server",
	"/usr/lib/gnome-terminal-server",
}

var (
	errServerNotFound  = errors.New("gnome-terminal-server binary not found")
	errRegisterTimeout = errors.New("timed out waiting for app-id registration")
)

// GnomeTerminal launches gnome-terminal, the GNOME default. gnome-terminal
// only honors --app-id when a server process has already claimed that name
// on the session bus, so Launch first walks a small registration state
// machine: query ownership, spawn the server if needed, poll until the
// name is claimed or the deadline passes. Registration failure is not
// fatal; the launch degrades to the legacy --class flag, which loses
// window grouping but still opens a terminal.
type GnomeTerminal struct {
	extraArgs []string

	// test seams; zero values use the real implementations
	bus         Caller
	sleep       func(time.Duration)
	now         func() time.Time
	serverPaths []string
	startServer func(name string, args ...string) error
	fileExists  func(path string) bool
}

func init() {
	Register(&GnomeTerminal{})
}

func (g *GnomeTerminal) Command() string {
	return "gnome-terminal"
}

func (g *GnomeTerminal) Available() bool {
	return commandExists(g.Command())
}

func (g *GnomeTerminal) SetArgs(args []string) {
	g.extraArgs = args
}

func (g *GnomeTerminal) caller() Caller {
	if g.bus != nil {
		return g.bus
	}
	return DBusSend{}
}

func (g *GnomeTerminal) clockSleep(d time.Duration) {
	if g.sleep != nil {
		g.sleep(d)
		return
	}
	time.Sleep(d)
}

func (g *GnomeTerminal) clockNow() time.Time {
	if g.now != nil {
		return g.now()
	}
	return time.Now()
}

func (g *GnomeTerminal) nameHasOwner(name string) bool {
	owned, err := NameHasOwner(g.caller(), name)
	if err != nil {
		logging.Log.Debugw("NameHasOwner query failed", "name", name, "error", err)
		return false
	}
	return owned
}

// findServer returns the first existing gnome-terminal-server path.
func (g *GnomeTerminal) findServer() string {
	paths := g.serverPaths
	if len(paths) == 0 {
		paths = gnomeServerPaths
	}
	exists := g.fileExists
	if exists == nil {
		exists = func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		}
	}
	for _, path := range paths {
		if exists(path) {
			return path
		}
	}
	return ""
}

func (g *GnomeTerminal) spawnServer(name string, args ...string) error {
	if g.startServer != nil {
		return g.startServer(name, args...)
	}
	return exec.Command(name, args...).Start()
}

// registerAppID claims appID on the session bus via gnome-terminal-server.
// Returns nil once the name has an owner. If the name is already owned
// (another envlauncher window is open) nothing is spawned.
func (g *GnomeTerminal) registerAppID(appID string) error {
	if g.nameHasOwner(appID) {
		return nil // вече е регистриран
	}

	server := g.findServer()
	if server == "" {
		return errServerNotFound
	}

	args := []string{"--app-id", appID}
	if os.Getenv("XDG_CURRENT_DESKTOP") == "KDE" {
		// Class and name determine grouping and icon in KDE.
		args = append(args, "--class", appID, "--name", appID)
	}
	if err := g.spawnServer(server, args...); err != nil {
		return err
	}

	// Sleep comes first: the server needs at least one interval before
	// the name can possibly be claimed, and the timeout check must not
	// keep the loop from polling at least once.
	deadline := g.clockNow().Add(registerTimeout)
	for {
		g.clockSleep(registerPollInterval)
		if g.nameHasOwner(appID) {
			return nil
		}
		if g.clockNow().After(deadline) {
			return errRegisterTimeout
		}
	}
}

func (g *GnomeTerminal) args(scriptPath string, registered bool) []string {
	idFlag := "--app-id"
	if !registered {
		idFlag = "--class"
	}
	args := append([]string{}, g.extraArgs...)
	return append(args,
		idFlag, AppID,
		"--", "bash", "--rcfile", scriptPath,
	)
}

func (g *GnomeTerminal) Launch(scriptPath string) (Handle, error) {
	registered := true
	if err := g.registerAppID(AppID); err != nil {
		logging.Log.Debugw("app-id registration failed, using --class fallback", "error", err)
		registered = false
	}
	return startProcess(g.Command(), g.args(scriptPath, registered)...)
}
