package terminal

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lvim-tech/envlauncher/pkg/utils"
)

const (
	yakuakeDest       = "org.kde.yakuake"
	yakuakeMainWindow = "/yakuake/MainWindow_1"
)

// sessionIDPattern matches the typed-integer notation dbus-send uses in
// literal replies, e.g. "   int32 7".
var sessionIDPattern = regexp.MustCompile(`(?:int16|int32|int64) (\d+)`)

// Yakuake drives the KDE drop-down terminal entirely over the session
// bus: open a tab, run the activation command in it, title the tab, then
// make sure the window is up and focused. Every call is bounded by
// busCallTimeout and any unexpected failure aborts the sequence.
type Yakuake struct {
	extraArgs []string // не се използват от bus транспорта

	bus Caller // test seam
}

func init() {
	Register(&Yakuake{})
}

func (y *Yakuake) Command() string {
	return "yakuake"
}

func (y *Yakuake) Available() bool {
	return commandExists(y.Command())
}

func (y *Yakuake) SetArgs(args []string) {
	y.extraArgs = args
}

func (y *Yakuake) caller() Caller {
	if y.bus != nil {
		return y.bus
	}
	return DBusSend{}
}

// call invokes a method on the yakuake service. Unqualified method names
// get the org.kde.yakuake interface; fully qualified names pass through.
func (y *Yakuake) call(objectPath, method string, contents ...string) ([]byte, error) {
	if !strings.Contains(method, ".") {
		method = yakuakeDest + "." + method
	}
	return y.caller().Call(yakuakeDest, objectPath, method, contents...)
}

// parseSessionID извлича session id от addSession reply
func parseSessionID(reply []byte) (int, error) {
	matched := sessionIDPattern.FindSubmatch(reply)
	if matched == nil {
		return 0, fmt.Errorf("unable to get yakuake tab session-id: %q", reply)
	}
	return strconv.Atoi(string(matched[1]))
}

// isVisible reports whether the drop-down console is currently shown.
// Before the window has ever been opened the MainWindow_1 object does not
// exist on the bus; that specific error means "not visible", every other
// error is real.
func (y *Yakuake) isVisible() (bool, error) {
	reply, err := y.call(
		yakuakeMainWindow,
		"org.freedesktop.DBus.Properties.Get",
		"string:org.qtproject.Qt.QWidget",
		"string:visible",
	)
	if err != nil {
		if strings.Contains(err.Error(), "No such object path '"+yakuakeMainWindow+"'") {
			return false, nil
		}
		return false, err
	}
	return bytes.Contains(reply, []byte("boolean true")), nil
}

// toggleWindow превключва console-а open/closed
func (y *Yakuake) toggleWindow() error {
	_, err := y.call("/yakuake/window", "toggleWindowState")
	return err
}

func (y *Yakuake) Launch(scriptPath string) (Handle, error) {
	// Create a new tab and get its session-id.
	reply, err := y.call("/yakuake/sessions", "addSession")
	if err != nil {
		return nil, fmt.Errorf("yakuake addSession: %w", err)
	}
	session, err := parseSessionID(reply)
	if err != nil {
		return nil, err
	}

	// Start the virtual environment in the new tab.
	command := "clear;source " + utils.ShellQuote(scriptPath)
	if _, err := y.call(
		"/yakuake/sessions",
		"runCommandInTerminal",
		"int32:"+strconv.Itoa(session),
		"string:"+command,
	); err != nil {
		return nil, fmt.Errorf("yakuake runCommandInTerminal: %w", err)
	}

	// Set the new tab's title.
	if _, err := y.call(
		"/yakuake/tabs",
		"setTabTitle",
		"int32:"+strconv.Itoa(session),
		"string:EnvLauncher",
	); err != nil {
		return nil, fmt.Errorf("yakuake setTabTitle: %w", err)
	}

	visible, err := y.isVisible()
	if err != nil {
		return nil, err
	}
	if visible {
		// Yakuake has no primitive to focus an already visible window,
		// so close it first and reopen to transfer input focus.
		// Workaround until something better exists upstream.
		if err := y.toggleWindow(); err != nil {
			return nil, err
		}
	}
	if err := y.toggleWindow(); err != nil {
		return nil, err
	}

	// The tab lives in the yakuake process; nothing to wait on.
	return nil, nil
}
