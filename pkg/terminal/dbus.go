package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// busCallTimeout bounds every individual session bus call.
const busCallTimeout = 5 * time.Second

// Caller performs session bus method calls. The production implementation
// shells out to dbus-send; tests substitute in-memory stubs so protocol
// logic never depends on a real bus.
type Caller interface {
	Call(dest, objectPath, method string, contents ...string) ([]byte, error)
}

// DBusSend is a Caller backed by the dbus-send command line tool.
type DBusSend struct {
	Timeout time.Duration // zero value means busCallTimeout
}

// args построява argument vector за dbus-send
func (d DBusSend) args(dest, objectPath, method string, contents ...string) []string {
	args := []string{
		"--session",
		"--dest=" + dest,
		"--print-reply=literal",
		"--type=method_call",
		objectPath,
		method,
	}
	return append(args, contents...)
}

// Call invokes a method over the session bus and returns the literal
// reply. Errors carry the tool's stderr so callers can match on specific
// bus-side failures.
func (d DBusSend) Call(dest, objectPath, method string, contents ...string) ([]byte, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = busCallTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "dbus-send", d.args(dest, objectPath, method, contents...)...)
	reply, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("dbus-send %s %s: %w: %s",
				objectPath, method, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("dbus-send %s %s: %w", objectPath, method, err)
	}
	return reply, nil
}

// NameHasOwner проверява дали име има owner на session bus
func NameHasOwner(bus Caller, name string) (bool, error) {
	reply, err := bus.Call(
		"org.freedesktop.DBus",
		"/",
		"org.freedesktop.DBus.NameHasOwner",
		"string:"+name,
	)
	if err != nil {
		return false, err
	}
	return bytes.Contains(bytes.ToLower(reply), []byte("true")), nil
}
