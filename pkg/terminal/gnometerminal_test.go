package terminal

import (
	"errors"
	"slices"
	"testing"
	"time"
)

const nameHasOwnerKey = "/ org.freedesktop.DBus.NameHasOwner"

// fakeClock advances only when the launcher sleeps, so timeout behavior
// is tested without wall-clock delays.
type fakeClock struct {
	now    time.Time
	sleeps int
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps++
	c.now = c.now.Add(d)
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestGnomeTerminal(bus Caller, clk *fakeClock, serverPaths []string) (*GnomeTerminal, *int) {
	spawns := 0
	g := &GnomeTerminal{
		bus:         bus,
		sleep:       clk.Sleep,
		now:         clk.Now,
		serverPaths: serverPaths,
		startServer: func(name string, args ...string) error {
			spawns++
			return nil
		},
		fileExists: func(path string) bool {
			return slices.Contains(serverPaths, path)
		},
	}
	return g, &spawns
}

func TestRegisterAppIDAlreadyOwned(t *testing.T) {
	// Another envlauncher window already claimed the name; registration
	// must be a no-op with zero spawns.
	bus := &stubCaller{replies: map[string][]byte{nameHasOwnerKey: []byte("boolean true")}}
	clk := &fakeClock{}
	g, spawns := newTestGnomeTerminal(bus, clk, []string{"/usr/libexec/gnome-terminal-server"})

	if err := g.registerAppID(AppID); err != nil {
		t.Fatalf("registerAppID returned error: %v", err)
	}
	if *spawns != 0 {
		t.Errorf("expected zero server spawns, got %d", *spawns)
	}
	if clk.sleeps != 0 {
		t.Errorf("expected no polling, got %d sleeps", clk.sleeps)
	}
}

func TestRegisterAppIDServerNotFound(t *testing.T) {
	bus := &stubCaller{replies: map[string][]byte{nameHasOwnerKey: []byte("boolean false")}}
	clk := &fakeClock{}
	g, spawns := newTestGnomeTerminal(bus, clk, nil)

	if err := g.registerAppID(AppID); !errors.Is(err, errServerNotFound) {
		t.Fatalf("expected errServerNotFound, got %v", err)
	}
	if *spawns != 0 {
		t.Errorf("expected zero spawns without a server binary, got %d", *spawns)
	}
}

func TestRegisterAppIDTimeout(t *testing.T) {
	// A bus that never reports ownership must produce a timeout after
	// roughly one second of (fake) polling, not hang.
	bus := &stubCaller{replies: map[string][]byte{nameHasOwnerKey: []byte("boolean false")}}
	clk := &fakeClock{}
	g, spawns := newTestGnomeTerminal(bus, clk, []string{"/usr/libexec/gnome-terminal-server"})

	err := g.registerAppID(AppID)
	if !errors.Is(err, errRegisterTimeout) {
		t.Fatalf("expected errRegisterTimeout, got %v", err)
	}
	if *spawns != 1 {
		t.Errorf("expected one server spawn, got %d", *spawns)
	}

	elapsed := clk.now.Sub(time.Time{})
	if elapsed < registerTimeout {
		t.Errorf("gave up before the deadline: %v", elapsed)
	}
	if elapsed > registerTimeout+2*registerPollInterval {
		t.Errorf("polled past the deadline: %v", elapsed)
	}
}

func TestRegisterAppIDSucceedsWhilePolling(t *testing.T) {
	// Ownership appears on the third poll.
	polls := 0
	bus := callerFunc(func(dest, objectPath, method string, contents ...string) ([]byte, error) {
		polls++
		if polls >= 4 { // first call is the pre-spawn check
			return []byte("boolean true"), nil
		}
		return []byte("boolean false"), nil
	})
	clk := &fakeClock{}
	g, spawns := newTestGnomeTerminal(bus, clk, []string{"/usr/libexec/gnome-terminal-server"})

	if err := g.registerAppID(AppID); err != nil {
		t.Fatalf("registerAppID returned error: %v", err)
	}
	if *spawns != 1 {
		t.Errorf("expected one server spawn, got %d", *spawns)
	}
	if clk.sleeps != 3 {
		t.Errorf("expected 3 polling sleeps, got %d", clk.sleeps)
	}
}

func TestGnomeTerminalArgsFallback(t *testing.T) {
	g := &GnomeTerminal{}

	registered := g.args(testScript, true)
	if !slices.Equal(registered, []string{"--app-id", AppID, "--", "bash", "--rcfile", testScript}) {
		t.Errorf("registered args = %v", registered)
	}

	// Registration failure swaps in the legacy window-class flag; the
	// launch itself must still go ahead.
	fallback := g.args(testScript, false)
	if !slices.Equal(fallback, []string{"--class", AppID, "--", "bash", "--rcfile", testScript}) {
		t.Errorf("fallback args = %v", fallback)
	}
}

// callerFunc adapts a function to the Caller interface.
type callerFunc func(dest, objectPath, method string, contents ...string) ([]byte, error)

func (f callerFunc) Call(dest, objectPath, method string, contents ...string) ([]byte, error) {
	return f(dest, objectPath, method, contents...)
}
