package terminal

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

const (
	addSessionKey = "/yakuake/sessions org.kde.yakuake.addSession"
	runCommandKey = "/yakuake/sessions org.kde.yakuake.runCommandInTerminal"
	tabTitleKey   = "/yakuake/tabs org.kde.yakuake.setTabTitle"
	visibleKey    = "/yakuake/MainWindow_1 org.freedesktop.DBus.Properties.Get"
	toggleKey     = "/yakuake/window org.kde.yakuake.toggleWindowState"
)

func newYakuakeStub(visibleReply []byte) *stubCaller {
	return &stubCaller{replies: map[string][]byte{
		addSessionKey: []byte("   int32 7"),
		visibleKey:    visibleReply,
	}}
}

func TestParseSessionID(t *testing.T) {
	tests := []struct {
		reply string
		want  int
	}{
		{"   int32 7", 7},
		{"int32 42", 42},
		{"   int16 3", 3},
		{"   int64 123", 123},
	}
	for _, tt := range tests {
		got, err := parseSessionID([]byte(tt.reply))
		if err != nil {
			t.Errorf("parseSessionID(%q) returned error: %v", tt.reply, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSessionID(%q) = %d, want %d", tt.reply, got, tt.want)
		}
	}
}

func TestParseSessionIDNoMatch(t *testing.T) {
	if _, err := parseSessionID([]byte("   string hello")); err == nil {
		t.Error("expected parse error for reply without integer token")
	}
}

func TestYakuakeLaunchSequence(t *testing.T) {
	bus := newYakuakeStub([]byte("boolean false"))
	y := &Yakuake{bus: bus}

	if _, err := y.Launch(testScript); err != nil {
		t.Fatalf("Launch returned error: %v", err)
	}

	want := []string{addSessionKey, runCommandKey, tabTitleKey, visibleKey, toggleKey}
	if !slices.Equal(bus.calls, want) {
		t.Errorf("call sequence = %v, want %v", bus.calls, want)
	}

	if !slices.Equal(bus.contents[runCommandKey], []string{"int32:7", "string:clear;source " + testScript}) {
		t.Errorf("runCommandInTerminal contents = %v", bus.contents[runCommandKey])
	}
	if !slices.Equal(bus.contents[tabTitleKey], []string{"int32:7", "string:EnvLauncher"}) {
		t.Errorf("setTabTitle contents = %v", bus.contents[tabTitleKey])
	}
}

func TestYakuakeLaunchQuotesScriptPath(t *testing.T) {
	bus := newYakuakeStub([]byte("boolean false"))
	y := &Yakuake{bus: bus}

	if _, err := y.Launch("/tmp/my venv.sh"); err != nil {
		t.Fatalf("Launch returned error: %v", err)
	}
	got := bus.contents[runCommandKey][1]
	if got != "string:clear;source '/tmp/my venv.sh'" {
		t.Errorf("command not quoted: %q", got)
	}
}

func TestYakuakeRefocusesVisibleWindow(t *testing.T) {
	// An already visible window is hidden and reopened to transfer
	// input focus.
	bus := newYakuakeStub([]byte("boolean true"))
	y := &Yakuake{bus: bus}

	if _, err := y.Launch(testScript); err != nil {
		t.Fatalf("Launch returned error: %v", err)
	}

	toggles := 0
	for _, call := range bus.calls {
		if call == toggleKey {
			toggles++
		}
	}
	if toggles != 2 {
		t.Errorf("expected hide-then-reopen (2 toggles), got %d", toggles)
	}
}

func TestYakuakeMissingWindowObjectMeansHidden(t *testing.T) {
	// Before the window is first opened the MainWindow_1 object does
	// not exist; that error means "not visible", not failure.
	bus := newYakuakeStub(nil)
	bus.errs = map[string]error{
		visibleKey: errors.New("dbus-send: No such object path '/yakuake/MainWindow_1'"),
	}
	y := &Yakuake{bus: bus}

	if _, err := y.Launch(testScript); err != nil {
		t.Fatalf("Launch returned error: %v", err)
	}
	if bus.calls[len(bus.calls)-1] != toggleKey {
		t.Errorf("expected window toggle after missing-object reply, calls = %v", bus.calls)
	}
}

func TestYakuakeOtherVisibilityErrorsAreFatal(t *testing.T) {
	bus := newYakuakeStub(nil)
	bus.errs = map[string]error{
		visibleKey: errors.New("dbus-send: connection refused"),
	}
	y := &Yakuake{bus: bus}

	if _, err := y.Launch(testScript); err == nil {
		t.Error("expected visibility error to propagate")
	}
}

func TestYakuakeAbortsOnCallFailure(t *testing.T) {
	bus := newYakuakeStub([]byte("boolean false"))
	bus.errs = map[string]error{
		runCommandKey: errors.New("dbus-send: call failed"),
	}
	y := &Yakuake{bus: bus}

	_, err := y.Launch(testScript)
	if err == nil {
		t.Fatal("expected error from failing runCommandInTerminal")
	}
	if !strings.Contains(err.Error(), "runCommandInTerminal") {
		t.Errorf("error does not name the failing call: %v", err)
	}
	if slices.Contains(bus.calls, tabTitleKey) {
		t.Error("sequence continued past the failing call")
	}
}

func TestYakuakeBadSessionReplyIsFatal(t *testing.T) {
	bus := newYakuakeStub([]byte("boolean false"))
	bus.replies[addSessionKey] = []byte("garbage")
	y := &Yakuake{bus: bus}

	if _, err := y.Launch(testScript); err == nil {
		t.Error("expected error for unparseable addSession reply")
	}
}
