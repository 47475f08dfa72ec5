package terminal

import "errors"

// ErrNoTerminal се връща когато няма наличен terminal emulator
var ErrNoTerminal = errors.New("no supported terminal emulator found")

var registry = make(map[string]Launcher)

// preferenceOrder определя fallback реда. Desktop-environment defaults са
// първи (най-вероятно предварително инсталирани), niche терминали последни.
var preferenceOrder = []string{
	"gnome-terminal", // GNOME default
	"terminator",
	"konsole", // KDE default
	"guake",
	"yakuake",
	"alacritty",
	"kitty",
	"xfce4-terminal", // XFCE default
	"qterminal",      // LXQt default
	"xterm",
	"sakura",
	"cool-retro-term",
}

// Register добавя launcher в registry
func Register(l Launcher) {
	registry[l.Command()] = l
}

// GetByName връща launcher по име на команда
func GetByName(name string) Launcher {
	return registry[name]
}

// Supported връща имената на поддържаните терминали в preference ред
func Supported() []string {
	out := make([]string, len(preferenceOrder))
	copy(out, preferenceOrder)
	return out
}

// Detect връща наличните на системата терминали в preference ред
func Detect() []string {
	var available []string
	for _, name := range preferenceOrder {
		if l := registry[name]; l != nil && l.Available() {
			available = append(available, name)
		}
	}
	return available
}

// Resolve returns the launcher for the requested command if it is known
// and installed, otherwise the first available launcher in preference
// order. ErrNoTerminal is returned when nothing usable is installed; the
// caller must not attempt a launch in that case.
func Resolve(requested string) (Launcher, error) {
	if requested != "" {
		if l := registry[requested]; l != nil && l.Available() {
			return l, nil
		}
	}
	for _, name := range preferenceOrder {
		if l := registry[name]; l != nil && l.Available() {
			return l, nil
		}
	}
	return nil, ErrNoTerminal
}
