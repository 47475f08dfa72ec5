package terminal

import "github.com/lvim-tech/envlauncher/pkg/utils"

// Guake is a drop-down terminal for GNOME. It manages its own window, so
// the launch just asks the running instance for a new shown tab.
type Guake struct {
	extraArgs []string
}

func init() {
	Register(&Guake{})
}

func (g *Guake) Command() string {
	return "guake"
}

func (g *Guake) Available() bool {
	return commandExists(g.Command())
}

func (g *Guake) SetArgs(args []string) {
	g.extraArgs = args
}

func (g *Guake) args(scriptPath string) []string {
	args := append([]string{}, g.extraArgs...)
	return append(args,
		"--no-startup-script",
		"--new-tab", ".",
		"--show",
		"-e", "clear;source "+utils.ShellQuote(scriptPath),
	)
}

func (g *Guake) Launch(scriptPath string) (Handle, error) {
	return startProcess(g.Command(), g.args(scriptPath)...)
}
