package terminal

// Xfce4Terminal is the default terminal emulator for the Xfce desktop.
type Xfce4Terminal struct {
	extraArgs []string
}

func init() {
	Register(&Xfce4Terminal{})
}

func (x *Xfce4Terminal) Command() string {
	return "xfce4-terminal"
}

func (x *Xfce4Terminal) Available() bool {
	return commandExists(x.Command())
}

func (x *Xfce4Terminal) SetArgs(args []string) {
	x.extraArgs = args
}

func (x *Xfce4Terminal) args(scriptPath string) []string {
	args := append([]string{}, x.extraArgs...)
	return append(args,
		"--startup-id", AppID,
		"--icon", AppID,
		"--initial-title", "EnvLauncher",
		"-x", "bash", "--rcfile", scriptPath,
	)
}

func (x *Xfce4Terminal) Launch(scriptPath string) (Handle, error) {
	return startProcess(x.Command(), x.args(scriptPath)...)
}
