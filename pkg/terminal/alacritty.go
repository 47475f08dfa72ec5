package terminal

type Alacritty struct {
	extraArgs []string
}

func init() {
	Register(&Alacritty{})
}

func (a *Alacritty) Command() string {
	return "alacritty"
}

func (a *Alacritty) Available() bool {
	return commandExists(a.Command())
}

func (a *Alacritty) SetArgs(args []string) {
	a.extraArgs = args
}

func (a *Alacritty) args(scriptPath string) []string {
	args := append([]string{}, a.extraArgs...)
	return append(args,
		"--class", AppID+","+AppID,
		"--title", "EnvLauncher",
		"-e", "bash", "--rcfile", scriptPath,
	)
}

func (a *Alacritty) Launch(scriptPath string) (Handle, error) {
	return startProcess(a.Command(), a.args(scriptPath)...)
}
