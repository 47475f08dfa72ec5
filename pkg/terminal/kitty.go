package terminal

type Kitty struct {
	extraArgs []string
}

func init() {
	Register(&Kitty{})
}

func (k *Kitty) Command() string {
	return "kitty"
}

func (k *Kitty) Available() bool {
	return commandExists(k.Command())
}

func (k *Kitty) SetArgs(args []string) {
	k.extraArgs = args
}

func (k *Kitty) args(scriptPath string) []string {
	args := append([]string{}, k.extraArgs...)
	return append(args,
		"--class", AppID,
		"bash", "--rcfile", scriptPath,
	)
}

func (k *Kitty) Launch(scriptPath string) (Handle, error) {
	return startProcess(k.Command(), k.args(scriptPath)...)
}
