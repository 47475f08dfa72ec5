package terminal

type XTerm struct {
	extraArgs []string
}

func init() {
	Register(&XTerm{})
}

func (x *XTerm) Command() string {
	return "xterm"
}

func (x *XTerm) Available() bool {
	return commandExists(x.Command())
}

func (x *XTerm) SetArgs(args []string) {
	x.extraArgs = args
}

func (x *XTerm) args(scriptPath string) []string {
	args := append([]string{}, x.extraArgs...)
	return append(args,
		"-class", AppID,
		"-n", AppID, // defines the iconName resource
		"-e", "bash", "--rcfile", scriptPath,
	)
}

func (x *XTerm) Launch(scriptPath string) (Handle, error) {
	return startProcess(x.Command(), x.args(scriptPath)...)
}
