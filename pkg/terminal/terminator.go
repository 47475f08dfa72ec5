package terminal

type Terminator struct {
	extraArgs []string
}

func init() {
	Register(&Terminator{})
}

func (t *Terminator) Command() string {
	return "terminator"
}

func (t *Terminator) Available() bool {
	return commandExists(t.Command())
}

func (t *Terminator) SetArgs(args []string) {
	t.extraArgs = args
}

func (t *Terminator) args(scriptPath string) []string {
	args := append([]string{}, t.extraArgs...)
	return append(args,
		"--name", AppID,
		"--icon", AppID,
		"--no-dbus", // за чисто grouping в dash/taskbar
		"-x", "bash", "--rcfile", scriptPath,
	)
}

func (t *Terminator) Launch(scriptPath string) (Handle, error) {
	return startProcess(t.Command(), t.args(scriptPath)...)
}
