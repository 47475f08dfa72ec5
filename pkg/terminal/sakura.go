package terminal

type Sakura struct {
	extraArgs []string
}

func init() {
	Register(&Sakura{})
}

func (s *Sakura) Command() string {
	return "sakura"
}

func (s *Sakura) Available() bool {
	return commandExists(s.Command())
}

func (s *Sakura) SetArgs(args []string) {
	s.extraArgs = args
}

func (s *Sakura) args(scriptPath string) []string {
	args := append([]string{}, s.extraArgs...)
	return append(args,
		"--class", AppID,
		"--icon", AppID,
		"-e", "bash", "--rcfile", scriptPath,
	)
}

func (s *Sakura) Launch(scriptPath string) (Handle, error) {
	return startProcess(s.Command(), s.args(scriptPath)...)
}
