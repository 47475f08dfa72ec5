package terminal

type CoolRetroTerm struct {
	extraArgs []string
}

func init() {
	Register(&CoolRetroTerm{})
}

func (c *CoolRetroTerm) Command() string {
	return "cool-retro-term"
}

func (c *CoolRetroTerm) Available() bool {
	return commandExists(c.Command())
}

func (c *CoolRetroTerm) SetArgs(args []string) {
	c.extraArgs = args
}

func (c *CoolRetroTerm) args(scriptPath string) []string {
	args := append([]string{}, c.extraArgs...)
	return append(args, "-e", "bash", "--rcfile", scriptPath)
}

func (c *CoolRetroTerm) Launch(scriptPath string) (Handle, error) {
	return startProcess(c.Command(), c.args(scriptPath)...)
}
