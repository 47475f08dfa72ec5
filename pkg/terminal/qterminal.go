package terminal

import "github.com/lvim-tech/envlauncher/pkg/utils"

// QTerminal is the default terminal emulator for the LXQt desktop.
type QTerminal struct {
	extraArgs []string
}

func init() {
	Register(&QTerminal{})
}

func (q *QTerminal) Command() string {
	return "qterminal"
}

func (q *QTerminal) Available() bool {
	return commandExists(q.Command())
}

func (q *QTerminal) SetArgs(args []string) {
	q.extraArgs = args
}

func (q *QTerminal) args(scriptPath string) []string {
	args := append([]string{}, q.extraArgs...)
	return append(args,
		"--name", AppID,
		// qterminal -e взима цялата команда като един string
		"-e", "bash --rcfile "+utils.ShellQuote(scriptPath),
	)
}

func (q *QTerminal) Launch(scriptPath string) (Handle, error) {
	return startProcess(q.Command(), q.args(scriptPath)...)
}
