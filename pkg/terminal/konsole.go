package terminal

import "os"

// Konsole is the default terminal emulator in the KDE desktop
// environment.
type Konsole struct {
	extraArgs []string
}

func init() {
	Register(&Konsole{})
}

func (k *Konsole) Command() string {
	return "konsole"
}

func (k *Konsole) Available() bool {
	return commandExists(k.Command())
}

func (k *Konsole) SetArgs(args []string) {
	k.extraArgs = args
}

func (k *Konsole) args(scriptPath string) []string {
	args := append([]string{}, k.extraArgs...)
	if os.Getenv("XDG_CURRENT_DESKTOP") == "KDE" {
		// Set WM_CLASSNAME in KDE.
		args = append(args, "--name", AppID)
	}
	return append(args,
		"-p", "Icon="+AppID,
		"-p", "LocalTabTitleFormat=EnvLauncher : %D : %n",
		"-e", "bash", "--rcfile", scriptPath,
	)
}

func (k *Konsole) Launch(scriptPath string) (Handle, error) {
	return startProcess(k.Command(), k.args(scriptPath)...)
}
