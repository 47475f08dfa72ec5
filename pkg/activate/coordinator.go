package activate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lvim-tech/envlauncher/internal/logging"
	"github.com/lvim-tech/envlauncher/pkg/config"
	"github.com/lvim-tech/envlauncher/pkg/terminal"
)

// Coordinator prepares and launches virtual environment sessions.
type Coordinator struct {
	Settings *config.Settings
	Paths    *config.DataPaths

	// resolve е test seam; nil използва terminal.Resolve
	resolve func(requested string) (terminal.Launcher, error)
}

// NewCoordinator locates the desktop entry file through the XDG data
// paths and loads the settings from it.
func NewCoordinator() (*Coordinator, error) {
	paths := config.NewDataPaths()
	desktopPath, err := paths.FindResourcePath("applications", config.DesktopFileName)
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(desktopPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &Coordinator{Settings: settings, Paths: paths}, nil
}

func (c *Coordinator) resolveLauncher(requested string) (terminal.Launcher, error) {
	if c.resolve != nil {
		return c.resolve(requested)
	}
	return terminal.Resolve(requested)
}

// Activate launches a terminal emulator running the activation script.
// The returned handle (possibly nil for bus-driven terminals) lets direct
// callers wait for the spawned shell; desktop launches ignore it.
//
// The generated temp file deletes itself as its last statement. On any
// failure before the launch succeeds the coordinator removes the file
// instead; an already-removed file is an expected race, not an error.
func (c *Coordinator) Activate(activateScript, workingDir string) (terminal.Handle, error) {
	tmp, err := os.CreateTemp("", "envlauncher-*.sh")
	if err != nil {
		return nil, fmt.Errorf("failed to create activation script: %w", err)
	}
	scriptPath := tmp.Name()

	handle, err := c.launchWith(tmp, activateScript, workingDir)
	if err != nil {
		c.removeScript(scriptPath)
		return nil, err
	}
	return handle, nil
}

func (c *Coordinator) launchWith(tmp *os.File, activateScript, workingDir string) (terminal.Handle, error) {
	opt := ScriptOptions{
		ActivateScript:   activateScript,
		WorkingDir:       workingDir,
		Rcfile:           c.Settings.Rcfile(),
		SelfDestructPath: tmp.Name(),
	}

	if subdir, filename, ok := c.Settings.BannerResource(); ok {
		bannerPath, err := c.Paths.FindResourcePath(subdir, filename)
		if err != nil {
			tmp.Close()
			return nil, err
		}
		opt.BannerPath = bannerPath
	}

	if _, err := tmp.WriteString(BuildScript(opt)); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write activation script: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write activation script: %w", err)
	}

	launcher, err := c.resolveLauncher(c.Settings.TerminalEmulator())
	if err != nil {
		return nil, err
	}

	logging.Log.Debugw("launching terminal",
		"terminal", launcher.Command(),
		"script", tmp.Name(),
		"workdir", workingDir)

	return launcher.Launch(tmp.Name())
}

// removeScript cleans up the temp file after a failed launch. ErrNotExist
// is absorbed: the self-delete statement may already have run.
func (c *Coordinator) removeScript(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Log.Warnw("failed to remove activation script", "path", path, "error", err)
	}
}
