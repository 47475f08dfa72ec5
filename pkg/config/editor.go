package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lvim-tech/envlauncher/internal/logging"
	"github.com/lvim-tech/envlauncher/pkg/terminal"
	"github.com/lvim-tech/envlauncher/pkg/utils"
)

// DesktopFileName е името на desktop entry файла
const DesktopFileName = terminal.AppID + ".desktop"

// OpenSettingsEditor opens the user's copy of the desktop entry file in a
// text editor. The system copy (e.g. under /usr/local/share/applications)
// is never opened directly; a user-writable copy is made in the XDG data
// home first. With resetAll the user copy is discarded and recreated from
// the system one.
func OpenSettingsEditor(paths *DataPaths, resetAll bool) error {
	desktopHome := paths.MakeHomePath("applications", DesktopFileName)

	if resetAll {
		if err := os.Remove(desktopHome); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
	}

	if _, err := os.Stat(desktopHome); os.IsNotExist(err) {
		desktopPath, err := paths.FindResourcePath("applications", DesktopFileName)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(desktopHome), 0755); err != nil {
			return err
		}
		if err := copyFile(desktopPath, desktopHome); err != nil {
			return fmt.Errorf("failed to copy desktop entry: %w", err)
		}
	}

	// Отвори в текстов редактор (ще бъде заменено с GUI)
	var args []string
	switch {
	case utils.CommandExists("gedit"):
		args = []string{"gedit", "--standalone", "--class", terminal.AppID, desktopHome}
	case utils.CommandExists("kate"):
		args = []string{"kate", "--new", "--desktopfile", terminal.AppID, desktopHome}
	case utils.CommandExists("featherpad"):
		args = []string{"featherpad", "--standalone", desktopHome}
	default:
		return fmt.Errorf("no text editor found (gedit, kate, featherpad)")
	}

	logging.Log.Debugw("opening settings editor", "args", args)
	return utils.StartDetachedProcess(args[0], args[1:]...)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
