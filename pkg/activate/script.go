// Package activate builds and launches virtual environment activation
// sessions: it generates a one-shot bash rcfile, writes it to a
// self-deleting temp file, and hands it to the resolved terminal
// emulator.
package activate

import (
	"strings"

	"github.com/lvim-tech/envlauncher/pkg/utils"
)

// ScriptOptions describes one activation script.
type ScriptOptions struct {
	ActivateScript   string // venv activation script, винаги source-нат
	WorkingDir       string // optional
	Rcfile           string // optional user rc файл (~/.bashrc)
	BannerPath       string // optional ASCII banner файл
	SelfDestructPath string // пътят на самия rcfile
}

// BuildScript returns the rcfile text for one launch. The statement order
// is fixed, and the script removes itself as its last statement so the
// success path needs no cleanup from our side. Every path is quoted
// before insertion; paths come from desktop entries and CLI arguments and
// must never be able to smuggle in extra shell statements.
func BuildScript(opt ScriptOptions) string {
	var lines []string

	// First, change directory so relative paths reference new location.
	if opt.WorkingDir != "" {
		lines = append(lines, "cd "+utils.ShellQuote(opt.WorkingDir))
	}

	// Execute user rcfile (~/.bashrc or other).
	if opt.Rcfile != "" {
		lines = append(lines, "source "+utils.ShellQuote(opt.Rcfile))
	}

	// Activate the environment!
	lines = append(lines, "source "+utils.ShellQuote(opt.ActivateScript))

	// Display the ASCII banner.
	if opt.BannerPath != "" {
		lines = append(lines, "cat "+utils.ShellQuote(opt.BannerPath))
	}

	// The script removes itself when executed, so there is no window
	// where a cleanup pass could race the shell still reading it.
	lines = append(lines, "rm "+utils.ShellQuote(opt.SelfDestructPath))

	// Blank entry to assure trailing "\n".
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}
