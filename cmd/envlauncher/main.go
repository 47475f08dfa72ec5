// envlauncher opens a terminal emulator with an activated Python virtual
// environment. It is normally started from a desktop shell's application
// menu through the actions in its desktop entry file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/envlauncher/internal/logging"
	"github.com/lvim-tech/envlauncher/pkg/activate"
	"github.com/lvim-tech/envlauncher/pkg/config"
	"github.com/lvim-tech/envlauncher/pkg/terminal"
	"github.com/lvim-tech/envlauncher/pkg/utils"
)

const version = "0.2.0"

var (
	activateFlag  string
	directoryFlag string
	configureFlag bool
	resetAllFlag  bool
	versionFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "envlauncher",
	Short: "Launch a terminal emulator with an activated Python virtual environment",
	Long: `envlauncher opens a terminal emulator window, activates a Python
virtual environment in it, and registers launch actions in the desktop
shell's application menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&activateFlag, "activate", "", "environment activation script")
	rootCmd.Flags().StringVar(&directoryFlag, "directory", "", "working directory path")
	rootCmd.Flags().BoolVar(&configureFlag, "configure", false, "configure envlauncher settings")
	rootCmd.Flags().BoolVar(&resetAllFlag, "reset-all", false, "reset all settings")
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "display envlauncher version and exit")
}

// validateFlags enforces the same mutual exclusion rules the desktop
// entry Exec lines rely on.
func validateFlags() error {
	if activateFlag != "" && configureFlag {
		return fmt.Errorf("argument --activate cannot be used with --configure")
	}
	if directoryFlag != "" && activateFlag == "" {
		return fmt.Errorf("argument --activate is required when using --directory")
	}
	if resetAllFlag && !configureFlag {
		return fmt.Errorf("argument --configure is required when using --reset-all")
	}
	if versionFlag && (activateFlag != "" || configureFlag) {
		return fmt.Errorf("argument --version cannot be used with other arguments")
	}
	return nil
}

// applyTerminalOverrides прилага [terminals.*] args от config
func applyTerminalOverrides(cfg *config.Config) {
	for name := range cfg.Terminals {
		launcher := terminal.GetByName(name)
		if launcher == nil {
			logging.Log.Warnw("config overrides unknown terminal", "terminal", name)
			continue
		}
		override, err := cfg.TerminalOverride(name)
		if err != nil {
			logging.Log.Warnw("invalid terminal override", "terminal", name, "error", err)
			continue
		}
		launcher.SetArgs(override.Args)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	if versionFlag {
		fmt.Println(version)
		return nil
	}

	cfg := config.Get()
	if err := logging.Init(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	switch {
	case activateFlag != "":
		applyTerminalOverrides(cfg)
		coordinator, err := activate.NewCoordinator()
		if err != nil {
			return err
		}
		if _, err := coordinator.Activate(activateFlag, directoryFlag); err != nil {
			return err
		}
		return nil

	case configureFlag:
		return config.OpenSettingsEditor(config.NewDataPaths(), resetAllFlag)

	default:
		return cmd.Help()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Log.Errorw("envlauncher failed", "error", err)
		// Desktop launches have no terminal; the notification is the
		// only thing the user will see.
		utils.ShowErrorNotificationWithConfig(&config.Get().Notifications, "EnvLauncher", err.Error())
		os.Exit(1)
	}
}
