// Package cmd provides Cobra CLI commands for protodesk.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nemuelw/protodesk/internal/cli"
	"github.com/nemuelw/protodesk/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	guiRunner GUIRunner
	rootCmd   = &cobra.Command{
		Use:   "protodesk",
		Short: "Unofficial desktop app for Proton",
		Long: `Protodesk - an unofficial desktop shell for Proton Mail, Calendar and Drive.

Proton pages stay inside the window; every other link opens in your default
browser. Downloads ask where to save and notify once when they finish.

Run 'protodesk' or 'protodesk browse' to open the window, or use the
subcommands to inspect the service catalog, the allowlist, configuration and
download history.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(buildInfo)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, nil)
		},
	}
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if code, ok := exitCode(err); ok {
			return code
		}
		return 1
	}
	return 0
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// GUIRunner starts the graphical shell and returns its exit code.
type GUIRunner func(app *cli.App, opts GUIOptions) int

// GUIOptions are the browse flags.
type GUIOptions struct {
	Service  string
	DevTools bool
}

// SetGUIRunner installs the function the browse command runs. main.go owns
// the GTK thread, so the runner lives there.
func SetGUIRunner(r GUIRunner) {
	guiRunner = r
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
