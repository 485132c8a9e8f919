package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var browseDevTools bool

var browseCmd = &cobra.Command{
	Use:   "browse [service]",
	Short: "Open the desktop window",
	Long: `Open the Protodesk window.

The optional service names the sidebar entry shown first. Unknown names fall
back to mail.

Examples:
  protodesk browse            # Open Proton Mail
  protodesk browse calendar   # Open Proton Calendar`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseDevTools, "devtools", false, "enable the web inspector")
	rootCmd.Flags().BoolVar(&browseDevTools, "devtools", false, "enable the web inspector")
	rootCmd.AddCommand(browseCmd)
}

// exitError carries a non-zero GUI exit code through cobra.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("protodesk exited with code %d", e.code)
}

func exitCode(err error) (int, bool) {
	var e exitError
	if errors.As(err, &e) {
		return e.code, true
	}
	return 0, false
}

func runBrowse(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if guiRunner == nil {
		return fmt.Errorf("graphical shell not available in this build")
	}

	opts := GUIOptions{DevTools: browseDevTools}
	if len(args) > 0 {
		opts.Service = args[0]
	}

	if code := guiRunner(a, opts); code != 0 {
		return exitError{code: code}
	}
	return nil
}
