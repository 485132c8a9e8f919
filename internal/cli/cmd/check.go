package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nemuelw/protodesk/internal/cli/styles"
	"github.com/nemuelw/protodesk/internal/domain/allowlist"
)

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Show whether a link stays in the app or opens in the browser",
	Long: `Classify a URL the way the window does when a link asks for a new window.

Internal links load in the view; external ones go to the default browser.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := a.Theme

	raw := args[0]
	host := allowlist.HostOf(raw)
	decision := allowlist.Classify(host, a.Allowed)

	if decision == allowlist.External {
		fmt.Fprintf(out, "%s %s %s\n",
			theme.WarningStyle.Render(styles.IconGlobe),
			theme.Badge.Render(decision.String()),
			theme.Subtle.Render(hostOrNone(host)))
		return nil
	}

	owner := "other-internal"
	if id, ok := a.Catalog.ServiceForHost(host); ok {
		owner = string(id)
	}
	fmt.Fprintf(out, "%s %s %s %s\n",
		theme.SuccessStyle.Render(styles.IconLock),
		theme.Badge.Render(decision.String()),
		theme.Subtle.Render(host),
		theme.Highlight.Render(owner))
	return nil
}

func hostOrNone(host string) string {
	if host == "" {
		return "(no host)"
	}
	return host
}
