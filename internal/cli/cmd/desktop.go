package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nemuelw/protodesk/assets"
	"github.com/nemuelw/protodesk/internal/application/usecase"
	"github.com/nemuelw/protodesk/internal/cli/styles"
	"github.com/nemuelw/protodesk/internal/infrastructure/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage desktop integration",
	Long: `Install or remove Protodesk's application menu entry.

Subcommands:
  install  - Install the desktop file and icon
  remove   - Remove them
  status   - Show what is installed`,
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install desktop file and icon",
	Long: `Install protodesk.desktop to the user's applications directory and the
SVG icon to the hicolor theme.

Location: $XDG_DATA_HOME/applications/protodesk.desktop
         (typically ~/.local/share/applications/protodesk.desktop)

This command is idempotent - safe to run multiple times.`,
	Args: cobra.NoArgs,
	RunE: runDesktopInstall,
}

var desktopRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove desktop file and icon",
	Args:  cobra.NoArgs,
	RunE:  runDesktopRemove,
}

var desktopStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show desktop integration status",
	Args:  cobra.NoArgs,
	RunE:  runDesktopStatus,
}

func init() {
	rootCmd.AddCommand(desktopCmd)
	desktopCmd.AddCommand(desktopInstallCmd)
	desktopCmd.AddCommand(desktopRemoveCmd)
	desktopCmd.AddCommand(desktopStatusCmd)
}

func runDesktopInstall(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := a.Theme

	uc := usecase.NewInstallDesktopUseCase(desktop.New())
	result, err := uc.Execute(a.Ctx, usecase.InstallDesktopInput{IconData: assets.LogoSVG})
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", theme.ErrorStyle.Render(styles.IconX), err.Error())
		return err
	}

	verb := "installed to"
	if result.WasDesktopExisting {
		verb = "updated at"
	}
	fmt.Fprintf(out, "%s Desktop file %s %s\n",
		theme.SuccessStyle.Render(styles.IconCheck), verb, theme.Highlight.Render(result.DesktopPath))

	if result.IconPath != "" {
		verb = "installed to"
		if result.WasIconExisting {
			verb = "updated at"
		}
		fmt.Fprintf(out, "%s Icon %s %s\n",
			theme.SuccessStyle.Render(styles.IconCheck), verb, theme.Highlight.Render(result.IconPath))
	}
	return nil
}

func runDesktopRemove(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := a.Theme

	uc := usecase.NewRemoveDesktopUseCase(desktop.New())
	result, err := uc.Execute(a.Ctx)
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", theme.ErrorStyle.Render(styles.IconX), err.Error())
		return err
	}

	if !result.WasDesktopInstalled && !result.WasIconInstalled {
		fmt.Fprintln(out, theme.Subtle.Render("Nothing to remove"))
		return nil
	}
	if result.WasDesktopInstalled {
		fmt.Fprintf(out, "%s Removed %s\n", theme.SuccessStyle.Render(styles.IconCheck), result.RemovedDesktopPath)
	}
	if result.WasIconInstalled {
		fmt.Fprintf(out, "%s Removed %s\n", theme.SuccessStyle.Render(styles.IconCheck), result.RemovedIconPath)
	}
	return nil
}

func runDesktopStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	status, err := desktop.New().GetStatus(a.Ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printStatusLine(out, a.Theme, "Desktop file", status.DesktopFileInstalled, status.DesktopFilePath)
	printStatusLine(out, a.Theme, "Icon", status.IconInstalled, status.IconFilePath)
	fmt.Fprintf(out, "%s Executable %s\n", a.Theme.Subtle.Render(styles.IconDesktop), status.ExecutablePath)
	return nil
}

func printStatusLine(out io.Writer, theme *styles.Theme, what string, installed bool, path string) {
	mark := theme.ErrorStyle.Render(styles.IconX)
	if installed {
		mark = theme.SuccessStyle.Render(styles.IconCheck)
	}
	fmt.Fprintf(out, "%s %s %s\n", mark, what, theme.Subtle.Render(path))
}
