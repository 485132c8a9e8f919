package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nemuelw/protodesk/internal/cli/styles"
)

var downloadsLimit int

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "List recent download outcomes",
	Long: `List the most recent downloads recorded by the window, newest first.

Requires downloads.history = true in the config file.`,
	Args: cobra.NoArgs,
	RunE: runDownloads,
}

var downloadsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the download history",
	Args:  cobra.NoArgs,
	RunE:  runDownloadsClear,
}

func init() {
	downloadsCmd.Flags().IntVarP(&downloadsLimit, "limit", "n", 20, "number of downloads to show")
	downloadsCmd.AddCommand(downloadsClearCmd)
	rootCmd.AddCommand(downloadsCmd)
}

func runDownloads(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	uc, err := a.DownloadHistory()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := a.Theme

	result, err := uc.Recent(a.Ctx, downloadsLimit)
	if err != nil {
		return err
	}
	if len(result.Tasks) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No downloads recorded yet."))
		return nil
	}

	rows := make([][]string, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		when := styles.RelativeTime(t.RequestedAt)
		if !t.FinishedAt.IsZero() {
			when = styles.RelativeTime(t.FinishedAt)
		}
		rows = append(rows, []string{t.SuggestedName, theme.StateBadge(t.State), t.SavePath, when})
	}
	fmt.Fprintln(out, styles.NewStyledTable(theme, styles.DownloadTableHeaders(), rows))

	s := result.Summary
	fmt.Fprintf(out, "%s %s  %s  %s\n",
		theme.Highlight.Render(styles.IconDownload),
		theme.SuccessStyle.Render(fmt.Sprintf("%d completed", s.Completed)),
		theme.ErrorStyle.Render(fmt.Sprintf("%d failed", s.Failed)),
		theme.WarningStyle.Render(fmt.Sprintf("%d cancelled", s.Cancelled)))
	return nil
}

func runDownloadsClear(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	uc, err := a.DownloadHistory()
	if err != nil {
		return err
	}
	if err := uc.Clear(a.Ctx); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Theme.ErrorStyle.Render(styles.IconX), err.Error())
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Download history cleared\n", a.Theme.SuccessStyle.Render(styles.IconCheck))
	return nil
}
