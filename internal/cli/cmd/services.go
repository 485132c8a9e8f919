package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nemuelw/protodesk/internal/cli/styles"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the sidebar services and allowed hosts",
	RunE:  runServices,
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	services := a.Catalog.Services()
	rows := make([][]string, 0, len(services))
	for _, s := range services {
		rows = append(rows, []string{string(s.ID), s.Title, s.URL})
	}
	fmt.Fprintln(out, styles.NewStyledTable(a.Theme, styles.ServiceTableHeaders(), rows))

	fmt.Fprintf(out, "%s %s %s\n",
		a.Theme.Highlight.Render(styles.IconLock),
		a.Theme.Subtle.Render("Allowed hosts:"),
		strings.Join(a.Allowed.Hosts(), ", "))
	return nil
}
