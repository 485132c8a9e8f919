package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nemuelw/protodesk/internal/application/usecase"
	"github.com/nemuelw/protodesk/internal/cli/model"
	"github.com/nemuelw/protodesk/internal/cli/styles"
	"github.com/nemuelw/protodesk/internal/domain/entity"
)

var purgeFlags struct {
	profile bool
	cache   bool
	history bool
	config  bool
	desktop bool
	all     bool
	dryRun  bool
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove Protodesk data and configuration",
	Long: `Select and remove local Protodesk data.

This can remove:
  - Web profile (cookies and local storage; signs you out)
  - Web cache
  - Download history database
  - Config directory
  - Desktop integration files

Without flags an interactive selector is shown. Use --all to remove
everything without prompting, or pick targets with the flags below.`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	f := purgeCmd.Flags()
	f.BoolVar(&purgeFlags.profile, "profile", false, "remove the web profile")
	f.BoolVar(&purgeFlags.cache, "cache", false, "remove the web cache")
	f.BoolVar(&purgeFlags.history, "history", false, "remove the download history database")
	f.BoolVar(&purgeFlags.config, "config", false, "remove the config directory")
	f.BoolVar(&purgeFlags.desktop, "desktop", false, "remove the desktop file and icon")
	f.BoolVarP(&purgeFlags.all, "all", "a", false, "remove everything without prompting")
	f.BoolVar(&purgeFlags.dryRun, "dry-run", false, "list the targets without removing anything")
	rootCmd.AddCommand(purgeCmd)
}

func selectedPurgeTypes() []entity.PurgeTargetType {
	var types []entity.PurgeTargetType
	add := func(on bool, t ...entity.PurgeTargetType) {
		if on || purgeFlags.all {
			types = append(types, t...)
		}
	}
	add(purgeFlags.profile, entity.PurgeTargetProfile)
	add(purgeFlags.cache, entity.PurgeTargetCache)
	add(purgeFlags.history, entity.PurgeTargetHistory)
	add(purgeFlags.config, entity.PurgeTargetConfig)
	add(purgeFlags.desktop, entity.PurgeTargetDesktopFile, entity.PurgeTargetIcon)
	return types
}

func runPurge(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := a.Theme
	uc := a.Purge()

	if purgeFlags.dryRun {
		targets, err := uc.GetPurgeTargets(a.Ctx)
		if err != nil {
			return err
		}
		for _, t := range targets {
			state := styles.FormatSize(t.Size)
			if !t.Exists {
				state = "not found"
			}
			fmt.Fprintf(out, "%s %s %s\n", styles.PurgeLabel(t.Type), theme.Subtle.Render(t.Path), theme.Subtle.Render("("+state+")"))
		}
		return nil
	}

	types := selectedPurgeTypes()
	if len(types) == 0 {
		m := model.NewPurgeModel(a.Ctx, theme, uc)
		final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(out)).Run()
		if err != nil {
			return err
		}
		if pm, ok := final.(model.PurgeModel); ok {
			return pm.Err()
		}
		return nil
	}

	result, err := uc.Execute(a.Ctx, usecase.PurgeInput{TargetTypes: types})
	if result != nil {
		if len(result.Results) == 0 {
			fmt.Fprintln(out, theme.Subtle.Render("Nothing to remove"))
		}
		for _, r := range result.Results {
			fmt.Fprintln(out, model.ResultLine(theme, r))
		}
	}
	return err
}
