// Package model holds the interactive bubbletea programs of the CLI.
package model

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nemuelw/protodesk/internal/application/usecase"
	"github.com/nemuelw/protodesk/internal/cli/styles"
	"github.com/nemuelw/protodesk/internal/domain/entity"
)

// PurgeRunner is the part of the purge use case the model drives.
type PurgeRunner interface {
	GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error)
	Execute(ctx context.Context, input usecase.PurgeInput) (*usecase.PurgeOutput, error)
}

// PurgeModel scans the purge targets, lets the user pick some and removes them.
type PurgeModel struct {
	ctx   context.Context
	theme *styles.Theme
	uc    PurgeRunner

	selector styles.PurgeSelector
	spinner  styles.LoadingModel

	loading bool
	purging bool
	done    bool

	results *usecase.PurgeOutput
	info    string
	err     error
}

// NewPurgeModel creates the purge program model.
func NewPurgeModel(ctx context.Context, theme *styles.Theme, uc PurgeRunner) PurgeModel {
	return PurgeModel{
		ctx:     ctx,
		theme:   theme,
		uc:      uc,
		spinner: styles.NewLoading(theme, "Scanning purge targets..."),
		loading: true,
	}
}

type purgeTargetsLoadedMsg struct {
	targets []entity.PurgeTarget
	err     error
}

type purgeCompleteMsg struct {
	out *usecase.PurgeOutput
	err error
}

// Init implements tea.Model.
func (m PurgeModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick(), m.loadTargets())
}

func (m PurgeModel) loadTargets() tea.Cmd {
	return func() tea.Msg {
		targets, err := m.uc.GetPurgeTargets(m.ctx)
		return purgeTargetsLoadedMsg{targets: targets, err: err}
	}
}

func (m PurgeModel) performPurge(types []entity.PurgeTargetType) tea.Cmd {
	return func() tea.Msg {
		out, err := m.uc.Execute(m.ctx, usecase.PurgeInput{TargetTypes: types})
		return purgeCompleteMsg{out: out, err: err}
	}
}

// Update implements tea.Model.
func (m PurgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case purgeTargetsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.done = true
			return m, nil
		}
		m.selector = styles.NewPurgeSelector(m.theme, msg.targets)
		return m, nil
	case purgeCompleteMsg:
		m.loading = false
		m.purging = false
		m.done = true
		m.results = msg.out
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
	}

	if m.loading || m.purging {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m.updateSelector(msg)
}

func (m PurgeModel) updateSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	selector, cmd := m.selector.Update(msg)
	m.selector = selector

	switch {
	case m.selector.Canceled:
		return m, tea.Quit
	case m.selector.Confirmed:
		types := m.selector.SelectedTypes()
		if len(types) == 0 {
			m.done = true
			m.info = "Nothing selected"
			return m, nil
		}
		m.purging = true
		m.spinner = styles.NewLoading(m.theme, "Purging...")
		return m, tea.Batch(m.spinner.Tick(), m.performPurge(types))
	}
	return m, cmd
}

// Err returns the error of the scan or of the purge, if any.
func (m PurgeModel) Err() error {
	return m.err
}

// View implements tea.Model.
func (m PurgeModel) View() string {
	t := m.theme

	switch {
	case m.loading || m.purging:
		return t.Box.Render(m.spinner.View())
	case m.done && m.info != "":
		return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
			t.Subtle.Render(m.info), "", t.Subtle.Render("Press any key to exit")))
	case m.done && m.results == nil && m.err != nil:
		return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
			t.ErrorStyle.Render("Error: "+m.err.Error()), "", t.Subtle.Render("Press any key to exit")))
	case m.done:
		return m.renderResults()
	}
	return m.selector.View()
}

func (m PurgeModel) renderResults() string {
	t := m.theme
	lines := []string{t.Title.Render("Purge complete")}
	for _, r := range m.results.Results {
		lines = append(lines, ResultLine(t, r))
	}
	lines = append(lines,
		"",
		t.Subtle.Render(fmt.Sprintf("%d succeeded, %d failed", m.results.SuccessCount, m.results.FailureCount)),
		"",
		t.Subtle.Render("Press any key to exit"),
	)
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ResultLine renders the outcome of one purged target.
func ResultLine(t *styles.Theme, r entity.PurgeResult) string {
	if r.Success {
		return fmt.Sprintf("%s %s", t.SuccessStyle.Render(styles.IconCheck), r.Target.Path)
	}
	return fmt.Sprintf("%s %s: %v", t.ErrorStyle.Render(styles.IconX), r.Target.Path, r.Error)
}

var _ tea.Model = (*PurgeModel)(nil)
