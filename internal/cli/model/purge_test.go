package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemuelw/protodesk/internal/application/usecase"
	"github.com/nemuelw/protodesk/internal/cli/styles"
	"github.com/nemuelw/protodesk/internal/domain/entity"
)

type fakePurgeRunner struct {
	targets []entity.PurgeTarget
	got     []entity.PurgeTargetType
	err     error
}

func (f *fakePurgeRunner) GetPurgeTargets(context.Context) ([]entity.PurgeTarget, error) {
	return f.targets, nil
}

func (f *fakePurgeRunner) Execute(_ context.Context, in usecase.PurgeInput) (*usecase.PurgeOutput, error) {
	f.got = in.TargetTypes
	out := &usecase.PurgeOutput{}
	for _, t := range f.targets {
		out.Results = append(out.Results, entity.PurgeResult{Target: t, Success: f.err == nil, Error: f.err})
	}
	return out, f.err
}

func send(t *testing.T, m tea.Model, msg tea.Msg) (PurgeModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PurgeModel)
	require.True(t, ok)
	return pm, cmd
}

func TestPurgeModel_SelectAndPurge(t *testing.T) {
	runner := &fakePurgeRunner{targets: []entity.PurgeTarget{
		{Type: entity.PurgeTargetCache, Path: "/cache", Exists: true, Size: 10},
	}}
	m := NewPurgeModel(context.Background(), styles.NewTheme(), runner)
	assert.Contains(t, m.View(), "Scanning")

	m, _ = send(t, m, m.loadTargets()())
	assert.Contains(t, m.View(), "Web cache")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.purging)

	m, _ = send(t, m, m.performPurge(m.selector.SelectedTypes())())
	assert.Equal(t, []entity.PurgeTargetType{entity.PurgeTargetCache}, runner.got)
	assert.True(t, m.done)
	assert.Contains(t, m.View(), "Purge complete")
	assert.NoError(t, m.Err())
}

func TestPurgeModel_NothingSelected(t *testing.T) {
	runner := &fakePurgeRunner{}
	m := NewPurgeModel(context.Background(), styles.NewTheme(), runner)
	m, _ = send(t, m, purgeTargetsLoadedMsg{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
	assert.Contains(t, m.View(), "Nothing selected")
	assert.Nil(t, runner.got)
}

func TestPurgeModel_ReportsFailure(t *testing.T) {
	runner := &fakePurgeRunner{err: errors.New("permission denied")}
	m := NewPurgeModel(context.Background(), styles.NewTheme(), runner)

	m, _ = send(t, m, purgeCompleteMsg{out: &usecase.PurgeOutput{FailureCount: 1}, err: runner.err})
	assert.ErrorContains(t, m.Err(), "permission denied")
	assert.Contains(t, m.View(), "0 succeeded, 1 failed")
}
