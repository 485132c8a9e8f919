package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDownloadTask(t *testing.T) {
	task := NewDownloadTask("report.pdf")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "report.pdf", task.SuggestedName)
	assert.Equal(t, DownloadRequested, task.State)
	assert.Empty(t, task.SavePath)
	assert.False(t, task.RequestedAt.IsZero())
	assert.NotEqual(t, task.ID, NewDownloadTask("report.pdf").ID)
}

func TestDownloadTask_AcceptThenComplete(t *testing.T) {
	task := NewDownloadTask("report.pdf")

	require.NoError(t, task.Accept("/home/u/Downloads/report.pdf"))
	assert.Equal(t, DownloadAccepted, task.State)
	assert.Equal(t, "/home/u/Downloads/report.pdf", task.SavePath)
	assert.False(t, task.State.IsTerminal())

	require.NoError(t, task.Complete())
	assert.Equal(t, DownloadCompleted, task.State)
	assert.True(t, task.State.IsTerminal())
	assert.Empty(t, task.LastError)
	assert.False(t, task.FinishedAt.IsZero())
}

func TestDownloadTask_Fail(t *testing.T) {
	task := NewDownloadTask("report.pdf")
	require.NoError(t, task.Accept("/tmp/report.pdf"))

	require.NoError(t, task.Fail("network error"))
	assert.Equal(t, DownloadFailed, task.State)
	assert.Equal(t, "network error", task.LastError)
}

func TestDownloadTask_Cancel(t *testing.T) {
	task := NewDownloadTask("report.pdf")

	require.NoError(t, task.Cancel())
	assert.Equal(t, DownloadCancelled, task.State)
	assert.True(t, task.State.IsTerminal())
}

func TestDownloadTask_InvalidTransitions(t *testing.T) {
	t.Run("complete before accept", func(t *testing.T) {
		task := NewDownloadTask("a")
		err := task.Complete()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, DownloadRequested, task.State)
	})

	t.Run("fail before accept", func(t *testing.T) {
		task := NewDownloadTask("a")
		assert.ErrorIs(t, task.Fail("x"), ErrInvalidTransition)
		assert.Empty(t, task.LastError)
	})

	t.Run("cancel after accept", func(t *testing.T) {
		task := NewDownloadTask("a")
		require.NoError(t, task.Accept("/tmp/a"))
		assert.ErrorIs(t, task.Cancel(), ErrInvalidTransition)
		assert.Equal(t, DownloadAccepted, task.State)
	})

	t.Run("no transition out of terminal", func(t *testing.T) {
		task := NewDownloadTask("a")
		require.NoError(t, task.Accept("/tmp/a"))
		require.NoError(t, task.Complete())
		assert.ErrorIs(t, task.Fail("late"), ErrInvalidTransition)
		assert.ErrorIs(t, task.Complete(), ErrInvalidTransition)
		assert.Equal(t, DownloadCompleted, task.State)
	})

	t.Run("accept with empty path", func(t *testing.T) {
		task := NewDownloadTask("a")
		assert.ErrorIs(t, task.Accept(""), ErrInvalidTransition)
		assert.Equal(t, DownloadRequested, task.State)
	})
}
