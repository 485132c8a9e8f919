package styles

import (
	"testing"
	"time"

	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds", now.Add(-10 * time.Second), "just now"},
		{"one minute", now.Add(-90 * time.Second), "1m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"one day", now.Add(-30 * time.Hour), "1d ago"},
		{"weeks", now.Add(-15 * 24 * time.Hour), "2w ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.at))
		})
	}
}

func TestStateBadge_ContainsState(t *testing.T) {
	theme := NewTheme()
	for _, s := range []entity.DownloadState{
		entity.DownloadCompleted, entity.DownloadFailed, entity.DownloadCancelled, entity.DownloadAccepted,
	} {
		assert.Contains(t, theme.StateBadge(s), s.String())
	}
}

func TestNewStyledTable(t *testing.T) {
	out := NewStyledTable(NewTheme(), ServiceTableHeaders(), [][]string{
		{"mail", "Mail", "https://mail.proton.me"},
	})

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "https://mail.proton.me")
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "1.3.0"})

	assert.Contains(t, out, "Protodesk")
	assert.Contains(t, out, "1.3.0")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "nemuelwainaina@proton.me")
}
