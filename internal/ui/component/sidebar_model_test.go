package component

import (
	"testing"

	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarLayout_DefaultServices(t *testing.T) {
	top, bottom := SidebarLayout(entity.DefaultServices())

	require.Len(t, top, 3)
	assert.Equal(t, []string{"mail", "calendar", "drive"}, keys(top))
	assert.Equal(t, []string{"Mail", "Calendar", "Drive"}, tooltips(top))
	for _, item := range top {
		assert.Equal(t, ActionService, item.Action)
	}

	require.Len(t, bottom, 2)
	assert.Equal(t, ActionDonate, bottom[0].Action)
	assert.Equal(t, "Donate", bottom[0].Tooltip)
	assert.Equal(t, ActionAbout, bottom[1].Action)
	assert.Equal(t, "About", bottom[1].Tooltip)
}

func TestSidebarLayout_IconFallsBackToID(t *testing.T) {
	top, _ := SidebarLayout([]entity.Service{{ID: "mail", Title: "Mail", URL: "https://mail.proton.me"}})

	assert.Equal(t, "mail", top[0].Icon)
}

func keys(items []SidebarItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

func tooltips(items []SidebarItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Tooltip
	}
	return out
}
