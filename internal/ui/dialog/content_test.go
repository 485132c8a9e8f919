package dialog

import (
	"testing"

	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/stretchr/testify/assert"
)

func TestNewAboutContent(t *testing.T) {
	c := NewAboutContent(build.Info{Version: "v1.3.0"})

	assert.Equal(t, "About Protodesk", c.Title)
	assert.Equal(t, "Version 1.3.0\nUnofficial desktop app for Proton.", c.Summary)
	assert.Equal(t, "Author: Nemuel Wainaina\nContact: nemuelwainaina@proton.me", c.Credits)
}

func TestNewAboutContent_DevBuild(t *testing.T) {
	c := NewAboutContent(build.Info{})

	assert.Contains(t, c.Summary, "Version dev")
}

func TestNewDonateContent(t *testing.T) {
	c := NewDonateContent()

	assert.Equal(t, "Donate", c.Title)
	assert.Equal(t, "Support the development of\nProtodesk.", c.Text)
	assert.Len(t, c.Links, 2)
}
