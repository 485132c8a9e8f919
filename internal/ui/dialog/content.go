// Package dialog provides the modal windows of the shell.
package dialog

import (
	"fmt"
	"strings"

	"github.com/nemuelw/protodesk/internal/domain/build"
)

// Dialog sizes.
const (
	AboutWidth   = 300
	AboutHeight  = 230
	DonateWidth  = 300
	DonateHeight = 300
)

// AboutContent is the text shown in the About dialog.
type AboutContent struct {
	Title   string
	Summary string
	Credits string
}

// NewAboutContent builds the About text for info.
func NewAboutContent(info build.Info) AboutContent {
	version := strings.TrimPrefix(info.Version, "v")
	if version == "" {
		version = "dev"
	}
	name, contact := build.Author()
	return AboutContent{
		Title:   "About " + build.AppName,
		Summary: fmt.Sprintf("Version %s\n%s", version, build.Description),
		Credits: fmt.Sprintf("Author: %s\nContact: %s", name, contact),
	}
}

// DonateContent is the text shown in the Donate dialog.
type DonateContent struct {
	Title string
	Text  string
	Links []build.DonationLink
}

// NewDonateContent builds the Donate text.
func NewDonateContent() DonateContent {
	return DonateContent{
		Title: "Donate",
		Text:  "Support the development of\n" + build.AppName + ".",
		Links: build.DonationLinks(),
	}
}
