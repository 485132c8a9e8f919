// Package assets embeds the icons shipped with Protodesk.
package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed icons/*.svg
var icons embed.FS

// LogoSVG is the application logo, installed as the desktop icon.
//
//go:embed icons/logo.svg
var LogoSVG []byte

// Icon returns the SVG data of a sidebar icon by name (mail, calendar, drive,
// donate, about, logo). A trailing .svg is accepted.
func Icon(name string) ([]byte, error) {
	name = strings.TrimSuffix(name, ".svg")
	data, err := icons.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", name, err)
	}
	return data, nil
}
