package theme

import (
	"fmt"
	"strings"
)

// Palette holds the colors of the shell chrome.
type Palette struct {
	Sidebar          string
	DialogBackground string
	Text             string
	Accent           string
	AccentHover      string
	TooltipBG        string
	TooltipBorder    string
	ButtonBG         string
	ButtonText       string
}

// DefaultPalette returns the Protodesk colors.
func DefaultPalette() Palette {
	return Palette{
		Sidebar:          "#505264",
		DialogBackground: "#2D2D2D",
		Text:             "#ffffff",
		Accent:           "#0076D1",
		AccentHover:      "#005BB5",
		TooltipBG:        "#333333",
		TooltipBorder:    "#888888",
		ButtonBG:         "#ffffff",
		ButtonText:       "#000000",
	}
}

// ToCSSVars renders the palette as GTK CSS @define-color rules.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	for _, c := range []struct{ name, value string }{
		{"sidebar_bg", p.Sidebar},
		{"dialog_bg", p.DialogBackground},
		{"dialog_fg", p.Text},
		{"accent", p.Accent},
		{"accent_hover", p.AccentHover},
		{"tooltip_bg", p.TooltipBG},
		{"tooltip_border", p.TooltipBorder},
		{"donate_button_bg", p.ButtonBG},
		{"donate_button_fg", p.ButtonText},
	} {
		fmt.Fprintf(&sb, "@define-color %s %s;\n", c.name, c.value)
	}
	return sb.String()
}
