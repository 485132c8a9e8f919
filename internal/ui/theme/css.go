// Package theme provides GTK CSS styling for the shell.
package theme

import (
	"fmt"
	"strings"
)

// CSS class names shared with the widgets.
const (
	ClassSidebar       = "sidebar"
	ClassSidebarButton = "sidebar-button"
	ClassDialog        = "pd-dialog"
	ClassDialogTitle   = "pd-dialog-title"
	ClassDialogText    = "pd-dialog-text"
	ClassPrimaryButton = "pd-primary"
	ClassDonateButton  = "pd-donate"
)

// GenerateCSS creates the GTK4 stylesheet for the given palette and sidebar width.
func GenerateCSS(p Palette, sidebarWidth int) string {
	if sidebarWidth <= 0 {
		sidebarWidth = 60
	}

	var sb strings.Builder
	sb.WriteString("/* Theme colors */\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("\n")
	sb.WriteString(sidebarCSS(sidebarWidth))
	sb.WriteString("\n")
	sb.WriteString(tooltipCSS)
	sb.WriteString("\n")
	sb.WriteString(dialogCSS)
	return sb.String()
}

func sidebarCSS(width int) string {
	return fmt.Sprintf(`.%s {
	background-color: @sidebar_bg;
	min-width: %dpx;
	padding: 4px 0;
}

button.%s {
	background: none;
	border: none;
	box-shadow: none;
	margin: 2px;
	padding: 6px;
}

button.%s:hover {
	background-color: alpha(white, 0.12);
}
`, ClassSidebar, width, ClassSidebarButton, ClassSidebarButton)
}

const tooltipCSS = `tooltip {
	background-color: @tooltip_bg;
	color: #ffffff;
	font-size: 14px;
	border: 1px solid @tooltip_border;
	padding: 5px;
}
`

var dialogCSS = fmt.Sprintf(`window.%[1]s {
	background-color: @dialog_bg;
	border-radius: 10px;
}

.%[2]s {
	font-size: 16pt;
	font-weight: bold;
	color: @accent;
}

.%[3]s {
	font-size: 12pt;
	color: @dialog_fg;
}

button.%[4]s {
	font-size: 12pt;
	background: @accent;
	color: white;
	padding: 10px;
	border: none;
	border-radius: 10px;
}

button.%[4]s:hover {
	background: @accent_hover;
}

button.%[5]s {
	font-size: 12pt;
	background: @donate_button_bg;
	color: @donate_button_fg;
	border-radius: 5px;
	min-height: 48px;
}
`, ClassDialog, ClassDialogTitle, ClassDialogText, ClassPrimaryButton, ClassDonateButton)
