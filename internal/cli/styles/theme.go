// Package styles provides lipgloss styles for the Protodesk CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the terminal colors of the CLI.
type Palette struct {
	Surface string
	Text    string
	Muted   string
	Accent  string
	Border  string
}

// DefaultPalette matches the desktop window colors.
func DefaultPalette() Palette {
	return Palette{
		Surface: "#505264",
		Text:    "#ffffff",
		Muted:   "#909090",
		Accent:  "#0076D1",
		Border:  "#888888",
	}
}

// Theme holds lipgloss colors and styles.
type Theme struct {
	Surface lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Header lipgloss.Style
	Cell   lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from the default palette.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette creates a Theme from p.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Surface: lipgloss.Color(p.Surface),
		Text:    lipgloss.Color(p.Text),
		Muted:   lipgloss.Color(p.Muted),
		Accent:  lipgloss.Color(p.Accent),
		Border:  lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#4ade80"),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Padding(0, 1)

	t.Cell = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}
