package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NewSpinner creates the themed dot spinner.
func NewSpinner(theme *Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return s
}

// LoadingModel wraps a spinner with a message.
type LoadingModel struct {
	Spinner spinner.Model
	Message string
	theme   *Theme
}

// NewLoading creates a loading indicator with message.
func NewLoading(theme *Theme, message string) LoadingModel {
	return LoadingModel{
		Spinner: NewSpinner(theme),
		Message: message,
		theme:   theme,
	}
}

// Tick starts the spinner animation.
func (m LoadingModel) Tick() tea.Cmd {
	return m.Spinner.Tick
}

// Update advances the spinner on its tick messages.
func (m LoadingModel) Update(msg tea.Msg) (LoadingModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Spinner, cmd = m.Spinner.Update(msg)
	return m, cmd
}

// View renders the loading indicator.
func (m LoadingModel) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.Spinner.View(),
		" ",
		m.theme.Subtle.Render(m.Message),
	)
}
