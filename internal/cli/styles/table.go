package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NewStyledTable renders headers and rows as a themed table.
func NewStyledTable(theme *Theme, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header
			}
			return theme.Cell
		})
	return t.Render()
}

// ServiceTableHeaders returns the columns of the services listing.
func ServiceTableHeaders() []string {
	return []string{"ID", "Title", "URL"}
}

// DownloadTableHeaders returns the columns of the download history listing.
func DownloadTableHeaders() []string {
	return []string{"File", "State", "Saved To", "When"}
}
