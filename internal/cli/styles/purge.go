package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nemuelw/protodesk/internal/domain/entity"
)

// PurgeItem wraps entity.PurgeTarget with selection state for the UI.
type PurgeItem struct {
	entity.PurgeTarget
	Selected bool
}

// PurgeSelector is the multi-select list of purge targets.
// Missing targets are shown but cannot be selected.
type PurgeSelector struct {
	Items     []PurgeItem
	Cursor    int
	Confirmed bool
	Canceled  bool

	keys  PurgeKeyMap
	theme *Theme
}

// PurgeKeyMap defines the selector keybindings.
type PurgeKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultPurgeKeyMap returns default keybindings.
func DefaultPurgeKeyMap() PurgeKeyMap {
	return PurgeKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewPurgeSelector creates a selector. Nothing is preselected: purging the
// profile signs the user out, so every target is opt-in.
func NewPurgeSelector(theme *Theme, targets []entity.PurgeTarget) PurgeSelector {
	items := make([]PurgeItem, 0, len(targets))
	for _, t := range targets {
		items = append(items, PurgeItem{PurgeTarget: t})
	}
	m := PurgeSelector{Items: items, keys: DefaultPurgeKeyMap(), theme: theme}
	m.Cursor = m.firstSelectable()
	return m
}

// Update handles a key press.
func (m PurgeSelector) Update(msg tea.Msg) (PurgeSelector, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(keyMsg, m.keys.ToggleAll):
		m.toggleAll()
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// Done reports whether the user confirmed or canceled.
func (m PurgeSelector) Done() bool {
	return m.Confirmed || m.Canceled
}

// SelectedTypes returns the types of the selected targets.
func (m PurgeSelector) SelectedTypes() []entity.PurgeTargetType {
	var out []entity.PurgeTargetType
	for _, it := range m.Items {
		if it.Selected {
			out = append(out, it.Type)
		}
	}
	return out
}

// SelectedSize returns the total size of the selected targets.
func (m PurgeSelector) SelectedSize() int64 {
	var total int64
	for _, it := range m.Items {
		if it.Selected {
			total += it.Size
		}
	}
	return total
}

func (m *PurgeSelector) moveCursor(delta int) {
	var selectable []int
	for i, it := range m.Items {
		if it.Exists {
			selectable = append(selectable, i)
		}
	}
	if len(selectable) == 0 {
		return
	}
	pos := 0
	for i, idx := range selectable {
		if idx == m.Cursor {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(selectable)) % len(selectable)
	m.Cursor = selectable[pos]
}

func (m PurgeSelector) firstSelectable() int {
	for i, it := range m.Items {
		if it.Exists {
			return i
		}
	}
	return 0
}

func (m *PurgeSelector) toggleCurrent() {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) || !m.Items[m.Cursor].Exists {
		return
	}
	m.Items[m.Cursor].Selected = !m.Items[m.Cursor].Selected
}

func (m *PurgeSelector) toggleAll() {
	anyUnselected := false
	for _, it := range m.Items {
		if it.Exists && !it.Selected {
			anyUnselected = true
			break
		}
	}
	for i := range m.Items {
		if m.Items[i].Exists {
			m.Items[i].Selected = anyUnselected
		}
	}
}

// View renders the selector.
func (m PurgeSelector) View() string {
	t := m.theme

	rows := make([]string, 0, len(m.Items))
	for i, it := range m.Items {
		rows = append(rows, m.renderRow(i, it))
	}

	selected := len(m.SelectedTypes())
	summary := t.Subtle.Render("0 selected")
	if selected > 0 {
		summary = lipgloss.JoinHorizontal(
			lipgloss.Left,
			t.WarningStyle.Render(IconWarning),
			" ",
			t.Subtle.Render(fmt.Sprintf("%d selected (%s)", selected, FormatSize(m.SelectedSize()))),
		)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render(fmt.Sprintf("%s Purge", IconTrash)),
		t.Subtle.Render("Select items to remove"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		summary,
		"",
		t.Subtle.Render("↑/↓ j/k move • space toggle • a all • enter • esc"),
	)
	return t.Box.Render(content)
}

func (m PurgeSelector) renderRow(i int, it PurgeItem) string {
	t := m.theme

	cursor := "  "
	if i == m.Cursor {
		cursor = IconCursor + " "
	}
	checkbox := IconCheckboxEmpty
	if it.Selected {
		checkbox = IconCheckboxChecked
	}

	accent := lipgloss.NewStyle().Foreground(t.Accent)
	labelStyle := t.Normal
	tail := t.Subtle.Render(FormatSize(it.Size))
	if !it.Exists {
		accent = t.Subtle
		labelStyle = t.Subtle
		tail = t.Subtle.Render("(not found)")
	}

	const labelPadWidth = 16
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		accent.Render(cursor),
		accent.Render(checkbox),
		" ",
		labelStyle.Render(padRight(PurgeLabel(it.Type), labelPadWidth)),
		t.Subtle.Render(it.Path),
		" ",
		tail,
	)
}

// PurgeLabel returns the icon and name shown for a target type.
func PurgeLabel(t entity.PurgeTargetType) string {
	switch t {
	case entity.PurgeTargetProfile:
		return IconProfile + " Web profile"
	case entity.PurgeTargetCache:
		return IconCache + " Web cache"
	case entity.PurgeTargetHistory:
		return IconDatabase + " History"
	case entity.PurgeTargetConfig:
		return IconConfig + " Config"
	case entity.PurgeTargetDesktopFile:
		return IconDesktop + " Desktop file"
	case entity.PurgeTargetIcon:
		return IconImage + " Icon"
	default:
		return "Item"
	}
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// FormatSize renders a byte count with a binary unit.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
