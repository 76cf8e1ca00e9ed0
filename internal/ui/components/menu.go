package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/antigravity/petit/internal/ui/keys"
	"github.com/antigravity/petit/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a navigation menu. Up and left move back, down and right move
// forward, so the same menu works laid out in a column or a row.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.Up, keys.Default.Left):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, keys.Default.Down, keys.Default.Right):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, keys.Default.Select):
		return m, m.Activate(m.Selected)
	}

	return m, nil
}

// Activate selects item i and runs its action. Disabled or out-of-range
// items do nothing.
func (m *Menu) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return nil
	}
	m.Selected = i
	if m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// View renders the menu as a plain list.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + item.Label))
		default:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
