package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Disabled items are skipped while
// navigating and never fire.
type Menu struct {
	Items    []MenuItem
	Selected int

	// Compact renders plain text lines instead of bordered buttons.
	Compact bool
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.firstEnabled()
	return m
}

func (m Menu) firstEnabled() int {
	for i, item := range m.Items {
		if !item.Disabled {
			return i
		}
	}
	return 0
}

// SetItems replaces the items, keeping the selection when it is still
// enabled.
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	if m.Selected >= len(items) || items[m.Selected].Disabled {
		m.Selected = m.firstEnabled()
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu as a column of buttons of the given width.
func (m Menu) View(width int) string {
	if m.Compact {
		return m.compactView()
	}
	rows := make([]string, len(m.Items))
	for i, item := range m.Items {
		rows[i] = Button{
			Label:    item.Label,
			Focused:  i == m.Selected && !item.Disabled,
			Disabled: item.Disabled,
		}.View(width)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(strings.Join(rows, "\n"))
}

func (m Menu) compactView() string {
	rows := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			rows[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("   " + item.Label)
		case i == m.Selected:
			rows[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		default:
			rows[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + item.Label)
		}
	}
	return strings.Join(rows, "\n")
}
