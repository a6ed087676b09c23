package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// Button is a focusable, optionally disabled action label.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// View renders the button at the given width.
func (b Button) View(width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case b.Disabled:
		return style.
			Foreground(theme.Border).
			BorderForeground(theme.Border).
			Render(b.Label)
	case b.Focused:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Primary).
			BorderForeground(theme.Primary).
			Render("▸ " + b.Label)
	default:
		return style.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(b.Label)
	}
}
