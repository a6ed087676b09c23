package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// Choices renders a numbered list of answer options. Once Reveal is
// called the correct option turns green and a wrong pick turns red.
type Choices struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Chosen       int
	Revealed     bool
}

// NewChoices creates a choice list with the cursor on the first option.
func NewChoices(options []string, correctIndex int) Choices {
	return Choices{
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Update moves the cursor. Selection is left to the caller so that number
// keys and enter share one path.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// Reveal marks chosen as the user's pick and freezes the list.
func (c *Choices) Reveal(chosen int) {
	c.Revealed = true
	c.Chosen = chosen
}

// View renders the options within width columns.
func (c Choices) View(width int) string {
	rows := make([]string, len(c.Options))
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !c.Revealed {
			prefix = "▸ "
		}
		mark := ""
		style := lipgloss.NewStyle().Width(width).Foreground(theme.Text)

		switch {
		case c.Revealed && i == c.CorrectIndex:
			style = style.Foreground(theme.Success).Bold(true)
			mark = "  ✓"
		case c.Revealed && i == c.Chosen:
			style = style.Foreground(theme.Error).Bold(true)
			mark = "  ✗"
		case c.Revealed:
			style = style.Foreground(theme.TextDim)
		case i == c.Cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		}

		rows[i] = style.Render(fmt.Sprintf("%s%d)  %s%s", prefix, i+1, opt, mark))
	}
	return strings.Join(rows, "\n")
}
