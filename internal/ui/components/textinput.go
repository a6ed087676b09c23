package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// CountInput is a digits-only text field for entering a deck size.
type CountInput struct {
	Model    textinput.Model
	Fallback int
}

// NewCountInput creates a focused count field prefilled with fallback.
func NewCountInput(fallback int) CountInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 3
	ti.SetValue(strconv.Itoa(fallback))
	ti.Focus()
	return CountInput{Model: ti, Fallback: fallback}
}

// Update forwards editing keys and drops non-digit characters.
func (c CountInput) Update(msg tea.Msg) (CountInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return c, nil
		}
	}
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the field.
func (c CountInput) View() string {
	return c.Model.View()
}

// Count returns the entered number, or Fallback when the field is empty
// or not a number.
func (c CountInput) Count() int {
	n, err := strconv.Atoi(c.Model.Value())
	if err != nil {
		return c.Fallback
	}
	return n
}
