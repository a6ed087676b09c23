package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	snap := s.machine.Snapshot()
	if len(s.card.Options) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No card to show"))
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(components.ProgressBar{Done: len(snap.Log), Total: len(snap.Deck), Width: cw}.View())
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(s.card.Word.Front)
	if snap.Revealed && s.card.Word.Back.HanziPinyin != "" {
		prompt += "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.card.Word.Back.HanziPinyin)
	}
	b.WriteString(components.Card(prompt, cw))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View(cw))
	b.WriteString("\n\n")

	b.WriteString(s.statusLine(snap.Revealed, snap.LastCorrect, cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *Screen) statusLine(revealed, correct bool, cw int) string {
	style := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	switch {
	case s.errMsg != "":
		return style.Foreground(theme.Error).Render(s.errMsg)
	case revealed && correct:
		return style.Inherit(theme.Correct).Render("Correct!")
	case revealed:
		return style.Inherit(theme.Incorrect).Render("Not quite")
	}
	return style.Foreground(theme.TextDim).Render("Select (1-4) or use arrows + Enter")
}
