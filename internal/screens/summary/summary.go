package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// SummaryScreen displays the results of the finished quiz.
type SummaryScreen struct {
	machine *session.Machine
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(machine *session.Machine) *SummaryScreen {
	return &SummaryScreen{machine: machine}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) summary() session.Summary {
	return session.BuildSummary(s.machine.Snapshot())
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Menu"},
	}
	if s.summary().CanRetry() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry mistakes"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			_ = s.machine.SetMode(session.ModeMenu)
		case "r":
			if s.summary().CanRetry() {
				if err := s.machine.StartWeaknessReview(); err != nil {
					s.errMsg = err.Error()
				}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	title := "Quiz complete!"
	if sum.Wrong == 0 && sum.Total > 0 {
		title = "Perfect run!"
	}
	b.WriteString(center.Inherit(theme.Title).Render(title))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d points", sum.Score)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
		"Correct: %d/%d        Accuracy: %.0f%%", sum.Correct, sum.Total, sum.Accuracy*100)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	// Keep the sheet inside the content area: 9 lines above, 3 below.
	rows := max(height-12, 1)
	for i, e := range sum.Log {
		if i == rows && len(sum.Log) > rows+1 {
			b.WriteString(center.Foreground(theme.TextDim).Render(
				fmt.Sprintf("… and %d more", len(sum.Log)-rows)))
			b.WriteString("\n")
			break
		}
		mark, style := "✓", theme.Correct
		if !e.IsCorrect {
			mark, style = "✗", theme.Incorrect
		}
		line := fmt.Sprintf("%s  %s  %s", mark, e.Front, e.OptionLabel())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if sum.CanRetry() {
		b.WriteString(center.Foreground(theme.Text).Render(
			fmt.Sprintf("Press r to retry %d mistake(s)", sum.Wrong)))
	} else {
		b.WriteString(center.Foreground(theme.TextDim).Render("No mistakes to retry"))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Error).Render(s.errMsg))
	}

	return b.String()
}
