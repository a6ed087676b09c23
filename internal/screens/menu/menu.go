// Package menu implements the main menu: start a speed quiz or flashcards,
// review mistakes, and toggle preferences.
package menu

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// Menu item positions.
const (
	itemQuiz = iota
	itemFlashcards
	itemReview
	itemTheme
	itemAudio
	itemExit
)

const buttonWidth = 26

// Screen is the main menu.
type Screen struct {
	machine *session.Machine
	menu    components.Menu
	count   components.CountInput
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the menu for machine. defaultCount prefills the quiz size.
func New(machine *session.Machine, defaultCount int) *Screen {
	s := &Screen{
		machine: machine,
		count:   components.NewCountInput(defaultCount),
	}
	s.menu = components.NewMenu(s.items(machine.Snapshot()))
	return s
}

func (s *Screen) items(snap session.State) []components.MenuItem {
	empty := snap.PoolSize == 0
	wrong := snap.WrongCount()

	reviewLabel := "REVIEW MISTAKES"
	if wrong > 0 {
		reviewLabel = fmt.Sprintf("REVIEW MISTAKES (%d)", wrong)
	}
	themeLabel := "THEME: LIGHT"
	if snap.DarkMode {
		themeLabel = "THEME: DARK"
	}
	audioLabel := "AUDIO: OFF"
	if snap.AudioEnabled {
		audioLabel = "AUDIO: ON"
	}

	return []components.MenuItem{
		itemQuiz: {Label: "SPEED QUIZ", Disabled: empty, Action: func() tea.Cmd {
			s.report(s.machine.StartQuiz(s.count.Count()))
			return nil
		}},
		itemFlashcards: {Label: "FLASHCARDS", Disabled: empty, Action: func() tea.Cmd {
			s.report(s.machine.StartFlashcards())
			return nil
		}},
		itemReview: {Label: reviewLabel, Disabled: wrong == 0, Action: func() tea.Cmd {
			s.report(s.machine.StartWeaknessReview())
			return nil
		}},
		itemTheme: {Label: themeLabel, Action: func() tea.Cmd {
			theme.Use(s.machine.ToggleTheme())
			return nil
		}},
		itemAudio: {Label: audioLabel, Action: func() tea.Cmd {
			s.machine.ToggleAudio()
			return nil
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (s *Screen) report(err error) {
	switch {
	case err == nil:
		s.errMsg = ""
	case errors.Is(err, session.ErrNothingToDo):
		s.errMsg = "Nothing to study yet"
	default:
		s.errMsg = err.Error()
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Menu"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "0-9", Description: "Quiz size"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch key := kmsg.String(); {
		case key == "backspace" || (len(key) == 1 && key[0] >= '0' && key[0] <= '9'):
			var cmd tea.Cmd
			s.count, cmd = s.count.Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	// Labels and disabled flags follow the machine after every action.
	s.menu.SetItems(s.items(s.machine.Snapshot()))
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	snap := s.machine.Snapshot()
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	s.menu.SetItems(s.items(snap))
	s.menu.Compact = compact

	var sections []string
	sections = append(sections, renderStats(snap, len(s.machine.ProgressRecords()), cw))
	sections = append(sections, renderCount(s.count, snap.PoolSize, cw))
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(s.menu.View(buttonWidth)))

	if snap.PoolSize == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render("No vocabulary loaded"))
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw).
			Align(lipgloss.Center).
			Render(s.errMsg))
	}

	gap := "\n\n"
	if compact {
		gap = "\n"
	}
	return components.Panel(strings.Join(sections, gap), width, height)
}

// renderStats renders pool size, studied words and the persisted counters.
func renderStats(snap session.State, studied, cw int) string {
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := strings.Join([]string{
		value.Render(fmt.Sprintf("%d", snap.PoolSize)) + label.Render(" WORDS"),
		value.Render(fmt.Sprintf("%d", studied)) + label.Render(" STUDIED"),
		value.Render(fmt.Sprintf("%d", snap.Score)) + label.Render(" POINTS"),
	}, "   ")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Render(stats)
}

func renderCount(count components.CountInput, pool, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("QUIZ SIZE ")
	hint := ""
	if pool > 0 {
		hint = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  (max %d)", pool))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(label + count.View() + hint)
}
