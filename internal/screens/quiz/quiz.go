// Package quiz implements the speed quiz screen: one prompt, four numbered
// meanings, a short reveal, then the next card.
package quiz

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

// DefaultAdvanceDelay is how long a result stays on screen.
const DefaultAdvanceDelay = 1500 * time.Millisecond

// Screen implements screen.Screen for a running quiz.
type Screen struct {
	machine *session.Machine
	delay   time.Duration

	card    deck.Card
	choices components.Choices
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the quiz screen. A non-positive delay uses DefaultAdvanceDelay.
func New(machine *session.Machine, delay time.Duration) *Screen {
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}
	return &Screen{machine: machine, delay: delay}
}

// Init loads the current card. When a result was already on screen, for
// example after leaving and re-entering the quiz, it reschedules the advance.
func (s *Screen) Init() tea.Cmd {
	s.loadCard()
	if t, ok := s.machine.PendingAdvance(); ok {
		return s.scheduleAdvance(t)
	}
	return nil
}

func (s *Screen) loadCard() {
	card, err := s.machine.CurrentCard()
	if err != nil {
		s.card = deck.Card{}
		s.choices = components.Choices{}
		return
	}
	s.card = card

	labels := make([]string, len(card.Options))
	for i, o := range card.Options {
		labels[i] = o.OptionLabel()
	}
	s.choices = components.NewChoices(labels, card.CorrectIndex)
	if snap := s.machine.Snapshot(); snap.Revealed {
		s.choices.Revealed = true
	}
}

func (s *Screen) scheduleAdvance(t session.Ticket) tea.Cmd {
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return advanceMsg{ticket: t}
	})
}

func (s *Screen) Title() string {
	if s.machine.Snapshot().Review {
		return "Review"
	}
	return "Speed Quiz"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.choices.Revealed {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if s.machine.Advance(msg.ticket) {
			s.loadCard()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		if err := s.machine.SetMode(session.ModeMenu); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil
	}
	if s.choices.Revealed {
		return s, nil
	}

	switch key {
	case "1", "2", "3", "4":
		return s.answer(int(key[0] - '1'))
	case "enter":
		return s.answer(s.choices.Cursor)
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

func (s *Screen) answer(choice int) (screen.Screen, tea.Cmd) {
	if choice >= len(s.choices.Options) {
		return s, nil
	}
	res, err := s.machine.Answer(choice)
	switch {
	case errors.Is(err, session.ErrAnswerShown):
		return s, nil
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.choices.Reveal(res.Chosen)
	return s, s.scheduleAdvance(res.Ticket)
}
