package session

import (
	"fmt"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/feedback"
)

// Result describes a graded quiz answer.
type Result struct {
	Correct      bool
	Chosen       int
	CorrectIndex int
	Card         deck.Card

	// Ticket must be passed to Advance once the result has been shown.
	Ticket Ticket
}

// CurrentCard returns the options for the current quiz card. The options
// are drawn once per card and stay fixed until the machine advances.
func (m *Machine) CurrentCard() (deck.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeQuiz || len(m.deck) == 0 || m.finished {
		return deck.Card{}, ErrWrongMode
	}
	return m.cardLocked(), nil
}

func (m *Machine) cardLocked() deck.Card {
	if m.card == nil {
		c := m.builder.Options(m.pool, m.deck[m.position])
		m.card = &c
	}
	return *m.card
}

// Answer grades option choice of the current card. While the result is
// shown every further answer is rejected with ErrAnswerShown.
func (m *Machine) Answer(choice int) (Result, error) {
	m.mu.Lock()
	if m.mode != ModeQuiz || len(m.deck) == 0 || m.finished {
		m.mu.Unlock()
		return Result{}, ErrWrongMode
	}
	if m.revealed {
		m.mu.Unlock()
		return Result{}, ErrAnswerShown
	}

	card := m.cardLocked()
	if choice < 0 || choice >= len(card.Options) {
		m.mu.Unlock()
		return Result{}, fmt.Errorf("choice %d out of range [0, %d)", choice, len(card.Options))
	}

	correct := choice == card.CorrectIndex
	if err := m.submitLocked(card.Word.ID, correct); err != nil {
		m.mu.Unlock()
		return Result{}, err
	}
	m.revealed = true
	m.lastCorrect = correct

	res := Result{
		Correct:      correct,
		Chosen:       choice,
		CorrectIndex: card.CorrectIndex,
		Card:         card,
		Ticket:       m.ticketLocked(),
	}
	audio := m.audioEnabled
	notify := m.publish(EventAnswered)
	m.mu.Unlock()

	m.haptics.Vibrate(feedback.Medium)
	if correct {
		if audio {
			m.speaker.Speak(card.Word.Front)
		}
		m.haptics.Vibrate(feedback.Success)
	} else {
		m.haptics.Vibrate(feedback.Error)
	}
	notify()
	return res, nil
}

func (m *Machine) ticketLocked() Ticket {
	return Ticket{Generation: m.generation, Position: m.position}
}

// PendingAdvance returns a fresh ticket when a quiz result is on screen and
// waiting to be advanced past.
func (m *Machine) PendingAdvance() (Ticket, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeQuiz || !m.revealed {
		return Ticket{}, false
	}
	return m.ticketLocked(), true
}

// Advance moves past the shown result for t. It reports false and does
// nothing for a stale ticket. Past the last card the quiz ends in summary
// mode; quiz decks never wrap.
func (m *Machine) Advance(t Ticket) bool {
	m.mu.Lock()
	if m.mode != ModeQuiz || !m.revealed || t != m.ticketLocked() {
		m.mu.Unlock()
		m.logger.Debug("ignoring stale advance",
			"ticket_generation", t.Generation,
			"ticket_position", t.Position,
		)
		return false
	}

	m.revealed = false
	m.card = nil

	kind := EventAdvanced
	if m.position+1 >= len(m.deck) {
		m.mode = ModeSummary
		m.finished = true
		m.generation++
		m.logFinishedLocked()
		kind = EventModeChanged
	} else {
		m.position++
	}
	notify := m.publish(kind)
	m.mu.Unlock()

	notify()
	return true
}
