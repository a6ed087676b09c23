package session

import "github.com/abhisek/prepdeck/internal/feedback"

// NextCard moves to the next flashcard, wrapping past the last one.
func (m *Machine) NextCard() error {
	return m.moveCard(func(pos, n int) int { return (pos + 1) % n })
}

// PrevCard moves to the previous flashcard, stopping at the first one.
func (m *Machine) PrevCard() error {
	return m.moveCard(func(pos, _ int) int { return max(pos-1, 0) })
}

func (m *Machine) moveCard(step func(pos, n int) int) error {
	m.mu.Lock()
	if m.mode != ModeFlashcards || len(m.deck) == 0 {
		m.mu.Unlock()
		return ErrWrongMode
	}
	m.position = step(m.position, len(m.deck))
	notify := m.publish(EventAdvanced)
	m.mu.Unlock()

	m.haptics.Vibrate(feedback.Light)
	notify()
	return nil
}
