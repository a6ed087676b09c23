package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/vocab"
)

var (
	// ErrNotFound is returned when grading a word id that is not in the pool.
	ErrNotFound = errors.New("word not in pool")

	// ErrNothingToDo signals a start request that had nothing to build a
	// deck from. State is left unchanged.
	ErrNothingToDo = deck.ErrNothingToDo

	// ErrInvalidMode is returned by SetMode for values outside the four modes.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrWrongMode is returned by an operation that only applies to another mode.
	ErrWrongMode = errors.New("operation not valid in current mode")

	// ErrAnswerShown is returned when answering while the previous result is
	// still displayed.
	ErrAnswerShown = errors.New("answer already shown for this card")
)

// Mode is the top-level state of the machine.
type Mode int

const (
	ModeMenu Mode = iota
	ModeQuiz
	ModeFlashcards
	ModeSummary
)

var modeNames = [...]string{"menu", "quiz", "flashcards", "summary"}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeMenu && m <= ModeSummary
}

// ParseMode maps a mode name back to its Mode.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return ModeMenu, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// LogEntry is one graded quiz answer.
type LogEntry = deck.Graded

// Ticket identifies the card a deferred advance was scheduled for. A ticket
// whose generation or position no longer matches the machine is stale.
type Ticket struct {
	Generation uint64
	Position   int
}

// State is an immutable snapshot of the machine. Slices are copies.
type State struct {
	Mode       Mode
	Deck       []vocab.Word
	Position   int
	Score      int
	Streak     int
	Log        []LogEntry
	Generation uint64
	SessionID  string

	// Revealed is true while the result for the current quiz card is shown.
	Revealed    bool
	LastCorrect bool

	// Review is true when the running quiz is a weakness review.
	Review bool

	PoolSize     int
	DarkMode     bool
	AudioEnabled bool
}

// Current returns the word at the current position.
func (s State) Current() (vocab.Word, bool) {
	if s.Position < 0 || s.Position >= len(s.Deck) {
		return vocab.Word{}, false
	}
	return s.Deck[s.Position], true
}

// WrongCount is the number of wrong answers in the log.
func (s State) WrongCount() int {
	n := 0
	for _, e := range s.Log {
		if !e.IsCorrect {
			n++
		}
	}
	return n
}

// Progress is the fraction of the deck answered so far.
func (s State) Progress() float64 {
	if len(s.Deck) == 0 {
		return 0
	}
	return float64(len(s.Log)) / float64(len(s.Deck))
}
