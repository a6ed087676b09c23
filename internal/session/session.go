// Package session implements the quiz and flashcard state machine. A single
// Machine owns the mode, active deck, position, score, streak, answer log
// and per-word progress. Hosts drive it through its methods and observe it
// through Subscribe or Snapshot.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/feedback"
	"github.com/abhisek/prepdeck/internal/spacedrep"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/vocab"
)

// CorrectPoints is added to the score for every correct answer.
const CorrectPoints = 100

// Persister receives the durable subset after every change to it.
type Persister interface {
	Save(ctx context.Context, st store.State) error
}

// Config wires a Machine to its collaborators. Nil fields get no-op or
// default implementations.
type Config struct {
	Rand      *rand.Rand
	Persister Persister
	Speaker   feedback.Speaker
	Haptics   feedback.Haptics
	Logger    *slog.Logger

	// Initial seeds score, streak, progress and preferences. Nil means
	// store.DefaultState.
	Initial *store.State
}

// Machine is the session state machine. It is safe for concurrent use;
// every operation runs to completion under one lock.
type Machine struct {
	mu sync.Mutex

	builder   *deck.Builder
	progress  *spacedrep.Scheduler
	persister Persister
	speaker   feedback.Speaker
	haptics   feedback.Haptics
	logger    *slog.Logger

	pool []vocab.Word
	byID map[int]vocab.Word

	mode       Mode
	deck       []vocab.Word
	position   int
	score      int
	streak     int
	log        []LogEntry
	generation uint64
	sessionID  string
	review     bool
	finished   bool

	revealed    bool
	lastCorrect bool
	card        *deck.Card

	darkMode     bool
	audioEnabled bool

	observers    []observer
	nextObserver int
}

// New creates a machine in menu mode with an empty pool.
func New(cfg Config) *Machine {
	initial := store.DefaultState()
	if cfg.Initial != nil {
		initial = *cfg.Initial
	}
	if cfg.Speaker == nil {
		cfg.Speaker = feedback.Nop{}
	}
	if cfg.Haptics == nil {
		cfg.Haptics = feedback.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Machine{
		builder:      deck.NewBuilder(cfg.Rand),
		progress:     spacedrep.NewScheduler(initial.UserProgress),
		persister:    cfg.Persister,
		speaker:      cfg.Speaker,
		haptics:      cfg.Haptics,
		logger:       cfg.Logger,
		byID:         make(map[int]vocab.Word),
		mode:         ModeMenu,
		score:        max(initial.Score, 0),
		streak:       max(initial.Streak, 0),
		darkMode:     initial.DarkMode,
		audioEnabled: initial.AudioEnabled,
	}
}

// LoadVocabulary replaces the pool. From menu or summary the mode is not
// changed. A quiz or flashcard session in progress draws from the old pool,
// so it is ended and the machine returns to menu.
func (m *Machine) LoadVocabulary(words []vocab.Word) error {
	if err := vocab.Validate(words); err != nil {
		return err
	}

	m.mu.Lock()
	m.pool = slices.Clone(words)
	m.byID = make(map[int]vocab.Word, len(words))
	for _, w := range words {
		m.byID[w.ID] = w
	}
	m.card = nil
	interrupted := m.mode == ModeQuiz || m.mode == ModeFlashcards
	if interrupted {
		m.mode = ModeMenu
		m.generation++
		m.deck = nil
		m.position = 0
		m.revealed = false
		m.finished = false
	}
	notify := m.publish(EventVocabularyLoaded)
	m.mu.Unlock()

	m.logger.Info("vocabulary loaded", "words", len(words), "session_ended", interrupted)
	notify()
	return nil
}

// LoadPayload parses a raw JSON word list and loads it.
func (m *Machine) LoadPayload(raw []byte) error {
	words, err := vocab.Parse(raw)
	if err != nil {
		return err
	}
	return m.LoadVocabulary(words)
}

// Pool returns a copy of the loaded words.
func (m *Machine) Pool() []vocab.Word {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.pool)
}

// StartFlashcards enters flashcard mode over the whole pool, shuffled.
func (m *Machine) StartFlashcards() error {
	m.mu.Lock()
	d, err := m.builder.Flashcards(m.pool)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.beginLocked(ModeFlashcards, d, false)
	notify := m.publish(EventSessionStarted)
	m.mu.Unlock()

	m.haptics.Vibrate(feedback.Medium)
	notify()
	return nil
}

// StartQuiz starts a quiz over count random words, clamped to the pool.
func (m *Machine) StartQuiz(count int) error {
	m.mu.Lock()
	d, err := m.builder.Quiz(m.pool, count)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.beginLocked(ModeQuiz, d, false)
	notify := m.publish(EventSessionStarted)
	m.mu.Unlock()

	m.haptics.Vibrate(feedback.Medium)
	notify()
	return nil
}

// StartWeaknessReview starts a quiz over the words answered wrongly in the
// current log. With no wrong answers it returns ErrNothingToDo and changes
// nothing.
func (m *Machine) StartWeaknessReview() error {
	m.mu.Lock()
	d, err := m.builder.Weakness(m.log)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.beginLocked(ModeQuiz, d, true)
	notify := m.publish(EventSessionStarted)
	m.mu.Unlock()

	m.haptics.Vibrate(feedback.Medium)
	notify()
	return nil
}

func (m *Machine) beginLocked(mode Mode, d []vocab.Word, review bool) {
	m.generation++
	m.sessionID = uuid.NewString()
	m.mode = mode
	m.deck = d
	m.position = 0
	m.review = review
	m.finished = false
	m.revealed = false
	m.lastCorrect = false
	m.card = nil

	if mode == ModeQuiz {
		m.score = 0
		m.streak = 0
		m.log = nil
		m.persistLocked()
	}

	m.logger.Info("session started",
		"session_id", m.sessionID,
		"mode", mode.String(),
		"deck_size", len(d),
		"generation", m.generation,
		"review", review,
	)
}

// SubmitAnswer grades wordID. It appends to the log, updates score and
// streak and records the review in the word's progress.
func (m *Machine) SubmitAnswer(wordID int, correct bool) error {
	m.mu.Lock()
	if err := m.submitLocked(wordID, correct); err != nil {
		m.mu.Unlock()
		return err
	}
	notify := m.publish(EventAnswered)
	m.mu.Unlock()

	notify()
	return nil
}

func (m *Machine) submitLocked(wordID int, correct bool) error {
	w, ok := m.byID[wordID]
	if !ok {
		m.logger.Error("grading word missing from pool",
			"word_id", wordID,
			"session_id", m.sessionID,
			"mode", m.mode.String(),
		)
		return fmt.Errorf("grade word %d: %w", wordID, ErrNotFound)
	}

	m.log = append(m.log, LogEntry{Word: w, IsCorrect: correct})
	if correct {
		m.score += CorrectPoints
		m.streak++
	} else {
		m.streak = 0
	}
	m.progress.RecordReview(wordID, spacedrep.GradeFor(correct))
	m.persistLocked()
	return nil
}

// SetMode moves directly to mode without touching deck, score or log. Any
// pending advance ticket becomes stale. Entering quiz or flashcards without
// an active deck, or re-entering a quiz whose last card was already
// advanced past, returns ErrNothingToDo.
func (m *Machine) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("set mode %d: %w", int(mode), ErrInvalidMode)
	}

	m.mu.Lock()
	if (mode == ModeQuiz || mode == ModeFlashcards) && len(m.deck) == 0 {
		m.mu.Unlock()
		return ErrNothingToDo
	}
	if mode == ModeQuiz && m.finished {
		m.mu.Unlock()
		return ErrNothingToDo
	}
	prev := m.mode
	m.mode = mode
	m.generation++
	if prev == ModeQuiz && mode == ModeSummary {
		m.logFinishedLocked()
	}
	notify := m.publish(EventModeChanged)
	m.mu.Unlock()

	notify()
	return nil
}

func (m *Machine) logFinishedLocked() {
	correct := 0
	for _, e := range m.log {
		if e.IsCorrect {
			correct++
		}
	}
	m.logger.Info("session finished",
		"session_id", m.sessionID,
		"mode", m.mode.String(),
		"deck_size", len(m.deck),
		"generation", m.generation,
		"score", m.score,
		"correct", correct,
		"answered", len(m.log),
	)
}

func (m *Machine) currentLocked() (vocab.Word, bool) {
	if m.position < 0 || m.position >= len(m.deck) {
		return vocab.Word{}, false
	}
	return m.deck[m.position], true
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() State {
	return State{
		Mode:         m.mode,
		Deck:         slices.Clone(m.deck),
		Position:     m.position,
		Score:        m.score,
		Streak:       m.streak,
		Log:          slices.Clone(m.log),
		Generation:   m.generation,
		SessionID:    m.sessionID,
		Revealed:     m.revealed,
		LastCorrect:  m.lastCorrect,
		Review:       m.review,
		PoolSize:     len(m.pool),
		DarkMode:     m.darkMode,
		AudioEnabled: m.audioEnabled,
	}
}

// persistLocked hands the durable subset to the persister. Failures are
// logged and otherwise ignored.
func (m *Machine) persistLocked() {
	if m.persister == nil {
		return
	}
	st := store.State{
		Score:        m.score,
		Streak:       m.streak,
		UserProgress: m.progress.All(),
		DarkMode:     m.darkMode,
		AudioEnabled: m.audioEnabled,
	}
	if err := m.persister.Save(context.Background(), st); err != nil {
		m.logger.Warn("persist state failed", "error", err, "session_id", m.sessionID)
	}
}
