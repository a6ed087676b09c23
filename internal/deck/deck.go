// Package deck builds flashcard, quiz and weakness-review decks and the
// multiple-choice options for a quiz card.
package deck

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/prepdeck/internal/shuffle"
	"github.com/abhisek/prepdeck/internal/vocab"
)

// ErrNothingToDo signals that a deck could not be built because there is
// nothing to put in it. It is not a failure; callers leave state unchanged.
var ErrNothingToDo = errors.New("nothing to do")

// DistractorCount is the number of wrong options shown with each quiz card.
const DistractorCount = 3

// Graded is a word together with the outcome of grading it.
type Graded struct {
	vocab.Word
	IsCorrect bool `json:"isCorrect"`
}

// Builder constructs decks. Every deck is a fresh slice; the source pool is
// never modified.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder drawing randomness from rng.
func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		rng = shuffle.NewRand()
	}
	return &Builder{rng: rng}
}

// Flashcards returns the whole pool in random order.
func (b *Builder) Flashcards(pool []vocab.Word) ([]vocab.Word, error) {
	if len(pool) == 0 {
		return nil, ErrNothingToDo
	}
	return shuffle.Shuffle(b.rng, pool), nil
}

// Quiz returns ClampCount(count, len(pool)) words drawn from a shuffled pool.
func (b *Builder) Quiz(pool []vocab.Word, count int) ([]vocab.Word, error) {
	if len(pool) == 0 {
		return nil, ErrNothingToDo
	}
	return shuffle.Shuffle(b.rng, pool)[:ClampCount(count, len(pool))], nil
}

// Weakness returns every wrongly answered word from log, shuffled.
func (b *Builder) Weakness(log []Graded) ([]vocab.Word, error) {
	missed := Missed(log)
	if len(missed) == 0 {
		return nil, ErrNothingToDo
	}
	return shuffle.Shuffle(b.rng, missed), nil
}

// Missed returns the words answered wrongly in log, in log order.
func Missed(log []Graded) []vocab.Word {
	var missed []vocab.Word
	for _, e := range log {
		if !e.IsCorrect {
			missed = append(missed, e.Word)
		}
	}
	return missed
}

// ClampCount bounds a requested quiz size to [1, poolSize].
func ClampCount(count, poolSize int) int {
	if count > poolSize {
		count = poolSize
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Card is a quiz prompt with its shuffled answer options.
type Card struct {
	Word         vocab.Word
	Options      []vocab.Word
	CorrectIndex int
}

// Options picks up to DistractorCount distinct wrong options from pool,
// adds current and shuffles the set. Small pools yield fewer distractors.
func (b *Builder) Options(pool []vocab.Word, current vocab.Word) Card {
	others := make([]vocab.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != current.ID {
			others = append(others, w)
		}
	}

	options := append(shuffle.Sample(b.rng, others, DistractorCount), current)
	options = shuffle.Shuffle(b.rng, options)

	correct := 0
	for i, o := range options {
		if o.ID == current.ID {
			correct = i
			break
		}
	}
	return Card{Word: current, Options: options, CorrectIndex: correct}
}
