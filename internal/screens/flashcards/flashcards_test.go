package flashcards

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/feedback"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, n int) (*Screen, *session.Machine, *feedback.Recorder) {
	t.Helper()
	rec := &feedback.Recorder{}
	m := session.New(session.Config{
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Speaker: rec,
		Haptics: rec,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	words := make([]vocab.Word, n)
	for i := range words {
		words[i] = vocab.Word{
			ID:    i,
			Front: fmt.Sprintf("word%d", i),
			Back: vocab.Back{
				Meaning:      fmt.Sprintf("meaning %d", i),
				HanziPinyin:  fmt.Sprintf("pin%d", i),
				PartOfSpeech: "verb",
				Example:      "I ～ it\nai ～ it",
			},
		}
	}
	if err := m.LoadVocabulary(words); err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}
	if err := m.StartFlashcards(); err != nil {
		t.Fatalf("StartFlashcards: %v", err)
	}
	return New(m), m, rec
}

func TestFlashcards_Title(t *testing.T) {
	s, _, _ := testScreen(t, 3)
	if s.Title() != "Flashcards" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestFlashcards_Flip(t *testing.T) {
	s, m, _ := testScreen(t, 3)
	w, _ := m.Snapshot().Current()

	front := s.View(100, 30)
	if strings.Contains(front, w.Back.Meaning) {
		t.Error("front should not show the meaning")
	}

	s.Update(specialKey(tea.KeySpace))
	if !s.Flipped() {
		t.Fatal("expected card to flip")
	}
	back := s.View(100, 30)
	for _, want := range []string{w.Back.Meaning, w.Back.HanziPinyin, "VERB"} {
		if !strings.Contains(back, want) {
			t.Errorf("back missing %q", want)
		}
	}
}

func TestFlashcards_NavigationResetsFlip(t *testing.T) {
	s, m, rec := testScreen(t, 3)
	s.Update(specialKey(tea.KeySpace))

	s.Update(specialKey(tea.KeyRight))
	if m.Snapshot().Position != 1 {
		t.Errorf("position = %d, want 1", m.Snapshot().Position)
	}
	if s.Flipped() {
		t.Error("moving should show the front of the new card")
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if m.Snapshot().Position != 0 {
		t.Errorf("position = %d, want clamp at 0", m.Snapshot().Position)
	}

	if got := len(rec.Vibrations()); got < 3 {
		t.Errorf("vibrations = %d, want one per move", got)
	}
}

func TestFlashcards_WrapsForward(t *testing.T) {
	s, m, _ := testScreen(t, 2)
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	if m.Snapshot().Position != 0 {
		t.Errorf("position = %d, want wrap to 0", m.Snapshot().Position)
	}
}

func TestFlashcards_Speak(t *testing.T) {
	s, m, rec := testScreen(t, 2)
	w, _ := m.Snapshot().Current()

	s.Update(keyPress('s'))
	s.Update(keyPress('e'))

	spoken := rec.Spoken()
	if len(spoken) != 2 {
		t.Fatalf("spoken = %v, want 2 utterances", spoken)
	}
	if spoken[0] != w.Front {
		t.Errorf("word = %q, want %q", spoken[0], w.Front)
	}
	if want := "I " + w.Front + " it"; spoken[1] != want {
		t.Errorf("example = %q, want %q", spoken[1], want)
	}
}

func TestFlashcards_EscReturnsToMenu(t *testing.T) {
	s, m, _ := testScreen(t, 2)
	s.Update(specialKey(tea.KeyEscape))
	if m.Snapshot().Mode != session.ModeMenu {
		t.Errorf("mode = %v, want menu", m.Snapshot().Mode)
	}
}

func TestHighlight(t *testing.T) {
	got := highlight(vocab.ParseExample("a～b～c"), "X")
	if strings.Count(got, "X") != 2 {
		t.Errorf("expected the headword twice, got %q", got)
	}
}
