package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/loading"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/vocab"
)

type fakeSource struct {
	words []vocab.Word
	err   error
	calls int
}

func (f *fakeSource) Load(context.Context) ([]vocab.Word, error) {
	f.calls++
	return f.words, f.err
}

func testWords(n int) []vocab.Word {
	words := make([]vocab.Word, n)
	for i := range words {
		words[i] = vocab.Word{ID: i, Front: fmt.Sprintf("word%d", i), Back: vocab.Back{Meaning: fmt.Sprintf("meaning %d", i)}}
	}
	return words
}

func testModel(src *fakeSource) AppModel {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newAppModel(Options{
		Machine:      session.New(session.Config{Rand: rand.New(rand.NewPCG(1, 2)), Logger: logger}),
		Source:       src,
		QuizCount:    3,
		AdvanceDelay: time.Millisecond,
		Logger:       logger,
	})
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func loaded(t *testing.T, n int) AppModel {
	t.Helper()
	src := &fakeSource{words: testWords(n)}
	m := testModel(src)
	msg := m.loadCmd()()
	m, _ = update(t, m, msg)
	return m
}

func TestStartsOnLoadingScreen(t *testing.T) {
	m := testModel(&fakeSource{})
	if _, ok := m.router.Active().(*loading.Screen); !ok {
		t.Errorf("active = %T, want loading screen", m.router.Active())
	}
}

func TestLoadedVocabularyShowsMenu(t *testing.T) {
	m := loaded(t, 6)
	if got := m.router.Active().Title(); got != "Menu" {
		t.Errorf("active = %q, want Menu", got)
	}
	if m.machine.Snapshot().PoolSize != 6 {
		t.Errorf("pool = %d, want 6", m.machine.Snapshot().PoolSize)
	}
}

func TestLoadFailureShowsRetry(t *testing.T) {
	src := &fakeSource{err: errors.New("offline")}
	m := testModel(src)
	m, _ = update(t, m, m.loadCmd()())

	ls, ok := m.router.Active().(*loading.Screen)
	if !ok || ls.Err() == nil {
		t.Fatalf("expected failed loading screen, got %T", m.router.Active())
	}

	src.err = nil
	src.words = testWords(4)
	m, cmd := update(t, m, screen.RetryLoadMsg{})
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	m, _ = update(t, m, cmd())
	if m.router.Active().Title() != "Menu" {
		t.Errorf("active = %q after retry, want Menu", m.router.Active().Title())
	}
	if src.calls != 2 {
		t.Errorf("loader calls = %d, want 2", src.calls)
	}
}

func TestInvalidVocabularyShowsRetry(t *testing.T) {
	m := testModel(&fakeSource{words: []vocab.Word{}})
	m, _ = update(t, m, m.loadCmd()())
	if ls, ok := m.router.Active().(*loading.Screen); !ok || ls.Err() == nil {
		t.Errorf("expected failed loading screen for an empty list, got %T", m.router.Active())
	}
}

func TestScreenFollowsMode(t *testing.T) {
	m := loaded(t, 6)

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.router.Active().Title(); got != "Speed Quiz" {
		t.Fatalf("active = %q, want Speed Quiz", got)
	}

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := m.router.Active().Title(); got != "Menu" {
		t.Errorf("active = %q, want Menu", got)
	}
}

func TestQuizRunsToSummary(t *testing.T) {
	m := loaded(t, 6)
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	for range 3 {
		var cmd tea.Cmd
		m, cmd = update(t, m, tea.KeyPressMsg{Code: '1', Text: "1"})
		m, _ = update(t, m, scheduledAdvance(t, cmd))
	}
	if got := m.router.Active().Title(); got != "Quiz Summary" {
		t.Errorf("active = %q, want Quiz Summary", got)
	}
}

// scheduledAdvance runs the batch returned after an answer and returns the
// quiz screen's timer message.
func scheduledAdvance(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected the quiz screen to schedule an advance")
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return msg
	}
	for _, c := range batch {
		if c != nil {
			return c()
		}
	}
	t.Fatal("empty batch")
	return nil
}

func TestCtrlCQuits(t *testing.T) {
	m := loaded(t, 3)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView(t *testing.T) {
	m := loaded(t, 3)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.frame(), "PrepDeck") {
		t.Error("expected header brand in view")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.frame(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}
