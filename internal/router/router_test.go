package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/screen"
)

type keyMsg struct{}

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	next    screen.Screen
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	if s.next != nil {
		return s.next, nil
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestReset(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Reset(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on reset screen")
	}
	if got := r.View(80, 24); got != "second" {
		t.Errorf("View = %q, want %q", got, "second")
	}
}

func TestUpdateKeepsReturnedScreen(t *testing.T) {
	s2 := &stubScreen{title: "second"}
	r := New(&stubScreen{title: "first", next: s2})

	r.Update(keyMsg{})

	if r.Active() != s2 {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if s2.initRan {
		t.Error("Update must not Init the returned screen")
	}
}

func TestNilScreen(t *testing.T) {
	r := New(nil)
	if cmd := r.Update(keyMsg{}); cmd != nil {
		t.Error("expected nil cmd without a screen")
	}
	if got := r.View(80, 24); got != "" {
		t.Errorf("View = %q, want empty", got)
	}
}
