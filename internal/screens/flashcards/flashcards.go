// Package flashcards implements the flip-card browser.
package flashcards

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
	"github.com/abhisek/prepdeck/internal/vocab"
)

// Screen shows one card at a time, front first.
type Screen struct {
	machine *session.Machine
	flipped bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the flashcard screen.
func New(machine *session.Machine) *Screen {
	return &Screen{machine: machine}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Flashcards"
}

// Flipped reports whether the back of the card is showing.
func (s *Screen) Flipped() bool {
	return s.flipped
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "S", Description: "Say word"},
		{Key: "E", Description: "Say example"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "space", "enter":
		s.flipped = !s.flipped
	case "right", "l", "n":
		if s.machine.NextCard() == nil {
			s.flipped = false
		}
	case "left", "h", "p":
		if s.machine.PrevCard() == nil {
			s.flipped = false
		}
	case "s":
		s.machine.SpeakWord()
	case "e":
		s.machine.SpeakExample()
	case "esc":
		_ = s.machine.SetMode(session.ModeMenu)
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	snap := s.machine.Snapshot()
	word, ok := snap.Current()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No cards"))
	}

	cw := components.ContentWidth(width)
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%d / %d", snap.Position+1, len(snap.Deck)))

	var body string
	if s.flipped {
		body = renderBack(word, cw)
	} else {
		body = renderFront(word)
	}

	content := counter + "\n" + components.Card(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderFront(w vocab.Word) string {
	front := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(w.Front)
	hint := theme.Hint.Render("space to flip")
	return front + "\n\n" + hint
}

func renderBack(w vocab.Word, cw int) string {
	var lines []string

	lines = append(lines,
		lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(w.Front)+"  "+
			components.Badge(w.PosLabel(), posColor(w.Category())))
	if w.Back.HanziPinyin != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Render(w.Back.HanziPinyin))
	}
	lines = append(lines, "", lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw-6).
		Align(lipgloss.Center).
		Render(w.Back.Meaning))

	if w.Back.MeasureWord != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("measure word: "+w.Back.MeasureWord))
	}

	if ex := w.Example(); !ex.IsZero() {
		lines = append(lines, "", highlight(ex, w.Front))
		if ex.Transcription != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(ex.Transcription))
		}
	}
	return strings.Join(lines, "\n")
}

// highlight renders the example sentence with the headword in place of
// every placeholder.
func highlight(ex vocab.Example, headword string) string {
	plain := lipgloss.NewStyle().Foreground(theme.Text)
	mark := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Underline(true)

	segs := ex.Segments()
	var b strings.Builder
	for i, seg := range segs {
		b.WriteString(plain.Render(seg))
		if i < len(segs)-1 {
			b.WriteString(mark.Render(headword))
		}
	}
	return b.String()
}

func posColor(c vocab.PosCategory) color.Color {
	switch c {
	case vocab.PosVerb:
		return theme.Verb
	case vocab.PosNoun:
		return theme.Noun
	case vocab.PosAdjective:
		return theme.Adjective
	}
	return theme.TextDim
}
