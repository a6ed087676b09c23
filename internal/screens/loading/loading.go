// Package loading implements the splash screen shown while the vocabulary
// list is fetched, and the retry prompt shown when fetching fails.
package loading

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

const tickInterval = 120 * time.Millisecond

// dots cycle after the "Loading" label.
var dotFrames = []string{"", ".", "..", "..."}

type tickMsg time.Time

// Screen is the loading splash. It never leaves by itself; the app swaps
// it out once the vocabulary arrives.
type Screen struct {
	tickCount int
	err       error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a loading screen in the fetching state.
func New() *Screen {
	return &Screen{}
}

// Failed creates a loading screen showing err with a retry prompt.
func Failed(err error) *Screen {
	return &Screen{err: err}
}

func (s *Screen) Title() string {
	return ""
}

func (s *Screen) Init() tea.Cmd {
	if s.err != nil {
		return nil
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Err returns the load failure being shown, if any.
func (s *Screen) Err() error {
	return s.err
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.err != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.err != nil {
			return s, nil
		}
		s.tickCount++
		return s, tick()

	case tea.KeyPressMsg:
		if s.err != nil && (msg.String() == "r" || msg.String() == "enter") {
			s.err = nil
			return s, tea.Batch(tick(), func() tea.Msg { return screen.RetryLoadMsg{} })
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sections := []string{RenderBanner(width), ""}

	if s.err != nil {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not load vocabulary"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-4, 60)).Align(lipgloss.Center).Render(s.err.Error()),
			"",
			theme.Hint.Render("press r to retry"),
		)
	} else {
		dots := dotFrames[s.tickCount%len(dotFrames)]
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Loading vocabulary"+dots),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimPrefix(content, "\n"))
}
