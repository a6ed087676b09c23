package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/flashcards"
	"github.com/abhisek/prepdeck/internal/screens/loading"
	"github.com/abhisek/prepdeck/internal/screens/menu"
	"github.com/abhisek/prepdeck/internal/screens/quiz"
	"github.com/abhisek/prepdeck/internal/screens/summary"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
	"github.com/abhisek/prepdeck/internal/vocab"
)

// VocabSource fetches the vocabulary list.
type VocabSource interface {
	Load(ctx context.Context) ([]vocab.Word, error)
}

// Options holds the dependencies for the TUI.
type Options struct {
	Machine *session.Machine
	Source  VocabSource

	QuizCount    int
	AdvanceDelay time.Duration
	LoadTimeout  time.Duration

	Logger *slog.Logger
}

// vocabLoadedMsg carries the result of a vocabulary fetch.
type vocabLoadedMsg struct {
	words []vocab.Word
	err   error
}

// AppModel is the root Bubble Tea model. The active screen always matches
// the machine's mode; screens drive the machine and the model swaps
// screens after every update.
type AppModel struct {
	opts    Options
	machine *session.Machine
	router  *router.Router
	loaded  bool
	mode    session.Mode
	width   int
	height  int
}

// newAppModel creates a new AppModel showing the loading screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = 10 * time.Second
	}
	theme.Use(opts.Machine.Snapshot().DarkMode)
	return AppModel{
		opts:    opts,
		machine: opts.Machine,
		router:  router.New(loading.New()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadCmd())
}

func (m AppModel) loadCmd() tea.Cmd {
	src, timeout := m.opts.Source, m.opts.LoadTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		words, err := src.Load(ctx)
		return vocabLoadedMsg{words: words, err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case vocabLoadedMsg:
		return m.handleLoaded(msg)

	case screen.RetryLoadMsg:
		m.opts.Logger.Info("retrying vocabulary load")
		return m, m.loadCmd()
	}

	cmd := m.router.Update(msg)
	if !m.loaded {
		return m, cmd
	}
	swap := m.syncScreen(false)
	return m, tea.Batch(cmd, swap)
}

func (m AppModel) handleLoaded(msg vocabLoadedMsg) (tea.Model, tea.Cmd) {
	err := msg.err
	if err == nil {
		err = m.machine.LoadVocabulary(msg.words)
	}
	if err != nil {
		m.opts.Logger.Error("vocabulary load failed", "error", err)
		return m, m.router.Reset(loading.Failed(err))
	}
	m.loaded = true
	swap := m.syncScreen(true)
	return m, swap
}

// syncScreen swaps in the screen for the machine's mode when it changed.
func (m *AppModel) syncScreen(force bool) tea.Cmd {
	mode := m.machine.Snapshot().Mode
	if !force && mode == m.mode {
		return nil
	}
	m.mode = mode
	return m.router.Reset(m.screenFor(mode))
}

func (m *AppModel) screenFor(mode session.Mode) screen.Screen {
	switch mode {
	case session.ModeQuiz:
		return quiz.New(m.machine, m.opts.AdvanceDelay)
	case session.ModeFlashcards:
		return flashcards.New(m.machine)
	case session.ModeSummary:
		return summary.New(m.machine)
	default:
		return menu.New(m.machine, m.opts.QuizCount)
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	snap := m.machine.Snapshot()
	header := layout.RenderHeader(title, snap.Score, snap.Streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
