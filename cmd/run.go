package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/app"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/feedback"
	"github.com/abhisek/prepdeck/internal/logging"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/shuffle"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/vocab"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns stdout, so logs always go to a file.
	logCfg := cfg.Log
	if logCfg.File == "" {
		if logCfg.File, err = logging.DefaultFile(); err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
	}
	logger, logCloser, err := logging.Setup(logCfg, io.Discard)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	repo := st.StateRepo()
	initial, err := repo.Load(ctx)
	switch {
	case errors.Is(err, store.ErrCorrupt):
		logger.Warn("stored progress is unreadable, starting fresh", "error", err)
	case err != nil:
		return err
	}

	writer := store.NewWriter(repo, logger)
	defer writer.Close()

	machine := session.New(session.Config{
		Rand:      shuffle.NewRand(),
		Persister: writer,
		Speaker:   feedback.NewSpeaker(cfg.Audio.Command, logger),
		Haptics:   feedback.NewTerminalHaptics(os.Stderr),
		Logger:    logger,
		Initial:   &initial,
	})
	unsubscribe := machine.Subscribe(logEvents(logger))
	defer unsubscribe()

	return app.Run(app.Options{
		Machine:      machine,
		Source:       vocab.NewLoader(cfg.Vocab.Source, &http.Client{Timeout: cfg.Vocab.Timeout}),
		QuizCount:    cfg.Quiz.DefaultCount,
		AdvanceDelay: cfg.Quiz.AdvanceDelay,
		LoadTimeout:  cfg.Vocab.Timeout,
		Logger:       logger,
	})
}

// logEvents returns a machine observer that records every event at debug
// level.
func logEvents(logger *slog.Logger) func(session.Event) {
	return func(e session.Event) {
		logger.Debug("session event",
			"event", e.Kind.String(),
			"mode", e.State.Mode.String(),
			"position", e.State.Position,
			"score", e.State.Score,
			"streak", e.State.Streak,
			"generation", e.State.Generation,
		)
	}
}

// stderrLogger is the logger for subcommands that print to stdout.
func stderrLogger(cfg *config.Config) *slog.Logger {
	return logging.New(cfg.Log.Level, os.Stderr)
}
