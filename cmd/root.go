package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/store"
)

// newRootCmd builds the command tree. Tests build a fresh tree per run so
// flag values never leak between invocations.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "prepdeck",
		Short:         "Vocabulary flashcards and speed quizzes",
		Long:          "PrepDeck is a terminal app for drilling a vocabulary list with flashcards and timed multiple-choice quizzes.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/prepdeck/config.yaml)")
	flags.String("vocab", "", "Vocabulary file path or http(s) URL (default: built-in sample list)")
	flags.String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")
	flags.Int("count", config.DefaultQuizCount, "Default number of words per quiz")
	flags.String("audio-cmd", "", "Text-to-speech command; the text is appended as the last argument")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Log file (default $XDG_STATE_HOME/prepdeck/prepdeck.log)")

	root.AddCommand(newStatsCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(versionCmd)
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads configuration with cmd's flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path from configuration (flag, then
// PREPDECK_DB, then config file), falling back to the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if p := cfg.Store.DB; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the progress database named by cfg.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
