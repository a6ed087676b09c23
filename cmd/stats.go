package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/spacedrep"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/vocab"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		Long:  "Print per-word progress, most due first, with the last known score and streak.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := stderrLogger(cfg)

			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			state, err := st.StateRepo().Load(ctx)
			if err != nil && !errors.Is(err, store.ErrCorrupt) {
				return err
			}
			if err != nil {
				logger.Warn("stored progress is unreadable", "error", err)
			}

			// Fronts are best effort; ids still print when the list is unavailable.
			fronts := make(map[int]string)
			loader := vocab.NewLoader(cfg.Vocab.Source, &http.Client{Timeout: cfg.Vocab.Timeout})
			if words, err := loader.Load(ctx); err != nil {
				logger.Warn("vocabulary unavailable, showing ids only", "error", err)
			} else {
				for _, w := range words {
					fronts[w.ID] = w.Front
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Score: %d   Streak: %d   Words studied: %d\n\n",
				state.Score, state.Streak, len(state.UserProgress))
			if len(state.UserProgress) == 0 {
				fmt.Fprintln(out, "No progress yet.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWORD\tINTERVAL\tREVIEWS")
			for _, id := range spacedrep.DueOrder(state.UserProgress) {
				rec := state.UserProgress[id]
				front, ok := fronts[id]
				if !ok {
					front = "?"
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", id, front, rec.Interval, rec.Reviews)
			}
			return tw.Flush()
		},
	}
}
