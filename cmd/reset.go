package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errResetNotConfirmed = errors.New("refusing to reset progress without --yes")

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset learner data",
		Long:  "Delete the stored score, streak, per-word progress and preferences.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errResetNotConfirmed
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.StateRepo().Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset progress: %w", err)
			}
			stderrLogger(cfg).Info("progress reset")
			fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm deleting all progress")
	return cmd
}
