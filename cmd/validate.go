package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/vocab"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|url>",
		Short: "Check a vocabulary list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := vocab.NewLoader(args[0], nil).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("validate %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words OK\n", args[0], len(words))
			return nil
		},
	}
}
