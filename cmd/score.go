package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/similarity"
)

var scoreCmd = &cobra.Command{
	Use:   "score <expected> <heard>",
	Short: "Score a transcript against a target sentence",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := similarity.Evaluate(args[0], args[1])
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "similarity: %.3f\n", o.Similarity)
		fmt.Fprintf(out, "tier:       %s\n", o.Tier)
		fmt.Fprintf(out, "delta:      %+d\n", o.ScoreDelta)
		return nil
	},
}
