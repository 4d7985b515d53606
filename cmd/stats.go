package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		events := st.EventRepo()
		total, err := events.LatestScore(ctx)
		if err != nil {
			return fmt.Errorf("query score: %w", err)
		}
		limit, _ := cmd.Flags().GetInt("limit")
		rounds, err := events.RoundSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Score: ★ %d\n", total)

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil && snap.Data.Attempts > 0 {
			d := snap.Data
			fmt.Fprintf(out, "Rounds: %d   Attempts: %d   Excellent: %d (%.0f%%)\n",
				d.RoundsPlayed, d.Attempts, d.Excellent, float64(d.Excellent)/float64(d.Attempts)*100)
		}

		if len(rounds) == 0 {
			fmt.Fprintln(out, "\nNo rounds yet.")
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-16s  %-8s  %-12s  %7s  %8s  %6s  %6s\n",
			"Date", "Lang", "Category", "Prompts", "Accuracy", "Gained", "Total")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, r := range rounds {
			category := r.Category
			if category == "" {
				category = "all"
			}
			fmt.Fprintf(out, "%-16s  %-8s  %-12s  %7d  %7.0f%%  %+6d  %6d\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Language, truncate(category, 12), r.PromptsServed,
				r.Accuracy()*100, r.ScoreGained, r.TotalScore)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent rounds to show")
}
