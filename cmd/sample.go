package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/sampler"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Preview the prompts a round would pick",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		pool, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		if count == 0 {
			count = cfg.Round.Count
		}
		language, _ := cmd.Flags().GetString("language")
		if language == "" {
			language = cfg.Round.Language
		}
		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			category = cfg.Round.Category
		}

		ctx := cmd.Context()
		record, err := st.MistakeRepo().Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("load mistakes: %w", err)
		}

		picked := sampler.Sample(pool, count, record,
			sampler.WithLanguage(language), sampler.WithCategory(category))
		if len(picked) == 0 {
			return fmt.Errorf("no prompts for language %q category %q", language, category)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %6s  %s\n", "ID", "Misses", "Text")
		for _, p := range picked {
			fmt.Fprintf(out, "%-16s  %6d  %s\n", p.ID, record.Count(p.ID), p.Text)
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().IntP("count", "n", 0, "Number of prompts (default from config)")
	sampleCmd.Flags().String("language", "", "Prompt language (default from config)")
	sampleCmd.Flags().String("category", "", "Prompt category (default: all)")
}
