package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the practice prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		pool, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if summary, _ := cmd.Flags().GetBool("summary"); summary {
			fmt.Fprintf(out, "Languages:  %s\n", strings.Join(catalog.Languages(pool), ", "))
			fmt.Fprintf(out, "Categories: %s\n", strings.Join(catalog.Categories(pool), ", "))
			fmt.Fprintf(out, "Prompts:    %d\n", len(pool))
			return nil
		}

		language, _ := cmd.Flags().GetString("language")
		category, _ := cmd.Flags().GetString("category")
		prompts := catalog.Filter(pool, language, category)

		fmt.Fprintf(out, "%-16s  %-8s  %-12s  %s\n", "ID", "Lang", "Category", "Text")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, p := range prompts {
			fmt.Fprintf(out, "%-16s  %-8s  %-12s  %s\n", p.ID, p.Language, truncate(p.Category, 12), p.Text)
		}
		fmt.Fprintf(out, "\n%d prompts\n", len(prompts))
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("language", "", "Filter by language tag")
	catalogCmd.Flags().String("category", "", "Filter by category")
	catalogCmd.Flags().Bool("summary", false, "Only list languages and categories")
}
