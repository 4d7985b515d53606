package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "echoz",
	Short: "Repeat-after-me pronunciation practice",
	Long: `echoz shows a sentence, listens while you read it aloud and tells you how
close you got. Missed sentences come back more often in later rounds.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides ECHOZ_DB env var)")
	pf.String("config", "", "Path to config file (overrides ECHOZ_CONFIG env var)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	pf.Bool("simulate", false, "Type instead of speaking; no microphone or speech model needed")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
