package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/app"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/screens/home"
	practicescreen "github.com/abhisek/echoz/internal/screens/practice"
)

// runApp builds the runtime and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	setup := rt.setup(cmd)
	deps := practicescreen.Deps{
		Practice:    rt.practice,
		Recorder:    rt.recorder,
		Pool:        rt.pool,
		Setup:       setup,
		MaxDuration: rt.cfg.Recording.MaxDuration,
	}
	if rt.typist != nil {
		deps.Typist = rt.typist
	}

	scope := setup.Language
	if setup.Category != "" {
		scope += " · " + setup.Category
	}

	return app.Run(ctx, app.Options{
		Home: home.Deps{
			Events:    rt.store.EventRepo(),
			Snapshots: rt.store.SnapshotRepo(),
			NewRound:  func() screen.Screen { return practicescreen.New(deps) },
			Scope:     scope,
		},
	})
}

func init() {
	rootCmd.Flags().String("language", "", "Prompt language, e.g. en-US (default from config)")
	rootCmd.Flags().String("category", "", "Prompt category (default: all)")
	rootCmd.Flags().Int("count", 0, "Prompts per round (default from config)")
}
