package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizchat/internal/app"
	"quizchat/internal/catalog"
	"quizchat/internal/match"
	"quizchat/internal/quiz"
)

// runApp loads the catalog, probes the scoring strategy, and launches the
// chat TUI. A missing or invalid catalog is fatal; a missing embedding
// backend only downgrades matching to lexical overlap.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	path := resolveCatalogPath(cmd)
	questions, err := catalog.Load(path)
	if err != nil {
		return err
	}

	cfg := match.ConfigFromEnv()
	scorer, err := match.NewScorer(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Embedding backend not available:", err)
		fmt.Fprintln(os.Stderr, "Falling back to lexical matching.")
	}

	checker := match.NewChecker(scorer, cfg.ThresholdFor(scorer))
	state := quiz.NewState(questions, checker)

	return app.Run(state, scorer.Name())
}
