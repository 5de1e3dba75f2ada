package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizchat/internal/match"
)

var scoreCmd = &cobra.Command{
	Use:   "score <text-a> <text-b>",
	Short: "Print the similarity of two texts under the active strategy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg := match.ConfigFromEnv()
		scorer, err := match.NewScorer(ctx, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Embedding backend not available:", err)
			fmt.Fprintln(os.Stderr, "Falling back to lexical matching.")
		}

		score := scorer.Score(ctx, args[0], args[1])
		fmt.Printf("strategy:   %s\n", scorer.Name())
		fmt.Printf("threshold:  %.2f\n", cfg.ThresholdFor(scorer))
		fmt.Printf("similarity: %.4f\n", score)
		return nil
	},
}
