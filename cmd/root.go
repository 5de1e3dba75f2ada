package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// defaultCatalogPath is used when neither --catalog nor QUIZCHAT_CATALOG
// is set.
const defaultCatalogPath = "quiz/quiz_data.json"

var rootCmd = &cobra.Command{
	Use:   "quizchat",
	Short: "Conversational quiz runner",
	Long:  "Quizchat is a terminal chat quiz that checks free-text answers by semantic or lexical similarity.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to quiz catalog JSON (overrides QUIZCHAT_CATALOG env var)")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveCatalogPath returns the catalog path using --catalog flag (highest
// priority), then QUIZCHAT_CATALOG env var, then the default path.
func resolveCatalogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p
	}
	if p := os.Getenv("QUIZCHAT_CATALOG"); p != "" {
		return p
	}
	return defaultCatalogPath
}
