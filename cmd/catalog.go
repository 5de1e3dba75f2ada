package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quizchat/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect quiz catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveCatalogPath(cmd)
		questions, err := catalog.Load(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d questions OK\n", path, len(questions))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in a catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveCatalogPath(cmd)
		questions, err := catalog.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("%-6s  %-10s  %-7s  %-8s  %s\n", "ID", "Topic", "Golds", "Choices", "Question")
		fmt.Println(strings.Repeat("─", 80))

		for _, q := range questions {
			topic := q.Topic
			if topic == "" {
				topic = "-"
			}
			text := q.Text
			if len(text) > 44 {
				text = text[:44]
			}
			fmt.Printf("%-6s  %-10s  %-7d  %-8d  %s\n",
				q.ID, topic, len(q.Answers), len(q.Choices), text)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
