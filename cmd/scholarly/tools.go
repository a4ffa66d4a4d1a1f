package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholarly/internal/arxiv"
	"github.com/pdiddy/scholarly/internal/semanticscholar"
	"github.com/pdiddy/scholarly/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed to LLM chat hosts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := toolConfig()
		if err != nil {
			return err
		}

		list := tools.All(arxiv.New(cfg, nil), semanticscholar.New(cfg, nil))
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			type entry struct {
				Name        string         `json:"name"`
				Description string         `json:"description"`
				Parameters  map[string]any `json:"parameters"`
			}
			out := make([]entry, 0, len(list))
			for _, t := range list {
				out = append(out, entry{t.Name, t.Description, t.Parameters})
			}
			return printJSON(out)
		}

		for _, t := range list {
			fmt.Printf("%-22s %s\n", t.Name, t.Description)
		}
		return nil
	},
}

func init() {
	toolsCmd.Flags().Bool("json", false, "output tool schemas as JSON")
	rootCmd.AddCommand(toolsCmd)
}
