package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/scholarly/internal/semanticscholar"
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Query the Semantic Scholar snippet search endpoint",
}

var snippetsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for text snippets from paper abstracts and bodies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}

		req := semanticscholar.SnippetSearchRequest{Query: args[0]}
		req.Limit, _ = cmd.Flags().GetInt("limit")
		req.Fields, _ = cmd.Flags().GetString("fields")
		req.PaperIDs, _ = cmd.Flags().GetString("paper-ids")
		req.MinCitationCount, _ = cmd.Flags().GetInt("min-citation-count")
		req.PublicationDateOrYear, _ = cmd.Flags().GetString("publication-date-or-year")
		req.Year, _ = cmd.Flags().GetString("year")
		req.Venue, _ = cmd.Flags().GetString("venue")
		req.FieldsOfStudy, _ = cmd.Flags().GetString("fields-of-study")

		records, err := c.SearchSnippets(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

func init() {
	snippetsSearchCmd.Flags().Int("limit", 0, "number of snippets to return")
	snippetsSearchCmd.Flags().String("fields", "", "comma-separated snippet fields to return")
	snippetsSearchCmd.Flags().String("paper-ids", "", "comma-separated paper ids to restrict the search to")
	snippetsSearchCmd.Flags().Int("min-citation-count", 0, "minimum number of citations")
	snippetsSearchCmd.Flags().String("publication-date-or-year", "", "date or year range")
	snippetsSearchCmd.Flags().String("year", "", "publication year or range")
	snippetsSearchCmd.Flags().String("venue", "", "comma-separated venues")
	snippetsSearchCmd.Flags().String("fields-of-study", "", "comma-separated fields of study")

	snippetsCmd.AddCommand(snippetsSearchCmd)
	rootCmd.AddCommand(snippetsCmd)
}
