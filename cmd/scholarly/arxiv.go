package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/scholarly/internal/arxiv"
)

var arxivCmd = &cobra.Command{
	Use:   "arxiv",
	Short: "Query the arXiv.org API",
}

var arxivSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search arXiv for papers",
	Long: `Search queries the arXiv API for papers matching a fielded query
string (ti:, au:, abs:, cat: with AND/OR/ANDNOT) or a comma-separated
list of arXiv identifiers. At least one of --query and --id-list is
required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := toolConfig()
		if err != nil {
			return err
		}

		var req arxiv.SearchRequest
		req.SearchQuery, _ = cmd.Flags().GetString("query")
		req.IDList, _ = cmd.Flags().GetString("id-list")
		req.Start, _ = cmd.Flags().GetInt("start")
		req.MaxResults, _ = cmd.Flags().GetInt("max-results")
		req.SortBy, _ = cmd.Flags().GetString("sort-by")
		req.SortOrder, _ = cmd.Flags().GetString("sort-order")

		records, err := arxiv.New(cfg, progressSink()).Search(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

func init() {
	arxivSearchCmd.Flags().String("query", "", "fielded query string, e.g. 'all:electron'")
	arxivSearchCmd.Flags().String("id-list", "", "comma-separated arXiv identifiers")
	arxivSearchCmd.Flags().Int("start", 0, "0-based index of the first result")
	arxivSearchCmd.Flags().Int("max-results", 10, "number of results to return (max 30000)")
	arxivSearchCmd.Flags().String("sort-by", "", "sort key: relevance, lastUpdatedDate, or submittedDate")
	arxivSearchCmd.Flags().String("sort-order", "", "sort direction: ascending or descending")

	arxivCmd.AddCommand(arxivSearchCmd)
	rootCmd.AddCommand(arxivCmd)
}
