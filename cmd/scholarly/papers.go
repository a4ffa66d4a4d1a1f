package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/scholarly/internal/semanticscholar"
)

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "Query the Semantic Scholar paper endpoints",
}

// s2Client builds a Semantic Scholar client from the effective config.
func s2Client() (*semanticscholar.Client, error) {
	cfg, err := toolConfig()
	if err != nil {
		return nil, err
	}
	return semanticscholar.New(cfg, progressSink()), nil
}

// listRequestFromFlags reads the shared pagination flags.
func listRequestFromFlags(cmd *cobra.Command) semanticscholar.ListRequest {
	var req semanticscholar.ListRequest
	req.Offset, _ = cmd.Flags().GetInt("offset")
	req.Limit, _ = cmd.Flags().GetInt("limit")
	req.Fields, _ = cmd.Flags().GetString("fields")
	return req
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("offset", 0, "0-based pagination offset")
	cmd.Flags().Int("limit", 0, "number of results to return")
	cmd.Flags().String("fields", "", "comma-separated fields to return")
}

var papersSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search papers by relevance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}

		req := semanticscholar.PaperSearchRequest{Query: args[0]}
		req.Fields, _ = cmd.Flags().GetString("fields")
		req.Limit, _ = cmd.Flags().GetInt("limit")
		req.Offset, _ = cmd.Flags().GetInt("offset")
		req.PublicationTypes, _ = cmd.Flags().GetString("publication-types")
		req.OpenAccessPDF, _ = cmd.Flags().GetBool("open-access-pdf")
		req.MinCitationCount, _ = cmd.Flags().GetInt("min-citation-count")
		req.PublicationDateOrYear, _ = cmd.Flags().GetString("publication-date-or-year")
		req.Year, _ = cmd.Flags().GetString("year")
		req.Venue, _ = cmd.Flags().GetString("venue")
		req.FieldsOfStudy, _ = cmd.Flags().GetString("fields-of-study")

		page, err := c.SearchPapers(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var papersBulkCmd = &cobra.Command{
	Use:   "bulk <query>",
	Short: "Bulk-search papers with boolean query syntax",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}

		req := semanticscholar.BulkSearchRequest{Query: args[0]}
		req.Fields, _ = cmd.Flags().GetString("fields")
		req.Sort, _ = cmd.Flags().GetString("sort")
		req.Token, _ = cmd.Flags().GetString("token")
		req.PublicationTypes, _ = cmd.Flags().GetString("publication-types")
		req.OpenAccessPDF, _ = cmd.Flags().GetBool("open-access-pdf")
		req.MinCitationCount, _ = cmd.Flags().GetInt("min-citation-count")
		req.PublicationDateOrYear, _ = cmd.Flags().GetString("publication-date-or-year")
		req.Year, _ = cmd.Flags().GetString("year")
		req.Venue, _ = cmd.Flags().GetString("venue")
		req.FieldsOfStudy, _ = cmd.Flags().GetString("fields-of-study")

		page, err := c.SearchPapersBulk(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var papersMatchCmd = &cobra.Command{
	Use:   "match <title>",
	Short: "Find the paper that best matches a title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}

		req := semanticscholar.TitleSearchRequest{Query: args[0]}
		req.Fields, _ = cmd.Flags().GetString("fields")

		record, err := c.MatchPaperTitle(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var papersAutocompleteCmd = &cobra.Command{
	Use:   "autocomplete <query>",
	Short: "Suggest paper completions for a partial query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		records, err := c.AutocompletePapers(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

var papersGetCmd = &cobra.Command{
	Use:   "get <paper-id>",
	Short: "Fetch a single paper by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		fields, _ := cmd.Flags().GetString("fields")

		record, err := c.Paper(cmd.Context(), args[0], fields)
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var papersAuthorsCmd = &cobra.Command{
	Use:   "authors <paper-id>",
	Short: "List the authors of a paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		page, err := c.PaperAuthors(cmd.Context(), args[0], listRequestFromFlags(cmd))
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var papersCitationsCmd = &cobra.Command{
	Use:   "citations <paper-id>",
	Short: "List the papers that cite a paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		page, err := c.PaperCitations(cmd.Context(), args[0], listRequestFromFlags(cmd))
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var papersReferencesCmd = &cobra.Command{
	Use:   "references <paper-id>",
	Short: "List the papers a paper cites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		page, err := c.PaperReferences(cmd.Context(), args[0], listRequestFromFlags(cmd))
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var papersBatchCmd = &cobra.Command{
	Use:   "batch <paper-id>...",
	Short: "Fetch up to 500 papers in one request",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		fields, _ := cmd.Flags().GetString("fields")

		records, err := c.PapersBatch(cmd.Context(), semanticscholar.BatchRequest{
			IDs:    args,
			Fields: fields,
		})
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{papersSearchCmd, papersBulkCmd} {
		cmd.Flags().String("fields", "", "comma-separated fields to return")
		cmd.Flags().String("publication-types", "", "comma-separated publication types")
		cmd.Flags().Bool("open-access-pdf", false, "restrict to papers with a public PDF")
		cmd.Flags().Int("min-citation-count", 0, "minimum number of citations")
		cmd.Flags().String("publication-date-or-year", "", "date or year range, e.g. 2015:2020")
		cmd.Flags().String("year", "", "publication year or range")
		cmd.Flags().String("venue", "", "comma-separated venues")
		cmd.Flags().String("fields-of-study", "", "comma-separated fields of study")
	}
	papersSearchCmd.Flags().Int("limit", 0, "number of results to return (max 100)")
	papersSearchCmd.Flags().Int("offset", 0, "0-based pagination offset")
	papersBulkCmd.Flags().String("sort", "", "sort as field:direction, e.g. citationCount:desc")
	papersBulkCmd.Flags().String("token", "", "continuation token from a previous page")

	papersMatchCmd.Flags().String("fields", "", "comma-separated fields to return")
	papersGetCmd.Flags().String("fields", "", "comma-separated fields to return")
	papersBatchCmd.Flags().String("fields", "", "comma-separated fields to return")

	addListFlags(papersAuthorsCmd)
	addListFlags(papersCitationsCmd)
	addListFlags(papersReferencesCmd)

	papersCmd.AddCommand(papersSearchCmd, papersBulkCmd, papersMatchCmd,
		papersAutocompleteCmd, papersGetCmd, papersAuthorsCmd,
		papersCitationsCmd, papersReferencesCmd, papersBatchCmd)
	rootCmd.AddCommand(papersCmd)
}
