package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/scholarly/internal/semanticscholar"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Query the Semantic Scholar author endpoints",
}

var authorsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search authors by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		page, err := c.SearchAuthors(cmd.Context(), args[0], listRequestFromFlags(cmd))
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var authorsGetCmd = &cobra.Command{
	Use:   "get <author-id>",
	Short: "Fetch a single author by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		fields, _ := cmd.Flags().GetString("fields")

		record, err := c.Author(cmd.Context(), args[0], fields)
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var authorsPapersCmd = &cobra.Command{
	Use:   "papers <author-id>",
	Short: "List an author's papers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		page, err := c.AuthorPapers(cmd.Context(), args[0], listRequestFromFlags(cmd))
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var authorsBatchCmd = &cobra.Command{
	Use:   "batch <author-id>...",
	Short: "Fetch up to 1000 authors in one request",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := s2Client()
		if err != nil {
			return err
		}
		fields, _ := cmd.Flags().GetString("fields")

		records, err := c.AuthorsBatch(cmd.Context(), semanticscholar.BatchRequest{
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
	addListFlags(authorsSearchCmd)
	authorsGetCmd.Flags().String("fields", "", "comma-separated fields to return")
	addListFlags(authorsPapersCmd)
	authorsBatchCmd.Flags().String("fields", "", "comma-separated fields to return")

	authorsCmd.AddCommand(authorsSearchCmd, authorsGetCmd, authorsPapersCmd, authorsBatchCmd)
	rootCmd.AddCommand(authorsCmd)
}
