// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"

	"github.com/pdiddy/scholarly/internal/arxiv"
)

// Arxiv returns the tools backed by the arXiv client.
func Arxiv(c *arxiv.Client) []Tool {
	return []Tool{
		{
			Name: "search_arxiv",
			Description: "Search arXiv.org for academic papers and preprints. Supports fielded " +
				"queries (ti:, au:, abs:, cat:) with AND/OR/ANDNOT operators, or a list of " +
				"arXiv identifiers. Returns paper metadata including title, abstract, authors, " +
				"and categories.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"search_query": map[string]any{
						"type":        "string",
						"description": "Query string, e.g. 'all:electron' or 'ti:\"quantum computing\" AND cat:cs.AI'.",
					},
					"id_list": map[string]any{
						"type":        "string",
						"description": "Comma-separated arXiv identifiers, e.g. '2103.08220,hep-ex/0307015'.",
					},
					"start": map[string]any{
						"type":        "integer",
						"description": "0-based index of the first result.",
					},
					"max_results": map[string]any{
						"type":        "integer",
						"description": "Number of results to return, at most 30000.",
					},
					"sort_by": map[string]any{
						"type": "string",
						"enum": []string{"relevance", "lastUpdatedDate", "submittedDate"},
					},
					"sort_order": map[string]any{
						"type": "string",
						"enum": []string{"ascending", "descending"},
					},
				},
			},
			Handler: func(ctx context.Context, args string) (string, error) {
				var req arxiv.SearchRequest
				if err := decodeArgs(args, &req); err != nil {
					return "", err
				}
				records, err := c.Search(ctx, req)
				if err != nil {
					return "", err
				}
				return encodeResult(records)
			},
		},
	}
}
