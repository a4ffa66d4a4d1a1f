// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"

	"github.com/pdiddy/scholarly/internal/semanticscholar"
)

// Argument shapes for the id-based operations. The embedded request
// structs flatten into the same JSON object as the id field.
type paperArgs struct {
	PaperID string `json:"paper_id"`
	Fields  string `json:"fields,omitempty"`
}

type paperListArgs struct {
	PaperID string `json:"paper_id"`
	semanticscholar.ListRequest
}

type authorArgs struct {
	AuthorID string `json:"author_id"`
	Fields   string `json:"fields,omitempty"`
}

type authorListArgs struct {
	AuthorID string `json:"author_id"`
	semanticscholar.ListRequest
}

type authorSearchArgs struct {
	Query string `json:"query"`
	semanticscholar.ListRequest
}

type autocompleteArgs struct {
	Query string `json:"query"`
}

type batchArgs struct {
	IDs    []string `json:"ids"`
	Fields string   `json:"fields,omitempty"`
}

// Shared JSON Schema fragments.
var (
	fieldsProp = map[string]any{
		"type":        "string",
		"description": "Comma-separated fields to return, e.g. 'title,authors,year'. Dot notation reaches subfields.",
	}
	offsetProp = map[string]any{
		"type":        "integer",
		"description": "0-based pagination offset.",
	}
)

func limitProp(ceiling int) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Number of results to return.",
		"maximum":     ceiling,
	}
}

func objectSchema(required []string, props map[string]any) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// SemanticScholar returns the tools backed by the Semantic Scholar client.
func SemanticScholar(c *semanticscholar.Client) []Tool {
	return []Tool{
		{
			Name: "search_papers",
			Description: "Search Semantic Scholar for papers by relevance. Supports filters on " +
				"publication type, venue, year, field of study, citation count, and open access.",
			Parameters: objectSchema([]string{"query"}, map[string]any{
				"query":  map[string]any{"type": "string", "description": "Plain-text search string."},
				"fields": fieldsProp,
				"limit":  limitProp(100),
				"offset": offsetProp,
				"publication_types": map[string]any{
					"type":        "string",
					"description": "Comma-separated publication types, e.g. 'JournalArticle,Review'.",
				},
				"open_access_pdf": map[string]any{
					"type":        "boolean",
					"description": "Restrict results to papers with a public PDF.",
				},
				"min_citation_count": map[string]any{"type": "integer"},
				"publication_date_or_year": map[string]any{
					"type":        "string",
					"description": "Date or year range, e.g. '2015:2020' or '2020-06'.",
				},
				"year":            map[string]any{"type": "string", "description": "Publication year or range, e.g. '2016-2020'."},
				"venue":           map[string]any{"type": "string", "description": "Comma-separated venues."},
				"fields_of_study": map[string]any{"type": "string", "description": "Comma-separated fields of study."},
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var req semanticscholar.PaperSearchRequest
				if err := decodeArgs(args, &req); err != nil {
					return "", err
				}
				page, err := c.SearchPapers(ctx, req)
				if err != nil {
					return "", err
				}
				return encodeResult(page)
			},
		},
		{
			Name: "search_papers_bulk",
			Description: "Bulk-search Semantic Scholar for papers. Supports boolean query syntax " +
				"(+, |, -, *, quoted phrases) and token-based pagination for large result sets.",
			Parameters: objectSchema([]string{"query"}, map[string]any{
				"query":  map[string]any{"type": "string", "description": "Boolean query string, e.g. '\"fish ladder\" -outflow'."},
				"fields": fieldsProp,
				"sort": map[string]any{
					"type":        "string",
					"description": "Sort order as field:direction, e.g. 'citationCount:desc'.",
				},
				"token": map[string]any{
					"type":        "string",
					"description": "Continuation token from a previous response.",
				},
				"publication_types":        map[string]any{"type": "string"},
				"open_access_pdf":          map[string]any{"type": "boolean"},
				"min_citation_count":       map[string]any{"type": "integer"},
				"publication_date_or_year": map[string]any{"type": "string"},
				"year":                     map[string]any{"type": "string"},
				"venue":                    map[string]any{"type": "string"},
				"fields_of_study":          map[string]any{"type": "string"},
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var req semanticscholar.BulkSearchRequest
				if err := decodeArgs(args, &req); err != nil {
					return "", err
				}
				page, err := c.SearchPapersBulk(ctx, req)
				if err != nil {
					return "", err
				}
				return encodeResult(page)
			},
		},
		{
			Name:        "match_paper_title",
			Description: "Find the single Semantic Scholar paper that best matches a title.",
			Parameters: objectSchema([]string{"query"}, map[string]any{
				"query":  map[string]any{"type": "string", "description": "Paper title to match."},
				"fields": fieldsProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var req semanticscholar.TitleSearchRequest
				if err := decodeArgs(args, &req); err != nil {
					return "", err
				}
				record, err := c.MatchPaperTitle(ctx, req)
				if err != nil {
					return "", err
				}
				return encodeResult(record)
			},
		},
		{
			Name:        "autocomplete_papers",
			Description: "Suggest paper completions for a partial query string.",
			Parameters: objectSchema([]string{"query"}, map[string]any{
				"query": map[string]any{"type": "string", "description": "Partial search text."},
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a autocompleteArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				records, err := c.AutocompletePapers(ctx, a.Query)
				if err != nil {
					return "", err
				}
				return encodeResult(records)
			},
		},
		{
			Name: "get_paper",
			Description: "Fetch details of a single paper by identifier. Accepts Semantic Scholar " +
				"ids as well as prefixed external ids such as DOI:, ARXIV:, PMID:, or CorpusId:.",
			Parameters: objectSchema([]string{"paper_id"}, map[string]any{
				"paper_id": map[string]any{"type": "string", "description": "Paper identifier, e.g. 'DOI:10.18653/v1/N18-3011'."},
				"fields":   fieldsProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a paperArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				record, err := c.Paper(ctx, a.PaperID, a.Fields)
				if err != nil {
					return "", err
				}
				return encodeResult(record)
			},
		},
		{
			Name:        "get_paper_authors",
			Description: "List the authors of a paper.",
			Parameters: objectSchema([]string{"paper_id"}, map[string]any{
				"paper_id": map[string]any{"type": "string"},
				"fields":   fieldsProp,
				"limit":    limitProp(1000),
				"offset":   offsetProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a paperListArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				page, err := c.PaperAuthors(ctx, a.PaperID, a.ListRequest)
				if err != nil {
					return "", err
				}
				return encodeResult(page)
			},
		},
		{
			Name:        "get_paper_citations",
			Description: "List the papers that cite a paper.",
			Parameters: objectSchema([]string{"paper_id"}, map[string]any{
				"paper_id": map[string]any{"type": "string"},
				"fields":   fieldsProp,
				"limit":    limitProp(1000),
				"offset":   offsetProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a paperListArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				page, err := c.PaperCitations(ctx, a.PaperID, a.ListRequest)
				if err != nil {
					return "", err
				}
				return encodeResult(page)
			},
		},
		{
			Name:        "get_paper_references",
			Description: "List the papers a paper cites.",
			Parameters: objectSchema([]string{"paper_id"}, map[string]any{
				"paper_id": map[string]any{"type": "string"},
				"fields":   fieldsProp,
				"limit":    limitProp(1000),
				"offset":   offsetProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a paperListArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				page, err := c.PaperReferences(ctx, a.PaperID, a.ListRequest)
				if err != nil {
					return "", err
				}
				return encodeResult(page)
			},
		},
		{
			Name: "get_papers_batch",
			Description: "Fetch details of up to 500 papers in a single request. Results arrive " +
				"in the same order as the ids; unresolved ids yield null.",
			Parameters: objectSchema([]string{"ids"}, map[string]any{
				"ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Paper identifiers, at most 500.",
				},
				"fields": fieldsProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a batchArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				records, err := c.PapersBatch(ctx, semanticscholar.BatchRequest{IDs: a.IDs, Fields: a.Fields})
				if err != nil {
					return "", err
				}
				return encodeResult(records)
			},
		},
		{
			Name:        "search_authors",
			Description: "Search Semantic Scholar for authors by name.",
			Parameters: objectSchema([]string{"query"}, map[string]any{
				"query":  map[string]any{"type": "string", "description": "Author name to search for."},
				"fields": fieldsProp,
				"limit":  limitProp(1000),
				"offset": offsetProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a authorSearchArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				page, err := c.SearchAuthors(ctx, a.Query, a.ListRequest)
				if err != nil {
					return "", err
				}
				return encodeResult(page)
			},
		},
		{
			Name:        "get_author",
			Description: "Fetch details of a single author by Semantic Scholar author id.",
			Parameters: objectSchema([]string{"author_id"}, map[string]any{
				"author_id": map[string]any{"type": "string"},
				"fields":    fieldsProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a authorArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				record, err := c.Author(ctx, a.AuthorID, a.Fields)
				if err != nil {
					return "", err
				}
				return encodeResult(record)
			},
		},
		{
			Name:        "get_author_papers",
			Description: "List an author's papers.",
			Parameters: objectSchema([]string{"author_id"}, map[string]any{
				"author_id": map[string]any{"type": "string"},
				"fields":    fieldsProp,
				"limit":     limitProp(1000),
				"offset":    offsetProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a authorListArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				page, err := c.AuthorPapers(ctx, a.AuthorID, a.ListRequest)
				if err != nil {
					return "", err
				}
				return encodeResult(page)
			},
		},
		{
			Name: "get_authors_batch",
			Description: "Fetch details of up to 1000 authors in a single request. Results arrive " +
				"in the same order as the ids; unresolved ids yield null.",
			Parameters: objectSchema([]string{"ids"}, map[string]any{
				"ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Author identifiers, at most 1000.",
				},
				"fields": fieldsProp,
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var a batchArgs
				if err := decodeArgs(args, &a); err != nil {
					return "", err
				}
				records, err := c.AuthorsBatch(ctx, semanticscholar.BatchRequest{IDs: a.IDs, Fields: a.Fields})
				if err != nil {
					return "", err
				}
				return encodeResult(records)
			},
		},
		{
			Name: "search_snippets",
			Description: "Search for text snippets from paper abstracts and bodies that best " +
				"match a query. Returns the snippet text together with the source paper.",
			Parameters: objectSchema([]string{"query"}, map[string]any{
				"query": map[string]any{"type": "string", "description": "Plain-text search string."},
				"limit": limitProp(1000),
				"fields": map[string]any{
					"type":        "string",
					"description": "Comma-separated snippet fields to return.",
				},
				"paper_ids": map[string]any{
					"type":        "string",
					"description": "Comma-separated paper ids to restrict the search to.",
				},
				"min_citation_count":       map[string]any{"type": "integer"},
				"publication_date_or_year": map[string]any{"type": "string"},
				"year":                     map[string]any{"type": "string"},
				"venue":                    map[string]any{"type": "string"},
				"fields_of_study":          map[string]any{"type": "string"},
			}),
			Handler: func(ctx context.Context, args string) (string, error) {
				var req semanticscholar.SnippetSearchRequest
				if err := decodeArgs(args, &req); err != nil {
					return "", err
				}
				records, err := c.SearchSnippets(ctx, req)
				if err != nil {
					return "", err
				}
				return encodeResult(records)
			},
		},
	}
}
