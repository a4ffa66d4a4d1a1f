// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package semanticscholar wraps the Semantic Scholar graph API as a
// host-callable tool: paper search (relevance, bulk, title match,
// autocomplete), paper and author detail lookups, batch lookups,
// citation/reference listings, and snippet search. Every operation is
// one HTTP call; payloads pass through field-for-field as open records.
package semanticscholar

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pdiddy/scholarly/internal/httputil"
	"github.com/pdiddy/scholarly/internal/progress"
	"github.com/pdiddy/scholarly/pkg/types"
)

// apiBase is the Semantic Scholar graph API root. Declared as a var so
// tests can substitute an httptest server.
var apiBase = "https://api.semanticscholar.org/graph/v1"

// Client is a Semantic Scholar tool instance. Valves are read at call
// time and never written during a call.
type Client struct {
	HTTP     *http.Client
	Config   types.HTTPConfig
	Valves   types.SemanticScholarValves
	Progress progress.Sink
}

// New returns a Client configured from cfg, reporting progress to sink.
func New(cfg types.ToolConfig, sink progress.Sink) *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: cfg.HTTP.Timeout},
		Config:   cfg.HTTP,
		Valves:   cfg.SemanticScholar,
		Progress: sink,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// List is one page of a list-shaped response: the ordered records plus
// the pagination metadata the API returned alongside them. Next is the
// offset of the following page (0 when exhausted); Token is the bulk
// search continuation token.
type List struct {
	Total   int            `json:"total,omitempty"`
	Offset  int            `json:"offset,omitempty"`
	Next    int            `json:"next,omitempty"`
	Token   string         `json:"token,omitempty"`
	Records []types.Record `json:"data"`
}

// listEnvelope mirrors the upstream JSON for list-shaped endpoints.
type listEnvelope struct {
	Total  int            `json:"total"`
	Offset int            `json:"offset"`
	Next   int            `json:"next"`
	Token  string         `json:"token"`
	Data   []types.Record `json:"data"`
}

func (e listEnvelope) list() *List {
	return &List{Total: e.Total, Offset: e.Offset, Next: e.Next, Token: e.Token, Records: e.Data}
}

// SearchPapers runs a relevance-ranked paper search. At most 100
// results per page; the endpoint serves up to 1000 relevance-ranked
// results per query overall.
func (c *Client) SearchPapers(ctx context.Context, req PaperSearchRequest) (*List, error) {
	c.resolveSearch(&req)
	if err := req.validate(); err != nil {
		return nil, err
	}
	return c.getList(ctx, "/paper/search", req.Values(), "Searching for papers...")
}

// resolveSearch applies the valve-override policy to a relevance
// search: with UseValves set, offset, limit, and fields come from the
// valves wholesale.
func (c *Client) resolveSearch(req *PaperSearchRequest) {
	if !c.Valves.UseValves {
		return
	}
	req.Offset = c.Valves.Offset
	req.Limit = c.Valves.Limit
	req.Fields = c.Valves.Fields
}

// SearchPapersBulk runs a bulk paper search with boolean query syntax,
// paginated by continuation token.
func (c *Client) SearchPapersBulk(ctx context.Context, req BulkSearchRequest) (*List, error) {
	if c.Valves.UseValves {
		req.Fields = c.Valves.Fields
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return c.getList(ctx, "/paper/search/bulk", req.Values(), "Searching for batch of relevant papers...")
}

// MatchPaperTitle returns the single paper whose title most closely
// matches the query. A miss surfaces as the API's 404, wrapped as
// ErrRequestFailed.
func (c *Client) MatchPaperTitle(ctx context.Context, req TitleSearchRequest) (types.Record, error) {
	if c.Valves.UseValves {
		req.Fields = c.Valves.Fields
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	page, err := c.getList(ctx, "/paper/search/match", req.Values(), "Searching for papers by title...")
	if err != nil {
		return nil, err
	}
	if len(page.Records) == 0 {
		return nil, types.ErrRequestFailed.With("title match not found")
	}
	return page.Records[0], nil
}

// AutocompletePapers suggests paper completions for a partial query.
// The endpoint truncates queries to their first 100 characters and
// returns minimal paper info.
func (c *Client) AutocompletePapers(ctx context.Context, query string) ([]types.Record, error) {
	if query == "" {
		return nil, types.ErrInvalidParameter.With("query is required")
	}

	values := url.Values{"query": {query}}
	var resp struct {
		Matches []types.Record `json:"matches"`
	}
	if err := c.get(ctx, "/paper/autocomplete", values, "Searching for papers using partial match...", &resp); err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// Paper fetches one paper's metadata by identifier. Supported formats
// include the Semantic Scholar SHA, CorpusId:, DOI:, ARXIV:, MAG:,
// ACL:, PMID:, PMCID:, and recognized URLs.
func (c *Client) Paper(ctx context.Context, paperID, fields string) (types.Record, error) {
	if err := validateID(paperID); err != nil {
		return nil, err
	}
	if c.Valves.UseValves {
		fields = c.Valves.Fields
	}

	values := url.Values{}
	setString(values, "fields", fields)

	var record types.Record
	if err := c.get(ctx, "/paper/"+paperID, values, "Searching for paper details...", &record); err != nil {
		return nil, err
	}
	return record, nil
}

// PaperAuthors lists the authors of a paper.
func (c *Client) PaperAuthors(ctx context.Context, paperID string, req ListRequest) (*List, error) {
	return c.paperList(ctx, paperID, "/authors", req, "Searching for paper authors...")
}

// PaperCitations lists the papers citing a paper.
func (c *Client) PaperCitations(ctx context.Context, paperID string, req ListRequest) (*List, error) {
	return c.paperList(ctx, paperID, "/citations", req, "Searching for paper citations...")
}

// PaperReferences lists the papers a paper cites.
func (c *Client) PaperReferences(ctx context.Context, paperID string, req ListRequest) (*List, error) {
	return c.paperList(ctx, paperID, "/references", req, "Searching for paper references...")
}

func (c *Client) paperList(ctx context.Context, paperID, suffix string, req ListRequest, status string) (*List, error) {
	if err := validateID(paperID); err != nil {
		return nil, err
	}
	c.resolveList(&req)
	if err := req.validate(); err != nil {
		return nil, err
	}
	return c.getList(ctx, "/paper/"+paperID+suffix, req.Values(), status)
}

// resolveList applies the valve-override policy to a listing request.
func (c *Client) resolveList(req *ListRequest) {
	if !c.Valves.UseValves {
		return
	}
	req.Offset = c.Valves.Offset
	req.Limit = c.Valves.Limit
	req.Fields = c.Valves.Fields
}

// PapersBatch fetches up to 500 papers in one call. The result slice
// has one slot per input identifier in input order; identifiers the
// API cannot resolve yield a nil record in their slot.
func (c *Client) PapersBatch(ctx context.Context, req BatchRequest) ([]types.Record, error) {
	return c.batch(ctx, "/paper/batch", req, types.MaxPaperBatchIDs, "Searching for batch of papers...")
}

// AuthorsBatch fetches up to 1000 authors in one call, order-preserving
// like PapersBatch.
func (c *Client) AuthorsBatch(ctx context.Context, req BatchRequest) ([]types.Record, error) {
	return c.batch(ctx, "/author/batch", req, types.MaxAuthorBatchIDs, "Searching for batch of authors...")
}

func (c *Client) batch(ctx context.Context, path string, req BatchRequest, maxIDs int, status string) ([]types.Record, error) {
	if c.Valves.UseValves {
		req.Fields = c.Valves.Fields
	}
	if err := req.validate(maxIDs); err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string][]string{"ids": req.IDs})
	if err != nil {
		return nil, types.ErrInvalidParameter.Withf("encoding ids: %v", err)
	}

	reqURL := apiBase + path
	if q := req.Values().Encode(); q != "" {
		reqURL += "?" + q
	}

	progress.Report(c.Progress, progress.StageStart, status)

	httpReq, err := httputil.NewRequest(ctx, http.MethodPost, reqURL, bytes.NewReader(body), c.Config)
	if err != nil {
		progress.Report(c.Progress, progress.StageFailure, err.Error())
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var records []types.Record
	if err := httputil.DecodeJSON(c.httpClient(), httpReq, &records); err != nil {
		progress.Report(c.Progress, progress.StageFailure, err.Error())
		return nil, err
	}

	progress.Reportf(c.Progress, progress.StageSuccess, "returned %d records", len(records))
	return records, nil
}

// SearchAuthors searches authors by name.
func (c *Client) SearchAuthors(ctx context.Context, query string, req ListRequest) (*List, error) {
	if query == "" {
		return nil, types.ErrInvalidParameter.With("query is required")
	}
	c.resolveList(&req)
	if err := req.validate(); err != nil {
		return nil, err
	}

	values := req.Values()
	values.Set("query", query)
	return c.getList(ctx, "/author/search", values, "Searching for authors...")
}

// Author fetches one author's metadata by Semantic Scholar author ID.
func (c *Client) Author(ctx context.Context, authorID, fields string) (types.Record, error) {
	if err := validateID(authorID); err != nil {
		return nil, err
	}
	if c.Valves.UseValves {
		fields = c.Valves.Fields
	}

	values := url.Values{}
	setString(values, "fields", fields)

	var record types.Record
	if err := c.get(ctx, "/author/"+authorID, values, "Searching for author details...", &record); err != nil {
		return nil, err
	}
	return record, nil
}

// AuthorPapers lists the papers of an author.
func (c *Client) AuthorPapers(ctx context.Context, authorID string, req ListRequest) (*List, error) {
	if err := validateID(authorID); err != nil {
		return nil, err
	}
	c.resolveList(&req)
	if err := req.validate(); err != nil {
		return nil, err
	}
	return c.getList(ctx, "/author/"+authorID+"/papers", req.Values(), "Searching for papers from author...")
}

// SearchSnippets returns text excerpts from papers matching the query.
// Snippet search lives beside the graph endpoints under the same root.
func (c *Client) SearchSnippets(ctx context.Context, req SnippetSearchRequest) ([]types.Record, error) {
	if c.Valves.UseValves {
		req.Limit = c.Valves.Limit
		req.Fields = c.Valves.Fields
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	page, err := c.getList(ctx, "/snippet/search", req.Values(), "Searching for snippets...")
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

// getList is the shared GET path for list-shaped endpoints.
func (c *Client) getList(ctx context.Context, path string, values url.Values, status string) (*List, error) {
	var envelope listEnvelope
	if err := c.get(ctx, path, values, status, &envelope); err != nil {
		return nil, err
	}
	return envelope.list(), nil
}

// get performs one GET and decodes the JSON payload into out, with
// progress reporting at the call boundaries.
func (c *Client) get(ctx context.Context, path string, values url.Values, status string, out any) error {
	reqURL := apiBase + path
	if q := values.Encode(); q != "" {
		reqURL += "?" + q
	}

	progress.Report(c.Progress, progress.StageStart, status)

	httpReq, err := httputil.NewRequest(ctx, http.MethodGet, reqURL, nil, c.Config)
	if err != nil {
		progress.Report(c.Progress, progress.StageFailure, err.Error())
		return err
	}

	if err := httputil.DecodeJSON(c.httpClient(), httpReq, out); err != nil {
		progress.Report(c.Progress, progress.StageFailure, err.Error())
		return err
	}

	progress.Report(c.Progress, progress.StageSuccess, "done")
	return nil
}
