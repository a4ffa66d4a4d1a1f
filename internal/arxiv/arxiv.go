// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv wraps the arXiv query API as a host-callable tool. One
// call is one HTTP GET against the query endpoint; the Atom response is
// normalized into ordered result records keyed by documented field
// names.
package arxiv

import (
	"context"
	"net/http"

	"github.com/pdiddy/scholarly/internal/httputil"
	"github.com/pdiddy/scholarly/internal/progress"
	"github.com/pdiddy/scholarly/pkg/types"
)

// apiBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Client is an arXiv tool instance. Valves are read at call time and
// never written during a call; HTTP and Progress may be nil, in which
// case a default client and a discarding sink are used.
type Client struct {
	HTTP     *http.Client
	Config   types.HTTPConfig
	Valves   types.ArxivValves
	Progress progress.Sink
}

// New returns a Client configured from cfg, reporting progress to sink.
func New(cfg types.ToolConfig, sink progress.Sink) *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: cfg.HTTP.Timeout},
		Config:   cfg.HTTP,
		Valves:   cfg.Arxiv,
		Progress: sink,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// Search queries the arXiv API and returns one record per feed entry,
// in feed order. When the client's valves have UseValves set, the
// stored pagination and sort values replace the caller's wholesale;
// the search terms themselves always come from the caller.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]types.Record, error) {
	resolved := resolve(req, c.Valves)
	if err := resolved.validate(); err != nil {
		return nil, err
	}

	url := apiBase + "?" + resolved.Values().Encode()
	progress.Reportf(c.Progress, progress.StageStart, "Searching arXiv with parameters %s", resolved.Values().Encode())

	httpReq, err := httputil.NewRequest(ctx, http.MethodGet, url, nil, c.Config)
	if err != nil {
		progress.Report(c.Progress, progress.StageFailure, err.Error())
		return nil, err
	}

	resp, err := httputil.Do(c.httpClient(), httpReq)
	if err != nil {
		progress.Report(c.Progress, progress.StageFailure, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	records, err := decodeFeed(resp.Body)
	if err != nil {
		progress.Report(c.Progress, progress.StageFailure, err.Error())
		return nil, err
	}

	progress.Reportf(c.Progress, progress.StageSuccess, "arXiv returned %d records", len(records))
	return records, nil
}

// resolve applies the valve-override policy: with UseValves set every
// pagination and sort field comes from the valves, regardless of what
// the caller passed. The substitution is total, not a per-field merge.
func resolve(req SearchRequest, valves types.ArxivValves) SearchRequest {
	if !valves.UseValves {
		return req
	}
	req.Start = valves.Start
	req.MaxResults = valves.MaxResults
	req.SortBy = valves.SortBy
	req.SortOrder = valves.SortOrder
	return req
}
