// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/pdiddy/scholarly/pkg/types"
)

// SearchRequest holds the parameters of one arXiv query-API call.
type SearchRequest struct {
	// SearchQuery is the plain-text search expression (e.g.
	// "all:quantum computing" or `ti:"electron thermal conductivity"`).
	SearchQuery string `json:"search_query,omitempty"`

	// IDList is a comma-delimited list of arXiv IDs. Alone it fetches
	// those articles; combined with SearchQuery it filters the listed
	// IDs by the query.
	IDList string `json:"id_list,omitempty"`

	// Start is the index of the first result (0-based pagination).
	Start int `json:"start,omitempty"`

	// MaxResults caps the number of results (documented ceiling 30000).
	// Zero leaves the parameter unset so the API default applies.
	MaxResults int `json:"max_results,omitempty"`

	// SortBy is relevance, lastUpdatedDate, or submittedDate.
	SortBy string `json:"sort_by,omitempty"`

	// SortOrder is ascending or descending.
	SortOrder string `json:"sort_order,omitempty"`
}

// Values encodes the set parameters as the query string the arXiv API
// expects. Unset optional parameters are omitted, not sent empty.
func (r SearchRequest) Values() url.Values {
	result := url.Values{}
	if r.SearchQuery != "" {
		result.Set("search_query", r.SearchQuery)
	}
	if r.IDList != "" {
		result.Set("id_list", r.IDList)
	}
	if r.Start > 0 {
		result.Set("start", fmt.Sprint(r.Start))
	}
	if r.MaxResults > 0 {
		result.Set("max_results", fmt.Sprint(r.MaxResults))
	}
	if r.SortBy != "" {
		result.Set("sortBy", r.SortBy)
	}
	if r.SortOrder != "" {
		result.Set("sortOrder", r.SortOrder)
	}
	return result
}

// validate rejects the request before any HTTP call is made.
func (r SearchRequest) validate() error {
	if r.SearchQuery == "" && r.IDList == "" {
		return types.ErrInvalidParameter.With("either search_query or id_list is required")
	}
	if r.Start < 0 {
		return types.ErrInvalidParameter.Withf("start must be ≥ 0, got %d", r.Start)
	}
	if r.MaxResults < 0 || r.MaxResults > types.MaxArxivResults {
		return types.ErrInvalidParameter.Withf("max_results must be between 0 and %d, got %d",
			types.MaxArxivResults, r.MaxResults)
	}
	if r.SortBy != "" && !slices.Contains(
		[]string{types.SortRelevance, types.SortLastUpdatedDate, types.SortSubmittedDate}, r.SortBy) {
		return types.ErrInvalidParameter.Withf("unrecognized sort_by %q", r.SortBy)
	}
	if r.SortOrder != "" && r.SortOrder != types.OrderAscending && r.SortOrder != types.OrderDescending {
		return types.ErrInvalidParameter.Withf("unrecognized sort_order %q", r.SortOrder)
	}
	if r.IDList != "" {
		for _, id := range strings.Split(r.IDList, ",") {
			if strings.TrimSpace(id) == "" {
				return types.ErrInvalidParameter.Withf("id_list %q contains an empty identifier", r.IDList)
			}
			if strings.ContainsAny(id, " \t") {
				return types.ErrInvalidParameter.Withf("malformed arXiv identifier %q", id)
			}
		}
	}
	return nil
}
