package types

import (
	"slices"
	"strings"
	"time"
)

// HTTPConfig holds shared HTTP settings used by tools that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scholarly/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Sort options accepted by the arXiv query API.
const (
	SortRelevance       = "relevance"
	SortLastUpdatedDate = "lastUpdatedDate"
	SortSubmittedDate   = "submittedDate"

	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

// MaxArxivResults is the documented ceiling for the arXiv max_results
// parameter. Values above it are rejected, not clamped.
const MaxArxivResults = 30000

var (
	arxivSortFields = []string{SortRelevance, SortLastUpdatedDate, SortSubmittedDate}
	arxivSortOrders = []string{OrderAscending, OrderDescending}
)

// ArxivValves is the operator-settable configuration for the arXiv tool.
// When UseValves is true the stored values replace the caller-supplied
// pagination and sort parameters wholesale on every call; when false the
// caller's arguments win and the stored values are ignored. The struct is
// read-only during a call and may be edited between calls.
type ArxivValves struct {
	// UseValves gates whether the stored values override caller arguments.
	UseValves bool `json:"use_valves" yaml:"use_valves"`

	// Start is the index of the first result to return (0-based).
	Start int `json:"start" yaml:"start"`

	// MaxResults is the maximum number of results to return (≤ 30000).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SortBy is the field to sort results by: relevance, lastUpdatedDate,
	// or submittedDate.
	SortBy string `json:"sort_by" yaml:"sort_by"`

	// SortOrder is the sort direction: ascending or descending.
	SortOrder string `json:"sort_order" yaml:"sort_order"`
}

// DefaultArxivValves returns the arXiv valve defaults: start 0, 10
// results, relevance-ranked, ascending.
func DefaultArxivValves() ArxivValves {
	return ArxivValves{
		Start:      0,
		MaxResults: 10,
		SortBy:     SortRelevance,
		SortOrder:  OrderAscending,
	}
}

// Validate rejects out-of-range or unrecognized valve values.
func (v ArxivValves) Validate() error {
	if v.Start < 0 {
		return ErrInvalidParameter.Withf("start must be ≥ 0, got %d", v.Start)
	}
	if v.MaxResults < 0 || v.MaxResults > MaxArxivResults {
		return ErrInvalidParameter.Withf("max_results must be between 0 and %d, got %d", MaxArxivResults, v.MaxResults)
	}
	if v.SortBy != "" && !slices.Contains(arxivSortFields, v.SortBy) {
		return ErrInvalidParameter.Withf("sort_by must be one of %s, got %q",
			strings.Join(arxivSortFields, ", "), v.SortBy)
	}
	if v.SortOrder != "" && !slices.Contains(arxivSortOrders, v.SortOrder) {
		return ErrInvalidParameter.Withf("sort_order must be one of %s, got %q",
			strings.Join(arxivSortOrders, ", "), v.SortOrder)
	}
	return nil
}

// Limits documented by the Semantic Scholar graph API.
const (
	// MaxSearchLimit is the per-page ceiling for relevance-ranked search.
	MaxSearchLimit = 100

	// MaxListLimit is the per-page ceiling for bulk search and the
	// authors/citations/references/papers listing endpoints.
	MaxListLimit = 1000

	// MaxPaperBatchIDs is the largest paper batch the API accepts.
	MaxPaperBatchIDs = 500

	// MaxAuthorBatchIDs is the largest author batch the API accepts.
	MaxAuthorBatchIDs = 1000
)

// SemanticScholarValves is the operator-settable configuration for the
// Semantic Scholar tool. The override semantics match ArxivValves.
type SemanticScholarValves struct {
	// UseValves gates whether the stored values override caller arguments.
	UseValves bool `json:"use_valves" yaml:"use_valves"`

	// Offset is the pagination offset (0-based).
	Offset int `json:"offset" yaml:"offset"`

	// Limit is the maximum number of results per call.
	Limit int `json:"limit" yaml:"limit"`

	// Fields is the comma-separated field selector sent with every call.
	// Empty means the upstream defaults (paperId and title).
	Fields string `json:"fields" yaml:"fields"`
}

// DefaultSemanticScholarValves returns the Semantic Scholar valve
// defaults: offset 0, 100 results, upstream default fields.
func DefaultSemanticScholarValves() SemanticScholarValves {
	return SemanticScholarValves{
		Offset: 0,
		Limit:  100,
	}
}

// Validate rejects out-of-range valve values. The ceiling checked here
// is the listing ceiling; relevance search applies its stricter
// 100-result ceiling at call time.
func (v SemanticScholarValves) Validate() error {
	if v.Offset < 0 {
		return ErrInvalidParameter.Withf("offset must be ≥ 0, got %d", v.Offset)
	}
	if v.Limit < 0 || v.Limit > MaxListLimit {
		return ErrInvalidParameter.Withf("limit must be between 0 and %d, got %d", MaxListLimit, v.Limit)
	}
	return nil
}

// ToolConfig groups everything a tool instance reads at call time.
type ToolConfig struct {
	HTTP            HTTPConfig            `json:"http" yaml:"http"`
	Arxiv           ArxivValves           `json:"arxiv" yaml:"arxiv"`
	SemanticScholar SemanticScholarValves `json:"semantic_scholar" yaml:"semantic_scholar"`
}

// DefaultToolConfig returns a ToolConfig with all defaults applied.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		HTTP: HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "scholarly/0.1",
		},
		Arxiv:           DefaultArxivValves(),
		SemanticScholar: DefaultSemanticScholarValves(),
	}
}
