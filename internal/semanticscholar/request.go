// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semanticscholar

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/scholarly/pkg/types"
)

// PaperSearchRequest holds the parameters of a relevance-ranked paper
// search (GET /paper/search).
type PaperSearchRequest struct {
	// Query is the plain-text search string. Required; no special
	// syntax is supported by this endpoint.
	Query string `json:"query"`

	// Fields is a comma-separated selector of paper fields to return.
	// Dot notation reaches subfields (e.g. "authors.name").
	Fields string `json:"fields,omitempty"`

	// Limit caps the number of results (≤ 100 for relevance search).
	Limit int `json:"limit,omitempty"`

	// Offset is the pagination offset (0-based).
	Offset int `json:"offset,omitempty"`

	// PublicationTypes filters by comma-separated publication types
	// (e.g. "JournalArticle,Review").
	PublicationTypes string `json:"publication_types,omitempty"`

	// OpenAccessPDF restricts results to papers with a public PDF.
	OpenAccessPDF bool `json:"open_access_pdf,omitempty"`

	// MinCitationCount is the minimum number of citations.
	MinCitationCount int `json:"min_citation_count,omitempty"`

	// PublicationDateOrYear filters by a date or year range
	// (e.g. "2015:2020", "2020-06").
	PublicationDateOrYear string `json:"publication_date_or_year,omitempty"`

	// Year filters by publication year or range (e.g. "2016-2020").
	Year string `json:"year,omitempty"`

	// Venue filters by comma-separated venues or ISO4 abbreviations.
	Venue string `json:"venue,omitempty"`

	// FieldsOfStudy filters by comma-separated fields of study.
	FieldsOfStudy string `json:"fields_of_study,omitempty"`
}

func (r PaperSearchRequest) Values() url.Values {
	result := url.Values{}
	result.Set("query", r.Query)
	setInt(result, "limit", r.Limit)
	setInt(result, "offset", r.Offset)
	setString(result, "fields", r.Fields)
	setString(result, "publicationTypes", r.PublicationTypes)
	if r.OpenAccessPDF {
		result.Set("openAccessPdf", "")
	}
	setInt(result, "minCitationCount", r.MinCitationCount)
	setString(result, "publicationDateOrYear", r.PublicationDateOrYear)
	setString(result, "year", r.Year)
	setString(result, "venue", r.Venue)
	setString(result, "fieldsOfStudy", r.FieldsOfStudy)
	return result
}

func (r PaperSearchRequest) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return types.ErrInvalidParameter.With("query is required")
	}
	if r.Offset < 0 {
		return types.ErrInvalidParameter.Withf("offset must be ≥ 0, got %d", r.Offset)
	}
	if r.Limit < 0 || r.Limit > types.MaxSearchLimit {
		return types.ErrInvalidParameter.Withf("limit must be between 0 and %d, got %d",
			types.MaxSearchLimit, r.Limit)
	}
	return nil
}

// BulkSearchRequest holds the parameters of a bulk paper search
// (GET /paper/search/bulk). Bulk search supports boolean query syntax
// and paginates with a continuation token instead of offset/limit.
type BulkSearchRequest struct {
	// Query is the text query matched against title and abstract.
	// Boolean operators (+, |, -, quotes, *, ~N) are supported.
	Query string `json:"query"`

	// Token is the continuation token from a previous page.
	Token string `json:"token,omitempty"`

	// Sort orders results as "field:order" (e.g. "citationCount:desc").
	Sort string `json:"sort,omitempty"`

	Fields                string `json:"fields,omitempty"`
	PublicationTypes      string `json:"publication_types,omitempty"`
	OpenAccessPDF         bool   `json:"open_access_pdf,omitempty"`
	MinCitationCount      int    `json:"min_citation_count,omitempty"`
	PublicationDateOrYear string `json:"publication_date_or_year,omitempty"`
	Year                  string `json:"year,omitempty"`
	Venue                 string `json:"venue,omitempty"`
	FieldsOfStudy         string `json:"fields_of_study,omitempty"`
}

func (r BulkSearchRequest) Values() url.Values {
	result := url.Values{}
	result.Set("query", r.Query)
	setString(result, "token", r.Token)
	setString(result, "sort", r.Sort)
	setString(result, "fields", r.Fields)
	setString(result, "publicationTypes", r.PublicationTypes)
	if r.OpenAccessPDF {
		result.Set("openAccessPdf", "")
	}
	setInt(result, "minCitationCount", r.MinCitationCount)
	setString(result, "publicationDateOrYear", r.PublicationDateOrYear)
	setString(result, "year", r.Year)
	setString(result, "venue", r.Venue)
	setString(result, "fieldsOfStudy", r.FieldsOfStudy)
	return result
}

func (r BulkSearchRequest) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return types.ErrInvalidParameter.With("query is required")
	}
	return nil
}

// TitleSearchRequest holds the parameters of a title match lookup
// (GET /paper/search/match), which returns the single closest title.
type TitleSearchRequest struct {
	Query                 string `json:"query"`
	Fields                string `json:"fields,omitempty"`
	PublicationTypes      string `json:"publication_types,omitempty"`
	OpenAccessPDF         bool   `json:"open_access_pdf,omitempty"`
	MinCitationCount      int    `json:"min_citation_count,omitempty"`
	PublicationDateOrYear string `json:"publication_date_or_year,omitempty"`
	Year                  string `json:"year,omitempty"`
	Venue                 string `json:"venue,omitempty"`
	FieldsOfStudy         string `json:"fields_of_study,omitempty"`
}

func (r TitleSearchRequest) Values() url.Values {
	result := url.Values{}
	result.Set("query", r.Query)
	setString(result, "fields", r.Fields)
	setString(result, "publicationTypes", r.PublicationTypes)
	if r.OpenAccessPDF {
		result.Set("openAccessPdf", "")
	}
	setInt(result, "minCitationCount", r.MinCitationCount)
	setString(result, "publicationDateOrYear", r.PublicationDateOrYear)
	setString(result, "year", r.Year)
	setString(result, "venue", r.Venue)
	setString(result, "fieldsOfStudy", r.FieldsOfStudy)
	return result
}

func (r TitleSearchRequest) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return types.ErrInvalidParameter.With("query is required")
	}
	return nil
}

// ListRequest holds the pagination parameters shared by the listing
// endpoints (paper authors/citations/references, author papers).
type ListRequest struct {
	// Offset is the pagination offset (0-based).
	Offset int `json:"offset,omitempty"`

	// Limit caps the number of results (≤ 1000).
	Limit int `json:"limit,omitempty"`

	// Fields is the comma-separated field selector.
	Fields string `json:"fields,omitempty"`

	// PublicationDateOrYear filters by date or year range where the
	// endpoint supports it (citations, author papers).
	PublicationDateOrYear string `json:"publication_date_or_year,omitempty"`
}

func (r ListRequest) Values() url.Values {
	result := url.Values{}
	setInt(result, "offset", r.Offset)
	setInt(result, "limit", r.Limit)
	setString(result, "fields", r.Fields)
	setString(result, "publicationDateOrYear", r.PublicationDateOrYear)
	return result
}

func (r ListRequest) validate() error {
	if r.Offset < 0 {
		return types.ErrInvalidParameter.Withf("offset must be ≥ 0, got %d", r.Offset)
	}
	if r.Limit < 0 || r.Limit > types.MaxListLimit {
		return types.ErrInvalidParameter.Withf("limit must be between 0 and %d, got %d",
			types.MaxListLimit, r.Limit)
	}
	return nil
}

// BatchRequest holds an ordered identifier list for the paper and
// author batch endpoints. The identifiers travel in the POST body; the
// fields selector is a query parameter.
type BatchRequest struct {
	// IDs is the ordered identifier sequence. The response preserves
	// this order, with a null slot for identifiers the API cannot
	// resolve.
	IDs []string `json:"ids"`

	// Fields is the comma-separated field selector.
	Fields string `json:"fields,omitempty"`
}

func (r BatchRequest) Values() url.Values {
	result := url.Values{}
	setString(result, "fields", r.Fields)
	return result
}

func (r BatchRequest) validate(maxIDs int) error {
	if len(r.IDs) == 0 {
		return types.ErrInvalidParameter.With("ids is required")
	}
	if len(r.IDs) > maxIDs {
		return types.ErrInvalidParameter.Withf("at most %d ids per batch, got %d", maxIDs, len(r.IDs))
	}
	for _, id := range r.IDs {
		if err := validateID(id); err != nil {
			return err
		}
	}
	return nil
}

// SnippetSearchRequest holds the parameters of a snippet search
// (GET /snippet/search), which returns short text excerpts matching
// the query together with the papers they came from.
type SnippetSearchRequest struct {
	Query                 string `json:"query"`
	Limit                 int    `json:"limit,omitempty"`
	Fields                string `json:"fields,omitempty"`
	PaperIDs              string `json:"paper_ids,omitempty"`
	MinCitationCount      int    `json:"min_citation_count,omitempty"`
	InsertedBefore        string `json:"inserted_before,omitempty"`
	PublicationDateOrYear string `json:"publication_date_or_year,omitempty"`
	Year                  string `json:"year,omitempty"`
	Venue                 string `json:"venue,omitempty"`
	FieldsOfStudy         string `json:"fields_of_study,omitempty"`
}

func (r SnippetSearchRequest) Values() url.Values {
	result := url.Values{}
	result.Set("query", r.Query)
	setInt(result, "limit", r.Limit)
	setString(result, "fields", r.Fields)
	setString(result, "paperIds", r.PaperIDs)
	setInt(result, "minCitationCount", r.MinCitationCount)
	setString(result, "insertedBefore", r.InsertedBefore)
	setString(result, "publicationDateOrYear", r.PublicationDateOrYear)
	setString(result, "year", r.Year)
	setString(result, "venue", r.Venue)
	setString(result, "fieldsOfStudy", r.FieldsOfStudy)
	return result
}

func (r SnippetSearchRequest) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return types.ErrInvalidParameter.With("query is required")
	}
	if r.Limit < 0 || r.Limit > types.MaxListLimit {
		return types.ErrInvalidParameter.Withf("limit must be between 0 and %d, got %d",
			types.MaxListLimit, r.Limit)
	}
	return nil
}

// validateID rejects empty or whitespace-bearing identifiers before
// they reach a URL path or batch body.
func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return types.ErrInvalidParameter.With("identifier must not be empty")
	}
	if strings.ContainsAny(id, " \t\n") {
		return types.ErrInvalidParameter.Withf("malformed identifier %q", id)
	}
	return nil
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, fmt.Sprint(value))
	}
}
