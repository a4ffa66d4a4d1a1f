// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semanticscholar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/scholarly/internal/progress"
	"github.com/pdiddy/scholarly/pkg/types"
)

func testClient(ts *httptest.Server, valves types.SemanticScholarValves) *Client {
	return &Client{
		HTTP:     ts.Client(),
		Config:   types.HTTPConfig{UserAgent: "scholarly-test"},
		Valves:   valves,
		Progress: progress.Discard,
	}
}

// withServer swaps apiBase for a test server for the duration of fn.
func withServer(t *testing.T, handler http.HandlerFunc, fn func(ts *httptest.Server)) {
	t.Helper()
	ts := httptest.NewServer(handler)
	defer ts.Close()

	old := apiBase
	apiBase = ts.URL
	defer func() { apiBase = old }()

	fn(ts)
}

// --- Request construction ---

func TestPaperSearchRequestValues(t *testing.T) {
	req := PaperSearchRequest{
		Query:                 "covid vaccination",
		Fields:                "title,authors,year",
		Limit:                 3,
		Offset:                10,
		PublicationTypes:      "JournalArticle,Review",
		OpenAccessPDF:         true,
		MinCitationCount:      50,
		PublicationDateOrYear: "2015:2020",
		Year:                  "2020-2023",
		Venue:                 "Nature,Radiology",
		FieldsOfStudy:         "Physics,Philosophy",
	}

	values := req.Values()
	want := map[string]string{
		"query":                 "covid vaccination",
		"fields":                "title,authors,year",
		"limit":                 "3",
		"offset":                "10",
		"publicationTypes":      "JournalArticle,Review",
		"minCitationCount":      "50",
		"publicationDateOrYear": "2015:2020",
		"year":                  "2020-2023",
		"venue":                 "Nature,Radiology",
		"fieldsOfStudy":         "Physics,Philosophy",
	}
	for k, v := range want {
		if got := values.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if !values.Has("openAccessPdf") {
		t.Error("openAccessPdf flag missing")
	}

	// Minimal request sends only the query.
	minimal := PaperSearchRequest{Query: "covid"}.Values()
	if len(minimal) != 1 || minimal.Get("query") != "covid" {
		t.Errorf("minimal values = %v, want only query", minimal)
	}
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"search empty query", PaperSearchRequest{}.validate()},
		{"search limit over ceiling", PaperSearchRequest{Query: "q", Limit: 101}.validate()},
		{"search negative offset", PaperSearchRequest{Query: "q", Offset: -1}.validate()},
		{"bulk empty query", BulkSearchRequest{}.validate()},
		{"title empty query", TitleSearchRequest{}.validate()},
		{"list limit over ceiling", ListRequest{Limit: 1001}.validate()},
		{"batch no ids", BatchRequest{}.validate(500)},
		{"batch too many ids", BatchRequest{IDs: make([]string, 501)}.validate(500)},
		{"batch blank id", BatchRequest{IDs: []string{"A1", " "}}.validate(500)},
		{"snippet empty query", SnippetSearchRequest{}.validate()},
		{"snippet limit over ceiling", SnippetSearchRequest{Query: "q", Limit: 1001}.validate()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, types.ErrInvalidParameter) {
				t.Errorf("error = %v, want ErrInvalidParameter", tt.err)
			}
		})
	}

	valid := []struct {
		name string
		err  error
	}{
		{"search limit at ceiling", PaperSearchRequest{Query: "q", Limit: 100}.validate()},
		{"list limit at ceiling", ListRequest{Limit: 1000}.validate()},
		{"batch single id", BatchRequest{IDs: []string{"649def34f8be52c8b66281af98ae884c09aef38b"}}.validate(500)},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err != nil {
				t.Errorf("unexpected error: %v", tt.err)
			}
		})
	}
}

// --- Paper search ---

func TestSearchPapers(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total":2,"offset":0,"next":2,"data":[
			{"paperId":"p1","title":"First"},
			{"paperId":"p2","title":"Second","year":2021}
		]}`)
	}, func(ts *httptest.Server) {
		page, err := testClient(ts, types.SemanticScholarValves{}).SearchPapers(context.Background(), PaperSearchRequest{
			Query:  "generative ai",
			Limit:  2,
			Fields: "title,year",
		})
		if err != nil {
			t.Fatalf("SearchPapers: %v", err)
		}

		if captured.URL.Path != "/paper/search" {
			t.Errorf("path = %q", captured.URL.Path)
		}
		q := captured.URL.Query()
		if q.Get("query") != "generative ai" || q.Get("limit") != "2" || q.Get("fields") != "title,year" {
			t.Errorf("query params = %v", q)
		}

		if page.Total != 2 || page.Next != 2 {
			t.Errorf("pagination = %+v", page)
		}
		if len(page.Records) != 2 {
			t.Fatalf("got %d records, want 2", len(page.Records))
		}
		if page.Records[0].String("paperId") != "p1" || page.Records[1].String("paperId") != "p2" {
			t.Errorf("record order not preserved: %v", page.Records)
		}
		// Pass-through: year arrives as the API sent it, absent where it
		// was absent.
		if page.Records[0].Has("year") {
			t.Error("first record should not carry year")
		}
		if _, ok := page.Records[1]["year"]; !ok {
			t.Error("second record missing year")
		}
	})
}

func TestSearchPapersValveOverride(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"total":0,"offset":0,"data":[]}`)
	}, func(ts *httptest.Server) {
		valves := types.SemanticScholarValves{
			UseValves: true,
			Offset:    40,
			Limit:     20,
			Fields:    "title,abstract",
		}
		_, err := testClient(ts, valves).SearchPapers(context.Background(), PaperSearchRequest{
			Query:  "covid",
			Offset: 999,
			Limit:  99,
			Fields: "paperId",
		})
		if err != nil {
			t.Fatalf("SearchPapers: %v", err)
		}

		q := captured.URL.Query()
		if q.Get("offset") != "40" || q.Get("limit") != "20" || q.Get("fields") != "title,abstract" {
			t.Errorf("valve values not applied: %v", q)
		}
		if q.Get("query") != "covid" {
			t.Errorf("query must stay with the caller, got %q", q.Get("query"))
		}
	})
}

func TestSearchPapersRejectsBeforeHTTP(t *testing.T) {
	calls := 0
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, func(ts *httptest.Server) {
		_, err := testClient(ts, types.SemanticScholarValves{}).SearchPapers(context.Background(), PaperSearchRequest{
			Query: "q",
			Limit: 101,
		})
		if !errors.Is(err, types.ErrInvalidParameter) {
			t.Fatalf("error = %v, want ErrInvalidParameter", err)
		}
		if calls != 0 {
			t.Errorf("HTTP call made despite invalid limit (%d calls)", calls)
		}
	})
}

func TestSearchPapersUpstream500(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, func(ts *httptest.Server) {
		_, err := testClient(ts, types.SemanticScholarValves{}).SearchPapers(context.Background(), PaperSearchRequest{Query: "q"})
		if !errors.Is(err, types.ErrRequestFailed) {
			t.Fatalf("error = %v, want ErrRequestFailed", err)
		}
	})
}

// --- Bulk search ---

func TestSearchPapersBulk(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"total":12000,"token":"NEXT-TOKEN","data":[{"paperId":"p1"}]}`)
	}, func(ts *httptest.Server) {
		page, err := testClient(ts, types.SemanticScholarValves{}).SearchPapersBulk(context.Background(), BulkSearchRequest{
			Query: `"fish ladder" -outflow`,
			Sort:  "citationCount:desc",
			Token: "PREV-TOKEN",
		})
		if err != nil {
			t.Fatalf("SearchPapersBulk: %v", err)
		}

		if captured.URL.Path != "/paper/search/bulk" {
			t.Errorf("path = %q", captured.URL.Path)
		}
		q := captured.URL.Query()
		if q.Get("sort") != "citationCount:desc" || q.Get("token") != "PREV-TOKEN" {
			t.Errorf("query params = %v", q)
		}
		if page.Token != "NEXT-TOKEN" || page.Total != 12000 {
			t.Errorf("page = %+v", page)
		}
	})
}

// --- Title match and autocomplete ---

func TestMatchPaperTitle(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"paperId":"p9","title":"Construction of the Literature Graph","matchScore":171.5}]}`)
	}, func(ts *httptest.Server) {
		record, err := testClient(ts, types.SemanticScholarValves{}).MatchPaperTitle(context.Background(), TitleSearchRequest{
			Query: "construction of the literature graph",
		})
		if err != nil {
			t.Fatalf("MatchPaperTitle: %v", err)
		}
		if record.String("paperId") != "p9" {
			t.Errorf("record = %v", record)
		}
		if _, ok := record["matchScore"]; !ok {
			t.Error("matchScore missing")
		}
	})
}

func TestMatchPaperTitleNoMatch(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}, func(ts *httptest.Server) {
		_, err := testClient(ts, types.SemanticScholarValves{}).MatchPaperTitle(context.Background(), TitleSearchRequest{Query: "zzz"})
		if !errors.Is(err, types.ErrRequestFailed) {
			t.Fatalf("error = %v, want ErrRequestFailed", err)
		}
	})
}

func TestAutocompletePapers(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"matches":[{"id":"m1","title":"Semantic Scholar"},{"id":"m2","title":"Semantic Web"}]}`)
	}, func(ts *httptest.Server) {
		records, err := testClient(ts, types.SemanticScholarValves{}).AutocompletePapers(context.Background(), "semanti")
		if err != nil {
			t.Fatalf("AutocompletePapers: %v", err)
		}
		if captured.URL.Path != "/paper/autocomplete" {
			t.Errorf("path = %q", captured.URL.Path)
		}
		if len(records) != 2 {
			t.Fatalf("got %d matches, want 2", len(records))
		}
	})
}

// --- Detail lookups ---

func TestPaperDetail(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"paperId":"649def34f8be52c8b66281af98ae884c09aef38b","url":"https://example.org","year":2018,
			"authors":[{"authorId":"1741101","name":"Oren Etzioni"}]}`)
	}, func(ts *httptest.Server) {
		record, err := testClient(ts, types.SemanticScholarValves{}).Paper(context.Background(),
			"649def34f8be52c8b66281af98ae884c09aef38b", "url,year,authors")
		if err != nil {
			t.Fatalf("Paper: %v", err)
		}

		if captured.URL.Path != "/paper/649def34f8be52c8b66281af98ae884c09aef38b" {
			t.Errorf("path = %q", captured.URL.Path)
		}
		if captured.URL.Query().Get("fields") != "url,year,authors" {
			t.Errorf("fields = %q", captured.URL.Query().Get("fields"))
		}
		if record.String("url") != "https://example.org" {
			t.Errorf("record = %v", record)
		}
		// Nested structures pass through as-is.
		authors, ok := record["authors"].([]any)
		if !ok || len(authors) != 1 {
			t.Errorf("authors = %v", record["authors"])
		}
	})
}

func TestPaperDetailDOIPathKeptRaw(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"paperId":"p1"}`)
	}, func(ts *httptest.Server) {
		_, err := testClient(ts, types.SemanticScholarValves{}).Paper(context.Background(), "DOI:10.18653/v1/N18-3011", "")
		if err != nil {
			t.Fatalf("Paper: %v", err)
		}
		if captured.URL.Path != "/paper/DOI:10.18653/v1/N18-3011" {
			t.Errorf("DOI path mangled: %q", captured.URL.Path)
		}
	})
}

func TestPaperRejectsMalformedID(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no HTTP call expected")
	}, func(ts *httptest.Server) {
		c := testClient(ts, types.SemanticScholarValves{})
		for _, id := range []string{"", "  ", "has space"} {
			if _, err := c.Paper(context.Background(), id, ""); !errors.Is(err, types.ErrInvalidParameter) {
				t.Errorf("id %q: error = %v, want ErrInvalidParameter", id, err)
			}
		}
	})
}

func TestAuthorDetailAndPapers(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/author/1741101":
			fmt.Fprint(w, `{"authorId":"1741101","name":"Oren Etzioni","paperCount":312}`)
		case "/author/1741101/papers":
			fmt.Fprint(w, `{"offset":0,"next":2,"data":[{"paperId":"p1"},{"paperId":"p2"}]}`)
		default:
			http.NotFound(w, r)
		}
	}, func(ts *httptest.Server) {
		c := testClient(ts, types.SemanticScholarValves{})

		record, err := c.Author(context.Background(), "1741101", "")
		if err != nil {
			t.Fatalf("Author: %v", err)
		}
		if record.String("name") != "Oren Etzioni" {
			t.Errorf("record = %v", record)
		}

		page, err := c.AuthorPapers(context.Background(), "1741101", ListRequest{Limit: 2})
		if err != nil {
			t.Fatalf("AuthorPapers: %v", err)
		}
		if len(page.Records) != 2 || page.Next != 2 {
			t.Errorf("page = %+v", page)
		}
	})
}

func TestSearchAuthors(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"total":1,"offset":0,"data":[{"authorId":"a1","name":"Adam Smith"}]}`)
	}, func(ts *httptest.Server) {
		page, err := testClient(ts, types.SemanticScholarValves{}).SearchAuthors(context.Background(), "adam smith", ListRequest{Fields: "name"})
		if err != nil {
			t.Fatalf("SearchAuthors: %v", err)
		}
		if captured.URL.Path != "/author/search" {
			t.Errorf("path = %q", captured.URL.Path)
		}
		if captured.URL.Query().Get("query") != "adam smith" {
			t.Errorf("query = %q", captured.URL.Query().Get("query"))
		}
		if len(page.Records) != 1 {
			t.Errorf("records = %v", page.Records)
		}
	})
}

// --- Listings ---

func TestPaperCitationsAndReferences(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/paper/p1/citations":
			fmt.Fprint(w, `{"offset":0,"data":[{"isInfluential":true,"citingPaper":{"paperId":"c1"}}]}`)
		case "/paper/p1/references":
			fmt.Fprint(w, `{"offset":0,"data":[{"citedPaper":{"paperId":"r1","title":"Ref"}}]}`)
		case "/paper/p1/authors":
			fmt.Fprint(w, `{"offset":0,"data":[{"authorId":"a1","name":"Ada"}]}`)
		default:
			http.NotFound(w, r)
		}
	}, func(ts *httptest.Server) {
		c := testClient(ts, types.SemanticScholarValves{})
		ctx := context.Background()

		citations, err := c.PaperCitations(ctx, "p1", ListRequest{})
		if err != nil {
			t.Fatalf("PaperCitations: %v", err)
		}
		if len(citations.Records) != 1 || !citations.Records[0].Has("citingPaper") {
			t.Errorf("citations = %v", citations.Records)
		}

		references, err := c.PaperReferences(ctx, "p1", ListRequest{})
		if err != nil {
			t.Fatalf("PaperReferences: %v", err)
		}
		if len(references.Records) != 1 || !references.Records[0].Has("citedPaper") {
			t.Errorf("references = %v", references.Records)
		}

		authors, err := c.PaperAuthors(ctx, "p1", ListRequest{})
		if err != nil {
			t.Fatalf("PaperAuthors: %v", err)
		}
		if len(authors.Records) != 1 {
			t.Errorf("authors = %v", authors.Records)
		}
	})
}

// --- Batch ---

func TestPapersBatchOrderPreserved(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		capturedBody, _ = io.ReadAll(r.Body)
		// Upstream answers per-id in input order, null for misses.
		fmt.Fprint(w, `[{"paperId":"A1"},null,{"paperId":"A3"}]`)
	}, func(ts *httptest.Server) {
		records, err := testClient(ts, types.SemanticScholarValves{}).PapersBatch(context.Background(), BatchRequest{
			IDs:    []string{"A1", "A2", "A3"},
			Fields: "title,authors",
		})
		if err != nil {
			t.Fatalf("PapersBatch: %v", err)
		}

		if captured.Method != http.MethodPost || captured.URL.Path != "/paper/batch" {
			t.Errorf("request = %s %s", captured.Method, captured.URL.Path)
		}
		// Fields goes in the query string, ids in the JSON body.
		if captured.URL.Query().Get("fields") != "title,authors" {
			t.Errorf("fields = %q", captured.URL.Query().Get("fields"))
		}
		var body map[string][]string
		if err := json.Unmarshal(capturedBody, &body); err != nil {
			t.Fatalf("body: %v", err)
		}
		if got := body["ids"]; len(got) != 3 || got[0] != "A1" || got[2] != "A3" {
			t.Errorf("body ids = %v", got)
		}

		if len(records) != 3 {
			t.Fatalf("got %d records, want 3 (one per input id)", len(records))
		}
		if records[0].String("paperId") != "A1" || records[2].String("paperId") != "A3" {
			t.Errorf("order not preserved: %v", records)
		}
		if records[1] != nil {
			t.Errorf("unresolved id should yield a nil record, got %v", records[1])
		}
	})
}

func TestAuthorsBatch(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/author/batch" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `[{"authorId":"1741101","name":"Oren Etzioni"},{"authorId":"1780531","name":"Dan Weld"}]`)
	}, func(ts *httptest.Server) {
		records, err := testClient(ts, types.SemanticScholarValves{}).AuthorsBatch(context.Background(), BatchRequest{
			IDs: []string{"1741101", "1780531"},
		})
		if err != nil {
			t.Fatalf("AuthorsBatch: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
	})
}

func TestBatchCeilings(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no HTTP call expected")
	}, func(ts *httptest.Server) {
		c := testClient(ts, types.SemanticScholarValves{})

		ids := make([]string, 501)
		for i := range ids {
			ids[i] = fmt.Sprintf("id%d", i)
		}
		if _, err := c.PapersBatch(context.Background(), BatchRequest{IDs: ids}); !errors.Is(err, types.ErrInvalidParameter) {
			t.Errorf("papers batch over ceiling: error = %v", err)
		}

		ids = make([]string, 1001)
		for i := range ids {
			ids[i] = fmt.Sprintf("id%d", i)
		}
		if _, err := c.AuthorsBatch(context.Background(), BatchRequest{IDs: ids}); !errors.Is(err, types.ErrInvalidParameter) {
			t.Errorf("authors batch over ceiling: error = %v", err)
		}
	})
}

// --- Snippets ---

func TestSearchSnippets(t *testing.T) {
	var captured *http.Request
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"data":[
			{"snippet":{"text":"The literature graph is a property graph","snippetKind":"body"},"score":0.91,
			 "paper":{"corpusId":3288,"title":"Construction of the Literature Graph"}}
		]}`)
	}, func(ts *httptest.Server) {
		records, err := testClient(ts, types.SemanticScholarValves{}).SearchSnippets(context.Background(), SnippetSearchRequest{
			Query: "the literature graph is a property graph",
			Limit: 1,
		})
		if err != nil {
			t.Fatalf("SearchSnippets: %v", err)
		}
		if captured.URL.Path != "/snippet/search" {
			t.Errorf("path = %q", captured.URL.Path)
		}
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		if !records[0].Has("snippet") || !records[0].Has("paper") {
			t.Errorf("record = %v", records[0])
		}
	})
}

func TestProgressOnFailureNeverFailsCall(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total":0,"offset":0,"data":[]}`)
	}, func(ts *httptest.Server) {
		c := testClient(ts, types.SemanticScholarValves{})
		c.Progress = progress.Func(func(progress.Stage, string) { panic("sink failure") })

		if _, err := c.SearchPapers(context.Background(), PaperSearchRequest{Query: "q"}); err != nil {
			t.Fatalf("a panicking progress sink must not fail the call: %v", err)
		}
	})
}
