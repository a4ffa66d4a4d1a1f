// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pdiddy/scholarly/pkg/types"
)

// arXiv Atom feed structures. The arxiv: extension elements live in the
// http://arxiv.org/schemas/atom namespace.
type feed struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	ID              string     `xml:"id"`
	Title           string     `xml:"title"`
	Summary         string     `xml:"summary"`
	Published       string     `xml:"published"`
	Updated         string     `xml:"updated"`
	Authors         []author   `xml:"author"`
	Categories      []category `xml:"category"`
	Links           []link     `xml:"link"`
	DOI             string     `xml:"http://arxiv.org/schemas/atom doi"`
	JournalRef      string     `xml:"http://arxiv.org/schemas/atom journal_ref"`
	Comment         string     `xml:"http://arxiv.org/schemas/atom comment"`
	PrimaryCategory category   `xml:"http://arxiv.org/schemas/atom primary_category"`
	Affiliation     string     `xml:"http://arxiv.org/schemas/atom affiliation"`
}

type author struct {
	Name string `xml:"name"`
}

type category struct {
	Term string `xml:"term,attr"`
}

type link struct {
	Href string `xml:"href,attr"`
}

// decodeFeed parses an Atom feed body into one record per entry, in
// feed order. Optional fields missing from an entry are absent from
// its record.
func decodeFeed(body io.Reader) ([]types.Record, error) {
	var f feed
	if err := xml.NewDecoder(body).Decode(&f); err != nil {
		return nil, types.ErrRequestFailed.Withf("parsing arXiv feed: %v", err)
	}

	records := make([]types.Record, 0, len(f.Entries))
	for _, e := range f.Entries {
		records = append(records, entryRecord(e))
	}
	return records, nil
}

// entryRecord maps one feed entry onto the documented field names.
func entryRecord(e entry) types.Record {
	r := types.Record{}

	setString(r, "id", e.ID)
	setString(r, "title", strings.TrimSpace(e.Title))
	setString(r, "summary", strings.TrimSpace(e.Summary))
	setString(r, "published", e.Published)
	setString(r, "updated", e.Updated)
	setString(r, "doi", e.DOI)
	setString(r, "journal_ref", e.JournalRef)
	setString(r, "comment", e.Comment)
	setString(r, "primary_category", e.PrimaryCategory.Term)
	setString(r, "affiliation", e.Affiliation)

	if len(e.Authors) > 0 {
		names := make([]string, 0, len(e.Authors))
		for _, a := range e.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			r["authors"] = names
		}
	}

	if len(e.Categories) > 0 {
		terms := make([]string, 0, len(e.Categories))
		for _, c := range e.Categories {
			if c.Term != "" {
				terms = append(terms, c.Term)
			}
		}
		if len(terms) > 0 {
			r["categories"] = terms
		}
	}

	if len(e.Links) > 0 {
		hrefs := make([]string, 0, len(e.Links))
		for _, l := range e.Links {
			if l.Href != "" {
				hrefs = append(hrefs, l.Href)
			}
		}
		if len(hrefs) > 0 {
			r["links"] = hrefs
		}
	}

	return r
}

func setString(r types.Record, key, value string) {
	if value != "" {
		r[key] = value
	}
}
