// Package source defines the catalog records produced by the scraper.
// Records are plain values; nothing mutates them after extraction.
package source

import (
	"strings"

	"github.com/samber/mo"
)

// CatalogEntry is a single card from a listing, search or home row.
type CatalogEntry struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ImageURL     mo.Option[string] `json:"imageUrl"`
	PageURL      string            `json:"pageUrl"`
	Year         string            `json:"year"`
	Rating       mo.Option[string] `json:"rating"`
	Views        mo.Option[string] `json:"views"`
	QualityLabel mo.Option[string] `json:"qualityLabel"`
	IsSeries     bool              `json:"isSeries"`
}

func (c CatalogEntry) String() string {
	if c.Year == "" {
		return c.Title
	}
	return c.Title + " (" + c.Year + ")"
}

// FilteredResult is one page of a listing together with the highest page number seen.
type FilteredResult struct {
	Entries []CatalogEntry `json:"entries"`
	MaxPage int            `json:"maxPage"`
}

// SearchResult splits search hits into the movie and series buckets.
type SearchResult struct {
	Movies  []CatalogEntry `json:"movies"`
	Serials []CatalogEntry `json:"serials"`
}

func (s SearchResult) Empty() bool {
	return len(s.Movies) == 0 && len(s.Serials) == 0
}

// HomeRow is a titled section of the main page.
type HomeRow struct {
	Title   string         `json:"title"`
	Entries []CatalogEntry `json:"entries"`
}

// OptionalText wraps s as Some when it is non-blank after trimming.
func OptionalText(s string) mo.Option[string] {
	s = strings.TrimSpace(s)
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}
