package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/source"
)

// ParseSearch reads the advanced search page. Each bucket heading sits two levels above
// the row that holds its #item-list.
func ParseSearch(doc *goquery.Selection) source.SearchResult {
	result := source.SearchResult{
		Movies:  make([]source.CatalogEntry, 0),
		Serials: make([]source.CatalogEntry, 0),
	}

	doc.Find("#advanced-search h3").Each(func(_ int, h3 *goquery.Selection) {
		heading := strings.ToUpper(text(h3))

		row := h3.Parent().Parent().Next()
		if row.Length() == 0 {
			return
		}
		list := firstMatch(row, "#item-list")
		if list.Length() == 0 {
			return
		}

		switch {
		case strings.Contains(heading, "FILMY"):
			result.Movies = ParseEntries(list)
		case strings.Contains(heading, "SERIALE"):
			result.Serials = markSeries(ParseEntries(list))
		}
	})

	return result
}
