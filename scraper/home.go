package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/source"
	"github.com/samber/lo"
)

var homeRowTitles = []string{"FILMY NA CZASIE", "FILMY NA TOPIE", "SERIALE NA CZASIE"}

// ParseHomeRows collects the curated rows of the main page in document order.
// A row is the #item-list element right after its h3 heading; empty rows are dropped.
func ParseHomeRows(doc *goquery.Selection) []source.HomeRow {
	rows := make([]source.HomeRow, 0, len(homeRowTitles))

	doc.Find("h3").Each(func(_ int, h3 *goquery.Selection) {
		title := strings.ToUpper(text(h3))
		if !lo.SomeBy(homeRowTitles, func(t string) bool { return strings.Contains(title, t) }) {
			return
		}

		list := h3.Next()
		if list.AttrOr("id", "") != "item-list" {
			return
		}

		entries := ParseEntries(list)
		if len(entries) == 0 {
			return
		}
		if strings.Contains(title, "SERIALE") {
			entries = markSeries(entries)
		}

		rows = append(rows, source.HomeRow{Title: title, Entries: entries})
	})

	return rows
}
