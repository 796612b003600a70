package scraper

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResolveMaxPage returns the highest data-pagenumber in the pager, never less than requested or 1.
func ResolveMaxPage(doc *goquery.Selection, requested int) int {
	found := 1
	doc.Find("ul.pagination li a[data-pagenumber]").Each(func(_ int, a *goquery.Selection) {
		n, err := strconv.Atoi(strings.TrimSpace(a.AttrOr("data-pagenumber", "")))
		if err == nil && n > found {
			found = n
		}
	})

	if requested > found {
		return requested
	}
	return found
}
