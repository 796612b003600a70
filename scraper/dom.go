package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/util"
)

// text joins the whitespace-normalized text of every node in s with single spaces.
func text(s *goquery.Selection) string {
	parts := make([]string, 0, s.Length())
	s.Each(func(_ int, el *goquery.Selection) {
		if t := util.NormSpace(el.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

// firstMatch is like Find(selector).First() but also considers s itself.
func firstMatch(s *goquery.Selection, selector string) *goquery.Selection {
	if s.Is(selector) {
		return s.First()
	}
	return s.Find(selector).First()
}

// attrOf returns the first non-empty value of attr among the nodes of s.
func attrOf(s *goquery.Selection, attr string) string {
	var value string
	s.EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if v, ok := el.Attr(attr); ok {
			value = v
			return false
		}
		return true
	})
	return value
}

var cssURL = regexp.MustCompile(`url\((.*?)\)`)

// backgroundURL pulls the first url(...) out of an inline style, without quotes.
func backgroundURL(style string) (string, bool) {
	match := cssURL.FindStringSubmatch(style)
	if match == nil {
		return "", false
	}

	u := strings.NewReplacer("'", "", `"`, "", ")", "").Replace(match[1])
	return strings.TrimSpace(u), true
}
