package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var descriptionHeadings = []string{"opis odcinka", "streszczenie"}

// ParseEpisodeDetail reads a single episode page including the previous/next navigation.
func ParseEpisodeDetail(doc *goquery.Selection) source.EpisodeDetailRecord {
	background, _ := backgroundURL(doc.Find("#item-headline").AttrOr("style", ""))

	prev, next := mo.None[string](), mo.None[string]()
	doc.Find(".btn-group a.btn").Each(func(_ int, a *goquery.Selection) {
		label := strings.ToLower(text(a))
		if strings.Contains(label, "poprzedni") {
			prev = mo.Some(a.AttrOr("href", ""))
		}
		if strings.Contains(label, "następny") {
			next = mo.Some(a.AttrOr("href", ""))
		}
	})

	return source.EpisodeDetailRecord{
		SeriesTitle:   text(doc.Find("#item-headline h2")),
		EpisodeTitle:  text(doc.Find("#item-headline h3")),
		Description:   episodeDescription(doc),
		BackgroundURL: background,
		PlayerLinks:   ExtractLinks(doc),
		Comments:      ExtractComments(doc),
		PrevURL:       prev,
		NextURL:       next,
	}
}

// episodeDescription finds the synopsis heading and returns the text of the first p or div after it.
func episodeDescription(doc *goquery.Selection) string {
	var description string
	doc.Find("#item-info h4").EachWithBreak(func(_ int, h4 *goquery.Selection) bool {
		if !lo.Contains(descriptionHeadings, strings.ToLower(text(h4))) {
			return true
		}

		for sib := h4.Next(); sib.Length() > 0; sib = sib.Next() {
			if sib.Is("p, div") {
				description = text(sib)
				break
			}
		}
		return false
	})
	return description
}
