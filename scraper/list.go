package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/source"
	"github.com/samber/mo"
)

const cardLinkSelector = "a.textOverImage, a.textOverImage2"

// ParseEntries turns every direct child of container into a CatalogEntry.
// Children without both a card link and an image are skipped.
func ParseEntries(container *goquery.Selection) []source.CatalogEntry {
	entries := make([]source.CatalogEntry, 0, container.Children().Length())

	container.Children().Each(func(_ int, card *goquery.Selection) {
		link := firstMatch(card, cardLinkSelector)
		img := firstMatch(card, "img")
		if link.Length() == 0 || img.Length() == 0 {
			return
		}

		title := link.AttrOr("data-title", "")
		if title == "" {
			title = text(card.Find("h1.film_title"))
		}
		if title == "" {
			title = text(card.Find(".film_title"))
		}

		rating := text(card.Find(".direct-version span"))
		if rating == "" {
			rating = text(card.Find(".rate"))
		}

		entries = append(entries, source.CatalogEntry{
			Title:        title,
			Description:  link.AttrOr("data-text", ""),
			ImageURL:     imageURL(img),
			PageURL:      link.AttrOr("href", ""),
			Year:         text(card.Find("div.film_year")),
			Rating:       source.OptionalText(rating),
			Views:        source.OptionalText(text(card.Find(".view"))),
			QualityLabel: source.OptionalText(text(card.Find(".quality-version"))),
		})
	})

	return entries
}

// imageURL prefers the lazy-load attribute, then src, then the first <source> next to the image.
func imageURL(img *goquery.Selection) mo.Option[string] {
	if u := img.AttrOr("data-src", ""); u != "" {
		return mo.Some(u)
	}
	if u := img.AttrOr("src", ""); u != "" {
		return mo.Some(u)
	}

	alt := img.Parent().Find("source").First()
	if u := alt.AttrOr("data-src", ""); u != "" {
		return mo.Some(u)
	}
	return source.OptionalText(alt.AttrOr("srcset", ""))
}

func markSeries(entries []source.CatalogEntry) []source.CatalogEntry {
	for i := range entries {
		entries[i].IsSeries = true
	}
	return entries
}
