package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/util"
)

const defaultVersion = "Inne"

// ExtractLinks reads the playback link table. Rows without an encoded payload are dropped.
func ExtractLinks(doc *goquery.Selection) []source.PlayerLink {
	links := make([]source.PlayerLink, 0)

	doc.Find("#links tbody tr").Each(func(_ int, row *goquery.Selection) {
		anchor := row.Find("a[data-iframe]").First()
		if anchor.Length() == 0 {
			return
		}

		payload := anchor.AttrOr("data-iframe", "")
		if payload == "" {
			return
		}

		// "voe.sx dodane 10 godzin temu przez Someone"
		raw := util.NormSpace(anchor.Text())
		host, added, _ := strings.Cut(raw, " dodane ")
		if by, _, found := strings.Cut(added, "przez"); found {
			added = by
		}

		cells := row.Find("td")
		version := text(cells.Eq(1))
		if version == "" {
			version = defaultVersion
		}

		links = append(links, source.PlayerLink{
			HostName:       strings.TrimSpace(host),
			EncodedPayload: payload,
			Quality:        text(cells.Eq(2)),
			Version:        version,
			AddedDate:      strings.TrimSpace(added),
		})
	})

	return links
}
