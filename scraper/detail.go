package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/source"
)

const (
	noTitle       = "No title"
	noDescription = "No description"
	defaultSeason = "Season"
)

// ParseDetail reads a movie or series page. Player links are only read for movies;
// series pages carry them per episode.
func ParseDetail(doc *goquery.Selection) source.DetailRecord {
	title := text(doc.Find("h1 span[itemprop='title']"))
	if title == "" {
		title = text(doc.Find("#item-headline h2"))
	}
	if title == "" {
		title = noTitle
	}

	description := noDescription
	if p := doc.Find("p.description").First(); p.Length() > 0 {
		description = text(p)
	}

	poster := attrOf(doc.Find("#single-poster img"), "src")
	background, ok := backgroundURL(doc.Find("#item-headline").AttrOr("style", ""))
	if !ok {
		background = poster
	}

	var rating string
	if value := text(doc.Find("span[itemprop='ratingValue']")); value != "" {
		rating = value + " (" + text(doc.Find("span[itemprop='reviewCount']")) + ")"
	}

	var year, views string
	doc.Find(".info ul").Each(func(_ int, ul *goquery.Selection) {
		block := text(ul)
		if strings.Contains(block, "Rok:") || strings.Contains(block, "Premiera:") {
			year = text(ul.Find("li").Last())
		}
		if strings.Contains(block, "Odsłony:") {
			views = text(ul.Find("li").Last())
		}
	})

	seasons := parseSeasons(doc.Find("#episode-list > li"))
	isSeries := len(seasons) > 0

	links := make([]source.PlayerLink, 0)
	if !isSeries {
		links = ExtractLinks(doc)
	}

	return source.DetailRecord{
		Title:         title,
		PosterURL:     poster,
		BackgroundURL: background,
		Description:   description,
		Rating:        rating,
		Year:          year,
		Views:         views,
		Genres:        texts(doc.Find("ul.categories li a")),
		Countries:     texts(doc.Find("ul.country li a")),
		PlayerLinks:   links,
		Comments:      ExtractComments(doc),
		Seasons:       seasons,
		IsSeries:      isSeries,
	}
}

func parseSeasons(items *goquery.Selection) []source.Season {
	seasons := make([]source.Season, 0, items.Length())
	items.Each(func(_ int, li *goquery.Selection) {
		name := defaultSeason
		if span := li.Find("span").First(); span.Length() > 0 {
			name = text(span)
		}

		episodes := make([]source.Episode, 0)
		li.Find("ul li a").Each(func(_ int, a *goquery.Selection) {
			episodes = append(episodes, source.Episode{
				Title: text(a),
				URL:   a.AttrOr("href", ""),
			})
		})

		seasons = append(seasons, source.Season{Title: name, Episodes: episodes})
	})
	return seasons
}

func texts(s *goquery.Selection) []string {
	return s.Map(func(_ int, el *goquery.Selection) string {
		return text(el)
	})
}
