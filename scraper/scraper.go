// Package scraper turns the catalog site's server-rendered pages into source records.
//
// Every operation issues exactly one request. ErrSessionExpired is the only error
// returned; other failures are logged and produce empty results.
package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/metrics"
	"github.com/kinotv/kino/network"
	"github.com/kinotv/kino/session"
	"github.com/kinotv/kino/source"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type Scraper struct {
	base   string
	store  session.Store
	client network.Doer
}

type Option func(*Scraper)

func WithBaseURL(base string) Option {
	return func(s *Scraper) { s.base = trimBase(base) }
}

func WithClient(client network.Doer) Option {
	return func(s *Scraper) { s.client = client }
}

// New returns a Scraper reading credentials from store. The base URL defaults to
// site.base_url and the client to network.Default().
func New(store session.Store, opts ...Option) *Scraper {
	s := &Scraper{
		base:  trimBase(viper.GetString(key.SiteBaseURL)),
		store: store,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = network.Default()
	}
	return s
}

func (s *Scraper) BaseURL() string {
	return s.base
}

type MovieFilter struct {
	Category string
	Sort     string
	YearFrom mo.Option[int]
	YearTo   mo.Option[int]
	Page     int
}

type SeriesFilter struct {
	Category string
	Sort     string
	Page     int
}

func emptyPage() source.FilteredResult {
	return source.FilteredResult{Entries: make([]source.CatalogEntry, 0), MaxPage: 1}
}

func (s *Scraper) listing(ctx context.Context, url string, page int, series bool) (source.FilteredResult, error) {
	return scrape(ctx, s, url, emptyPage(), func(doc *goquery.Selection) source.FilteredResult {
		entries := make([]source.CatalogEntry, 0)
		if list := doc.Find("#item-list").First(); list.Length() > 0 {
			entries = ParseEntries(list)
		}
		if series {
			entries = markSeries(entries)
		}
		metrics.Extracted.WithLabelValues("entry").Add(float64(len(entries)))

		return source.FilteredResult{
			Entries: entries,
			MaxPage: ResolveMaxPage(doc, page),
		}
	})
}

func (s *Scraper) Kids(ctx context.Context, page int) (source.FilteredResult, error) {
	return s.listing(ctx, KidsURL(s.base, page), page, false)
}

func (s *Scraper) Movies(ctx context.Context, f MovieFilter) (source.FilteredResult, error) {
	url := MoviesURL(s.base, f.Category, f.Sort, f.YearFrom, f.YearTo, f.Page)
	return s.listing(ctx, url, f.Page, false)
}

func (s *Scraper) Series(ctx context.Context, f SeriesFilter) (source.FilteredResult, error) {
	return s.listing(ctx, SeriesURL(s.base, f.Category, f.Sort, f.Page), f.Page, true)
}

func (s *Scraper) Search(ctx context.Context, phrase string) (source.SearchResult, error) {
	fallback := source.SearchResult{
		Movies:  make([]source.CatalogEntry, 0),
		Serials: make([]source.CatalogEntry, 0),
	}
	return scrape(ctx, s, SearchURL(s.base, phrase), fallback, func(doc *goquery.Selection) source.SearchResult {
		result := ParseSearch(doc)
		metrics.Extracted.WithLabelValues("entry").Add(float64(len(result.Movies) + len(result.Serials)))
		return result
	})
}

func (s *Scraper) Home(ctx context.Context) ([]source.HomeRow, error) {
	return scrape(ctx, s, s.base, make([]source.HomeRow, 0), ParseHomeRows)
}

func (s *Scraper) Detail(ctx context.Context, pageURL string) (mo.Option[source.DetailRecord], error) {
	return scrape(ctx, s, pageURL, mo.None[source.DetailRecord](), func(doc *goquery.Selection) mo.Option[source.DetailRecord] {
		record := ParseDetail(doc)
		metrics.Extracted.WithLabelValues("link").Add(float64(len(record.PlayerLinks)))
		metrics.Extracted.WithLabelValues("comment").Add(float64(len(record.Comments)))
		return mo.Some(record)
	})
}

func (s *Scraper) EpisodeDetail(ctx context.Context, url string) (mo.Option[source.EpisodeDetailRecord], error) {
	return scrape(ctx, s, url, mo.None[source.EpisodeDetailRecord](), func(doc *goquery.Selection) mo.Option[source.EpisodeDetailRecord] {
		record := ParseEpisodeDetail(doc)
		metrics.Extracted.WithLabelValues("link").Add(float64(len(record.PlayerLinks)))
		metrics.Extracted.WithLabelValues("comment").Add(float64(len(record.Comments)))
		return mo.Some(record)
	})
}
