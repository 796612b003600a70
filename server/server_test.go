package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kinotv/kino/filesystem"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/scraper"
	"github.com/kinotv/kino/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeCatalog struct {
	expired     bool
	lastMovies  scraper.MovieFilter
	lastSeries  scraper.SeriesFilter
	lastKids    int
	lastPhrase  string
	detailFound bool
}

func (f *fakeCatalog) err() error {
	if f.expired {
		return scraper.ErrSessionExpired
	}
	return nil
}

func (f *fakeCatalog) page(title string) source.FilteredResult {
	return source.FilteredResult{Entries: []source.CatalogEntry{{Title: title, PageURL: "/" + title}}, MaxPage: 3}
}

func (f *fakeCatalog) Kids(_ context.Context, page int) (source.FilteredResult, error) {
	f.lastKids = page
	return f.page("kids"), f.err()
}

func (f *fakeCatalog) Movies(_ context.Context, filter scraper.MovieFilter) (source.FilteredResult, error) {
	f.lastMovies = filter
	return f.page("movie"), f.err()
}

func (f *fakeCatalog) Series(_ context.Context, filter scraper.SeriesFilter) (source.FilteredResult, error) {
	f.lastSeries = filter
	return f.page("series"), f.err()
}

func (f *fakeCatalog) Search(_ context.Context, phrase string) (source.SearchResult, error) {
	f.lastPhrase = phrase
	return source.SearchResult{Movies: []source.CatalogEntry{{Title: phrase}}, Serials: []source.CatalogEntry{}}, f.err()
}

func (f *fakeCatalog) Home(context.Context) ([]source.HomeRow, error) {
	return []source.HomeRow{{Title: "FILMY NA CZASIE"}}, f.err()
}

func (f *fakeCatalog) Detail(_ context.Context, pageURL string) (mo.Option[source.DetailRecord], error) {
	if !f.detailFound {
		return mo.None[source.DetailRecord](), f.err()
	}
	return mo.Some(source.DetailRecord{
		Title: pageURL,
		PlayerLinks: []source.PlayerLink{
			{HostName: "mixdrop", Version: "Napisy", Quality: "1080p", EncodedPayload: "a"},
			{HostName: "voe", Version: "PL", Quality: "720p", EncodedPayload: "b"},
		},
	}), f.err()
}

func (f *fakeCatalog) EpisodeDetail(_ context.Context, url string) (mo.Option[source.EpisodeDetailRecord], error) {
	return mo.Some(source.EpisodeDetailRecord{EpisodeTitle: url, NextURL: mo.Some("/next")}), f.err()
}

type fakeTrailers map[string]string

func (f fakeTrailers) Find(_ context.Context, q string) mo.Option[string] {
	if id, ok := f[q]; ok {
		return mo.Some(id)
	}
	return mo.None[string]()
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](rec *httptest.ResponseRecorder) T {
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		panic(err)
	}
	return v
}

func TestListings(t *testing.T) {
	Convey("Given a healthy catalog", t, func() {
		catalog := &fakeCatalog{}
		srv := New(catalog, fakeTrailers{})

		Convey("Movies should pass every filter through", func() {
			rec := do(srv, http.MethodGet, "/api/movies?category=Akcja&sort=Ocena&from=2001&to=2003&page=2", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(catalog.lastMovies.Category, ShouldEqual, "Akcja")
			So(catalog.lastMovies.Sort, ShouldEqual, "Ocena")
			So(catalog.lastMovies.YearFrom.OrEmpty(), ShouldEqual, 2001)
			So(catalog.lastMovies.YearTo.OrEmpty(), ShouldEqual, 2003)
			So(catalog.lastMovies.Page, ShouldEqual, 2)

			body := decode[source.FilteredResult](rec)
			So(body.MaxPage, ShouldEqual, 3)
			So(body.Entries[0].Title, ShouldEqual, "movie")
		})

		Convey("Missing years should stay absent", func() {
			do(srv, http.MethodGet, "/api/movies", "")
			So(catalog.lastMovies.YearFrom.IsAbsent(), ShouldBeTrue)
			So(catalog.lastMovies.Page, ShouldEqual, 1)
		})

		Convey("Series and kids should read their page", func() {
			So(do(srv, http.MethodGet, "/api/series?category=Horror&page=4", "").Code, ShouldEqual, http.StatusOK)
			So(catalog.lastSeries.Category, ShouldEqual, "Horror")
			So(catalog.lastSeries.Page, ShouldEqual, 4)

			So(do(srv, http.MethodGet, "/api/kids?page=x", "").Code, ShouldEqual, http.StatusOK)
			So(catalog.lastKids, ShouldEqual, 1)
		})

		Convey("Search should require a phrase", func() {
			So(do(srv, http.MethodGet, "/api/search", "").Code, ShouldEqual, http.StatusBadRequest)

			rec := do(srv, http.MethodGet, "/api/search?q=matrix", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(catalog.lastPhrase, ShouldEqual, "matrix")
		})

		Convey("Home should return rows", func() {
			rows := decode[[]source.HomeRow](do(srv, http.MethodGet, "/api/home", ""))
			So(rows, ShouldHaveLength, 1)
		})

		Convey("Filters should list the tables", func() {
			body := decode[filtersBody](do(srv, http.MethodGet, "/api/filters", ""))
			So(body.Categories, ShouldHaveLength, 11)
			So(body.MovieSorts[0].ID, ShouldEqual, "link")
			So(body.SeriesSorts[0].ID, ShouldEqual, "newepisode")
		})

		Convey("Healthz should answer", func() {
			So(do(srv, http.MethodGet, "/healthz", "").Code, ShouldEqual, http.StatusOK)
		})
	})

	Convey("Given an expired session", t, func() {
		srv := New(&fakeCatalog{expired: true}, fakeTrailers{})

		for _, target := range []string{"/api/kids", "/api/movies", "/api/series", "/api/search?q=a", "/api/home", "/api/episode?url=u"} {
			rec := do(srv, http.MethodGet, target, "")
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
			So(decode[errorBody](rec).Error, ShouldEqual, "session expired")
		}
	})
}

func TestDetail(t *testing.T) {
	Convey("Given a catalog with a detail page", t, func() {
		viper.Set(key.LinksRank, true)
		srv := New(&fakeCatalog{detailFound: true}, fakeTrailers{})

		Convey("Links should be ranked", func() {
			rec := do(srv, http.MethodGet, "/api/detail?url=/m/1", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			body := decode[source.DetailRecord](rec)
			So(body.Title, ShouldEqual, "/m/1")
			So(body.PlayerLinks[0].HostName, ShouldEqual, "voe")
		})

		Convey("Ranking can be switched off", func() {
			viper.Set(key.LinksRank, false)
			defer viper.Set(key.LinksRank, true)

			body := decode[source.DetailRecord](do(srv, http.MethodGet, "/api/detail?url=/m/1", ""))
			So(body.PlayerLinks[0].HostName, ShouldEqual, "mixdrop")
		})

		Convey("The url parameter should be required", func() {
			So(do(srv, http.MethodGet, "/api/detail", "").Code, ShouldEqual, http.StatusBadRequest)
		})
	})

	Convey("Given a detail page that could not be read", t, func() {
		srv := New(&fakeCatalog{}, fakeTrailers{})
		So(do(srv, http.MethodGet, "/api/detail?url=/m/1", "").Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Given an episode", t, func() {
		srv := New(&fakeCatalog{}, fakeTrailers{})
		body := decode[map[string]any](do(srv, http.MethodGet, "/api/episode?url=/e/1", ""))
		So(body["episodeTitle"], ShouldEqual, "/e/1")
		So(body["nextUrl"], ShouldEqual, "/next")
		So(body["prevUrl"], ShouldBeNil)
	})
}

func TestTrailer(t *testing.T) {
	Convey("Given a trailer index", t, func() {
		srv := New(&fakeCatalog{}, fakeTrailers{"matrix": "dQw4w9WgXcQ"})

		rec := do(srv, http.MethodGet, "/api/trailer?q=matrix", "")
		So(rec.Code, ShouldEqual, http.StatusOK)
		So(decode[trailerBody](rec).URL, ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

		So(do(srv, http.MethodGet, "/api/trailer?q=other", "").Code, ShouldEqual, http.StatusNotFound)
		So(do(srv, http.MethodGet, "/api/trailer", "").Code, ShouldEqual, http.StatusBadRequest)
	})
}

func TestWatchlist(t *testing.T) {
	Convey("Given an enabled watchlist", t, func() {
		viper.Set(key.WatchlistEnable, true)
		srv := New(&fakeCatalog{}, fakeTrailers{})

		Convey("Entries can be added, listed and removed", func() {
			rec := do(srv, http.MethodPut, "/api/watchlist", `{"title":"Shrek","pageUrl":"https://filman.cc/m/shrek","imageUrl":null}`)
			So(rec.Code, ShouldEqual, http.StatusNoContent)

			items := decode[[]map[string]any](do(srv, http.MethodGet, "/api/watchlist", ""))
			So(items, ShouldNotBeEmpty)

			rec = do(srv, http.MethodDelete, "/api/watchlist?url=https://filman.cc/m/shrek", "")
			So(rec.Code, ShouldEqual, http.StatusNoContent)
		})

		Convey("Bad bodies should be rejected", func() {
			So(do(srv, http.MethodPut, "/api/watchlist", `{`).Code, ShouldEqual, http.StatusBadRequest)
			So(do(srv, http.MethodPut, "/api/watchlist", `{"title":"x"}`).Code, ShouldEqual, http.StatusBadRequest)
		})
	})

	Convey("Given a disabled watchlist", t, func() {
		viper.Set(key.WatchlistEnable, false)
		defer viper.Set(key.WatchlistEnable, true)

		So(do(New(&fakeCatalog{}, fakeTrailers{}), http.MethodGet, "/api/watchlist", "").Code, ShouldEqual, http.StatusForbidden)
	})
}

func TestMetrics(t *testing.T) {
	Convey("Given metrics are enabled", t, func() {
		viper.Set(key.ServerMetrics, true)
		srv := New(&fakeCatalog{}, fakeTrailers{})

		do(srv, http.MethodGet, "/healthz", "")
		rec := do(srv, http.MethodGet, "/metrics", "")

		So(rec.Code, ShouldEqual, http.StatusOK)
		So(rec.Body.String(), ShouldContainSubstring, "kino_api_requests_total")
	})

	Convey("Given metrics are disabled", t, func() {
		viper.Set(key.ServerMetrics, false)
		defer viper.Set(key.ServerMetrics, true)

		So(do(New(&fakeCatalog{}, fakeTrailers{}), http.MethodGet, "/metrics", "").Code, ShouldEqual, http.StatusNotFound)
	})
}
