package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/kinotv/kino/scraper"
	"github.com/kinotv/kino/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeCatalog struct {
	detailCalls int
	expired     bool
}

func (f *fakeCatalog) Search(_ context.Context, phrase string) (source.SearchResult, error) {
	if f.expired {
		return source.SearchResult{}, scraper.ErrSessionExpired
	}
	return source.SearchResult{
		Movies:  []source.CatalogEntry{{Title: "Matrix", PageURL: "/m/matrix"}},
		Serials: []source.CatalogEntry{{Title: "Matrix: serial", PageURL: "/s/matrix", IsSeries: true}},
	}, nil
}

func (f *fakeCatalog) Detail(_ context.Context, pageURL string) (mo.Option[source.DetailRecord], error) {
	f.detailCalls++
	if pageURL == "/s/matrix" {
		return mo.Some(source.DetailRecord{
			Title:    "Matrix: serial",
			IsSeries: true,
			Seasons: []source.Season{{Title: "Sezon 1", Episodes: []source.Episode{
				{Title: "Pilot", URL: "/e/1"}, {Title: "Drugi", URL: "/e/2"}, {Title: "Trzeci", URL: "/e/3"},
			}}},
		}), nil
	}
	return mo.Some(source.DetailRecord{
		Title: "Matrix",
		PlayerLinks: []source.PlayerLink{
			{HostName: "mixdrop", Version: "Napisy", Quality: "720p", EncodedPayload: "a"},
			{HostName: "voe", Version: "Lektor", Quality: "1080p", EncodedPayload: "b"},
		},
	}), nil
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given a search without a picker", t, func() {
		var buf bytes.Buffer
		catalog := &fakeCatalog{}
		err := Run(ctx, &Options{Out: &buf, Catalog: catalog, Query: "matrix", Json: true})
		So(err, ShouldBeNil)

		var out Output
		So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)

		Convey("Every hit should be listed without details", func() {
			So(out.Query, ShouldEqual, "matrix")
			So(out.Result, ShouldHaveLength, 2)
			So(out.Result[0].Detail, ShouldBeNil)
			So(catalog.detailCalls, ShouldEqual, 0)
		})
	})

	Convey("Given a picked movie with ranking", t, func() {
		var buf bytes.Buffer
		picker, err := ParseEntryPicker("first", "")
		So(err, ShouldBeNil)

		err = Run(ctx, &Options{Out: &buf, Catalog: &fakeCatalog{}, Query: "matrix", Picker: mo.Some(picker), Rank: true})
		So(err, ShouldBeNil)

		Convey("Links should be printed best first", func() {
			So(buf.String(), ShouldStartWith, "voe\tLektor\t1080p\tb\n")
		})
	})

	Convey("Given a picked series with an episode filter", t, func() {
		var buf bytes.Buffer
		picker, _ := ParseEntryPicker("exact", "matrix: serial")
		filter, _ := ParseEpisodesFilter("1-5")

		err := Run(ctx, &Options{
			Out:            &buf,
			Catalog:        &fakeCatalog{},
			Query:          "matrix",
			Picker:         mo.Some(picker),
			EpisodesFilter: mo.Some(filter),
		})
		So(err, ShouldBeNil)
		So(buf.String(), ShouldEqual, "/e/2\n/e/3\n")
	})

	Convey("Given an expired session", t, func() {
		err := Run(ctx, &Options{Out: &bytes.Buffer{}, Catalog: &fakeCatalog{expired: true}, Query: "x"})
		So(err, ShouldEqual, scraper.ErrSessionExpired)
	})

	Convey("Given an empty result in json mode", t, func() {
		var buf bytes.Buffer
		So(writeJson(&buf, "none", nil), ShouldBeNil)

		var out Output
		So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
		So(out.Result, ShouldNotBeNil)
		So(out.Result, ShouldBeEmpty)
	})
}

func TestParsers(t *testing.T) {
	entries := []source.CatalogEntry{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	episodes := []source.Episode{{Title: "Pilot"}, {Title: "Powrót"}, {Title: "Finał"}}

	Convey("ParseEntryPicker", t, func() {
		last, _ := ParseEntryPicker("last", "")
		So(last(entries).MustGet().Title, ShouldEqual, "C")

		index, _ := ParseEntryPicker("index", "10")
		So(index(entries).MustGet().Title, ShouldEqual, "C")

		exact, _ := ParseEntryPicker("exact", "b")
		So(exact(entries).MustGet().Title, ShouldEqual, "B")

		first, _ := ParseEntryPicker("first", "")
		So(first(nil).IsAbsent(), ShouldBeTrue)

		_, err := ParseEntryPicker("index", "x")
		So(err, ShouldNotBeNil)
		_, err = ParseEntryPicker("random", "")
		So(err, ShouldNotBeNil)
	})

	Convey("ParseEpisodesFilter", t, func() {
		apply := func(description string) []source.Episode {
			f, err := ParseEpisodesFilter(description)
			So(err, ShouldBeNil)
			return f(episodes)
		}

		So(apply("all"), ShouldHaveLength, 3)
		So(apply("first")[0].Title, ShouldEqual, "Pilot")
		So(apply("last")[0].Title, ShouldEqual, "Finał")
		So(apply("1"), ShouldResemble, []source.Episode{{Title: "Powrót"}})
		So(apply("7"), ShouldBeEmpty)
		So(apply("0-1"), ShouldHaveLength, 2)
		So(apply("@po@"), ShouldResemble, []source.Episode{{Title: "Powrót"}})

		_, err := ParseEpisodesFilter("sometimes")
		So(err, ShouldNotBeNil)
	})
}
