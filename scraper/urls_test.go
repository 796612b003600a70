package scraper

import (
	"math"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const base = "https://filman.cc"

func TestKidsURL(t *testing.T) {
	Convey("KidsURL", t, func() {
		So(KidsURL(base, 1), ShouldEqual, "https://filman.cc/dla-dzieci-pl/")
		So(KidsURL(base+"/", 0), ShouldEqual, "https://filman.cc/dla-dzieci-pl/")
		So(KidsURL(base, 3), ShouldEqual, "https://filman.cc/dla-dzieci-pl/?page=3")
	})
}

func TestMoviesURL(t *testing.T) {
	none := mo.None[int]()

	Convey("Given default filters", t, func() {
		Convey("Only the default sort should appear", func() {
			So(MoviesURL(base, "Wszystkie", "Nowe Linki", none, none, 1), ShouldEqual, "https://filman.cc/filmy/sort:link/")
		})

		Convey("Unknown names should fall back", func() {
			So(MoviesURL(base, "Western", "Alfabetycznie", none, none, 1), ShouldEqual, "https://filman.cc/filmy/sort:link/")
		})
	})

	Convey("Given a category, a reversed year range and a page", t, func() {
		u := MoviesURL(base, "Akcja", "Liczba Głosów", mo.Some(2003), mo.Some(2001), 3)

		Convey("Segments should be ordered category, year, sort", func() {
			So(u, ShouldEqual, "https://filman.cc/filmy/category:1/year:2003,2002,2001/sort:vote/?page=3")
		})
	})

	Convey("Given only one year bound", t, func() {
		u := MoviesURL(base, "", "Ocena", mo.Some(1999), none, 1)

		Convey("The year segment should be omitted", func() {
			So(u, ShouldNotContainSubstring, "year:")
			So(u, ShouldEqual, "https://filman.cc/filmy/sort:rate/")
		})
	})

	Convey("Given equal year bounds", t, func() {
		So(MoviesURL(base, "", "", mo.Some(2020), mo.Some(2020), 1), ShouldEqual, "https://filman.cc/filmy/year:2020/sort:link/")
	})

	Convey("Given extreme year bounds", t, func() {
		u := MoviesURL(base, "", "", mo.Some(0), mo.Some(math.MaxInt), 1)

		Convey("The range should be clamped to the supported window", func() {
			So(u, ShouldStartWith, "https://filman.cc/filmy/year:2100,2099,")
			So(u, ShouldEndWith, ",1901,1900/sort:link/")
			So(strings.Count(u, ","), ShouldEqual, MaxYear-MinYear)
		})

		Convey("Negative and overflowing bounds should not panic", func() {
			So(func() { MoviesURL(base, "", "", mo.Some(math.MinInt), mo.Some(math.MaxInt), 1) }, ShouldNotPanic)
			So(MoviesURL(base, "", "", mo.Some(math.MinInt), mo.Some(-5), 1), ShouldEqual, "https://filman.cc/filmy/year:1900/sort:link/")
		})
	})

	Convey("Every movie URL should end with a slash before the query", t, func() {
		for _, name := range MovieSorts.Names() {
			u := MoviesURL(base, "Horror", name, none, none, 2)
			path, _, _ := strings.Cut(u, "?")
			So(path, ShouldEndWith, "/")
		}
	})
}

func TestSeriesURL(t *testing.T) {
	Convey("Given Akcja sorted by views on page 2", t, func() {
		u := SeriesURL(base, "Akcja", "Odsłony", 2)

		So(u, ShouldContainSubstring, "/seriale/")
		So(u, ShouldContainSubstring, "sort:view")
		So(u, ShouldContainSubstring, "category:1")
		So(u, ShouldContainSubstring, "page=2")
		So(u, ShouldEqual, "https://filman.cc/seriale/sort:view/category:1?page=2")
	})

	Convey("Given defaults", t, func() {
		So(SeriesURL(base, "Wszystkie", "", 1), ShouldEqual, "https://filman.cc/seriale/sort:newepisode")
		So(SeriesURL(base, "", "Nope", 1), ShouldEqual, "https://filman.cc/seriale/sort:newepisode")
	})
}

func TestSearchURL(t *testing.T) {
	Convey("SearchURL should encode the phrase", t, func() {
		So(SearchURL(base, "szybcy i wściekli"), ShouldEqual, "https://filman.cc/item?phrase=szybcy+i+w%C5%9Bciekli")
		So(SearchURL(base, "a&b"), ShouldEqual, "https://filman.cc/item?phrase=a%26b")
	})
}

func TestTables(t *testing.T) {
	Convey("Tables", t, func() {
		So(Categories.Lookup("Sci-Fi"), ShouldEqual, "57")
		So(Categories.Lookup("sci-fi"), ShouldEqual, "57")
		So(Categories.Lookup("missing"), ShouldEqual, "")
		So(MovieSorts.Lookup("Ocena Filmweb"), ShouldEqual, "filmweb")
		So(SeriesSorts.Lookup("Nowe Seriale"), ShouldEqual, "date")

		So(Categories.Names()[0], ShouldEqual, "Wszystkie")
		So(len(Categories.Names()), ShouldEqual, 11)
		So(MovieSorts.Default(), ShouldEqual, "Nowe Linki")
		So(SeriesSorts.Default(), ShouldEqual, "Nowe Odcinki")

		Convey("Choices should be a copy", func() {
			choices := MovieSorts.Choices()
			choices[0].ID = "changed"
			So(MovieSorts.Lookup("Nowe Linki"), ShouldEqual, "link")
		})
	})
}
