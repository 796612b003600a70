package scraper

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kinotv/kino/util"
	"github.com/samber/mo"
)

func withPage(u string, page int) string {
	if page > 1 {
		return fmt.Sprintf("%s?page=%d", u, page)
	}
	return u
}

func trimBase(base string) string {
	return strings.TrimRight(base, "/")
}

func KidsURL(base string, page int) string {
	return withPage(trimBase(base)+"/dla-dzieci-pl/", page)
}

// Year bounds accepted by MoviesURL; anything outside is clamped.
const (
	MinYear = 1900
	MaxYear = 2100
)

func clampYear(y int) int {
	return util.Min(util.Max(y, MinYear), MaxYear)
}

// MoviesURL builds /filmy/[category:ID/][year:Y2,Y1/]sort:ID/. Both year bounds are needed for the
// year segment; they are clamped to MinYear..MaxYear, swapped if reversed and listed newest first.
func MoviesURL(base, category, sort string, yearFrom, yearTo mo.Option[int], page int) string {
	parts := make([]string, 0, 3)

	if id := Categories.Lookup(category); id != "" {
		parts = append(parts, "category:"+id)
	}

	from, okFrom := yearFrom.Get()
	to, okTo := yearTo.Get()
	if okFrom && okTo {
		from, to = clampYear(from), clampYear(to)
		start, end := util.Min(from, to), util.Max(from, to)
		years := make([]string, 0, end-start+1)
		for y := end; y >= start; y-- {
			years = append(years, strconv.Itoa(y))
		}
		parts = append(parts, "year:"+strings.Join(years, ","))
	}

	parts = append(parts, "sort:"+MovieSorts.Lookup(sort))

	return withPage(trimBase(base)+"/filmy/"+strings.Join(parts, "/")+"/", page)
}

// SeriesURL builds /seriale/sort:ID[/category:ID].
func SeriesURL(base, category, sort string, page int) string {
	parts := []string{"sort:" + SeriesSorts.Lookup(sort)}
	if id := Categories.Lookup(category); id != "" {
		parts = append(parts, "category:"+id)
	}

	return withPage(trimBase(base)+"/seriale/"+strings.Join(parts, "/"), page)
}

func SearchURL(base, phrase string) string {
	return trimBase(base) + "/item?phrase=" + url.QueryEscape(phrase)
}
