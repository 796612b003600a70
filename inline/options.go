package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Catalog is what a non-interactive run needs from the scraper.
type Catalog interface {
	Search(ctx context.Context, phrase string) (source.SearchResult, error)
	Detail(ctx context.Context, pageURL string) (mo.Option[source.DetailRecord], error)
}

type (
	EntryPicker    func([]source.CatalogEntry) mo.Option[source.CatalogEntry]
	EpisodesFilter func([]source.Episode) []source.Episode
)

type Options struct {
	Out            io.Writer
	Catalog        Catalog
	Json           bool
	Query          string
	Picker         mo.Option[EntryPicker]
	EpisodesFilter mo.Option[EpisodesFilter]
	// Rank orders player links of the picked entry.
	Rank bool
}

// ParseEntryPicker builds a picker from --pick kind and its value: first, last, exact <title>, index <n>.
func ParseEntryPicker(kind, value string) (EntryPicker, error) {
	switch kind {
	case "first":
		return func(entries []source.CatalogEntry) mo.Option[source.CatalogEntry] {
			if len(entries) == 0 {
				return mo.None[source.CatalogEntry]()
			}
			return mo.Some(entries[0])
		}, nil
	case "last":
		return func(entries []source.CatalogEntry) mo.Option[source.CatalogEntry] {
			if len(entries) == 0 {
				return mo.None[source.CatalogEntry]()
			}
			return mo.Some(entries[len(entries)-1])
		}, nil
	case "exact":
		return func(entries []source.CatalogEntry) mo.Option[source.CatalogEntry] {
			found, ok := lo.Find(entries, func(e source.CatalogEntry) bool {
				return strings.EqualFold(e.Title, value)
			})
			if !ok {
				return mo.None[source.CatalogEntry]()
			}
			return mo.Some(found)
		}, nil
	case "index":
		idx, err := strconv.Atoi(value)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(entries []source.CatalogEntry) mo.Option[source.CatalogEntry] {
			if len(entries) == 0 {
				return mo.None[source.CatalogEntry]()
			}
			return mo.Some(entries[util.Min(idx, len(entries)-1)])
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseEpisodesFilter understands "first", "last", "all", a 0-based index, a range "1-5"
// and a title substring "@text@".
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "all":
		return func(episodes []source.Episode) []source.Episode { return episodes }, nil
	case "first":
		return func(episodes []source.Episode) []source.Episode {
			return episodes[:util.Min(1, len(episodes))]
		}, nil
	case "last":
		return func(episodes []source.Episode) []source.Episode {
			return episodes[util.Max(0, len(episodes)-1):]
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.Atoi(from)
		end, err2 := strconv.Atoi(to)
		if err1 == nil && err2 == nil && start >= 0 && end >= 0 {
			return func(episodes []source.Episode) []source.Episode {
				first, last := util.Min(start, len(episodes)), util.Min(end+1, len(episodes))
				if first > last {
					return []source.Episode{}
				}
				return episodes[first:last]
			}, nil
		}
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []source.Episode) []source.Episode {
			return lo.Filter(episodes, func(e source.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Title), sub)
			})
		}, nil
	}

	if idx, err := strconv.Atoi(description); err == nil && idx >= 0 {
		return func(episodes []source.Episode) []source.Episode {
			if idx >= len(episodes) {
				return []source.Episode{}
			}
			return episodes[idx : idx+1]
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
