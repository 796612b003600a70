// Package query remembers search phrases and suggests them back, ranked by use.
package query

import (
	"sort"
	"strings"
	"sync"

	"github.com/kinotv/kino/filesystem"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	suggestionsMu sync.Mutex
	suggestions   = make(map[string][]*record)
)

// Remember bumps the rank of q by weight. It is a no-op when search.history is off.
func Remember(q string, weight int) error {
	if !viper.GetBool(key.SearchHistory) {
		return nil
	}

	q = normalize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[q]; ok {
		r.Rank += weight
	} else {
		cached[q] = &record{Rank: weight, Query: q}
	}

	suggestionsMu.Lock()
	clear(suggestions)
	suggestionsMu.Unlock()

	return cacher.Set(cached)
}

// Suggest returns the best ranked past phrase matching q.
func Suggest(q string) mo.Option[string] {
	found := SuggestMany(q)
	if len(found) == 0 {
		return mo.None[string]()
	}
	return mo.Some(found[0])
}

// SuggestMany returns past phrases fuzzily matching q, most used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = normalize(q)

	suggestionsMu.Lock()
	defer suggestionsMu.Unlock()

	records, ok := suggestions[q]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, r := range cached {
			if fuzzy.Match(q, r.Query) {
				records = append(records, r)
			}
		}

		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Rank == records[j].Rank {
				return records[i].Query < records[j].Query
			}
			return records[i].Rank > records[j].Rank
		})

		suggestions[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

func normalize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
