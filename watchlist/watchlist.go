// Package watchlist keeps a local list of catalog entries the user wants to come back to.
package watchlist

import (
	"encoding/base64"
	"errors"
	"sort"
	"time"

	"github.com/kinotv/kino/filesystem"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/where"
	"github.com/metafates/gache"
	"github.com/spf13/viper"
)

var ErrDisabled = errors.New("watchlist is disabled")

// Item is a saved catalog entry.
type Item struct {
	Entry   source.CatalogEntry `json:"entry"`
	AddedAt time.Time           `json:"addedAt"`
}

var cacher = gache.New[map[string]*Item](
	&gache.Options{
		Path:       where.Watchlist(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Key derives the storage key of a page URL: URL-safe base64 without padding.
func Key(pageURL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(pageURL))
}

func load() (map[string]*Item, error) {
	if !viper.GetBool(key.WatchlistEnable) {
		return nil, ErrDisabled
	}

	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Item), nil
	}
	return cached, nil
}

// Add saves entry, replacing an earlier copy of the same page and moving it to the top.
func Add(entry source.CatalogEntry) error {
	saved, err := load()
	if err != nil {
		return err
	}

	saved[Key(entry.PageURL)] = &Item{Entry: entry, AddedAt: time.Now()}
	return cacher.Set(saved)
}

func Remove(pageURL string) error {
	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, Key(pageURL))
	return cacher.Set(saved)
}

func Has(pageURL string) bool {
	saved, err := load()
	if err != nil {
		return false
	}

	_, ok := saved[Key(pageURL)]
	return ok
}

// List returns saved items, newest first.
func List() ([]*Item, error) {
	saved, err := load()
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(saved))
	for _, item := range saved {
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].Entry.Title < items[j].Entry.Title
		}
		return items[i].AddedAt.After(items[j].AddedAt)
	})

	return items, nil
}
