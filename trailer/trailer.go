// Package trailer looks up a YouTube trailer for a title.
package trailer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"github.com/kinotv/kino/constant"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/network"
	"github.com/samber/mo"
)

const DefaultSearchURL = "https://www.youtube.com/results"

var videoID = regexp.MustCompile(`"videoId":"([a-zA-Z0-9_-]{11})"`)

type Finder struct {
	searchURL string
	client    network.Doer
}

func NewFinder(client network.Doer) *Finder {
	return &Finder{searchURL: DefaultSearchURL, client: client}
}

// WithSearchURL points the finder at another results endpoint.
func (f *Finder) WithSearchURL(u string) *Finder {
	return &Finder{searchURL: u, client: f.client}
}

// Find returns the id of the first video in the results for query. Failures give None.
func (f *Finder) Find(ctx context.Context, query string) mo.Option[string] {
	id, err := f.find(ctx, query)
	if err != nil {
		log.Warnf("trailer lookup %q: %s", query, err)
		return mo.None[string]()
	}
	return id
}

func (f *Finder) find(ctx context.Context, query string) (mo.Option[string], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.searchURL+"?search_query="+url.QueryEscape(query), nil)
	if err != nil {
		return mo.None[string](), err
	}
	req.Header.Set("User-Agent", constant.DefaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return mo.None[string](), err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return mo.None[string](), fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return mo.None[string](), err
	}

	match := videoID.FindSubmatch(body)
	if match == nil {
		return mo.None[string](), nil
	}
	return mo.Some(string(match[1])), nil
}

// WatchURL is the browser URL for a video id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
