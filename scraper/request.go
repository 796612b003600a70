package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kinotv/kino/constant"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/session"
	"github.com/spf13/viper"
)

// BuildRequest prepares an authenticated GET for url.
// A missing cookie yields ErrSessionExpired before anything touches the network.
func BuildRequest(ctx context.Context, store session.Store, url string) (*http.Request, error) {
	cookie, ok := store.Cookie()
	if !ok {
		return nil, ErrSessionExpired
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Cookie", cookie)
	req.Header.Set("User-Agent", userAgent(store))
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9,en;q=0.8")

	return req, nil
}

func userAgent(store session.Store) string {
	if ua, ok := store.UserAgent(); ok {
		return ua
	}
	if ua := viper.GetString(key.SiteUserAgent); ua != "" {
		return ua
	}
	return constant.DefaultUserAgent
}
