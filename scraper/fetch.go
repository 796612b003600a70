package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/log"
)

// fetch downloads url with the stored credentials and checks the session on the parsed page.
func (s *Scraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := BuildRequest(ctx, s.store, url)
	if err != nil {
		return nil, err
	}

	log.Debugf("fetching %s", url)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	// error pages are checked too; a logged-out body must clear the session whatever the status
	if err := Validate(doc.Selection, s.store); err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("get %s: unexpected status %s", url, resp.Status)
	}

	return doc, nil
}

// scrape fetches url and runs parse on it. Session expiry is returned; any other failure,
// including a panic inside parse, is logged and replaced by fallback.
func scrape[T any](ctx context.Context, s *Scraper, url string, fallback T, parse func(*goquery.Selection) T) (result T, err error) {
	doc, err := s.fetch(ctx, url)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return fallback, err
		}
		log.Warn(err)
		return fallback, nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Warnf("extract %s: %v", url, r)
			result, err = fallback, nil
		}
	}()

	return parse(doc.Selection), nil
}
