package scraper

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/metrics"
	"github.com/kinotv/kino/session"
	"github.com/kinotv/kino/util"
)

// ErrSessionExpired means the stored cookie is missing or the site no longer accepts it.
// It is the only error the Scraper operations return.
var ErrSessionExpired = errors.New("session expired")

const loggedInMarker = "zalogowany jako"

// Validate checks the visible text of doc for the logged-in marker. When it is missing the
// store is cleared and ErrSessionExpired is returned. doc is not modified.
func Validate(doc *goquery.Selection, store session.Store) error {
	visible := doc.Clone()
	visible.Find("script, style, noscript, template").Remove()

	text := strings.ToLower(util.NormSpace(visible.Text()))
	if strings.Contains(text, loggedInMarker) {
		return nil
	}

	log.Error("logged-in marker missing, clearing stored session")
	metrics.SessionExpired.Inc()
	store.Clear()
	return ErrSessionExpired
}
