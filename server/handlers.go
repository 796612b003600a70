package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/rank"
	"github.com/kinotv/kino/scraper"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/trailer"
	"github.com/kinotv/kino/watchlist"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("encode response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// fail maps a scraper error to a response. It reports whether err was non-nil.
func fail(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, scraper.ErrSessionExpired) {
		writeError(w, http.StatusUnauthorized, scraper.ErrSessionExpired.Error())
		return true
	}
	writeError(w, http.StatusInternalServerError, err.Error())
	return true
}

func intParam(r *http.Request, name string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return n
}

func optionalInt(r *http.Request, name string) mo.Option[int] {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(n)
}

func requiredParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		writeError(w, http.StatusBadRequest, name+" is required")
		return "", false
	}
	return v, true
}

func rankLinks(links []source.PlayerLink) []source.PlayerLink {
	if viper.GetBool(key.LinksRank) {
		return rank.Sort(links)
	}
	return links
}

func (s *Server) kids(w http.ResponseWriter, r *http.Request) {
	result, err := s.catalog.Kids(r.Context(), intParam(r, "page", 1))
	if fail(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) movies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := s.catalog.Movies(r.Context(), scraper.MovieFilter{
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		YearFrom: optionalInt(r, "from"),
		YearTo:   optionalInt(r, "to"),
		Page:     intParam(r, "page", 1),
	})
	if fail(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) series(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := s.catalog.Series(r.Context(), scraper.SeriesFilter{
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		Page:     intParam(r, "page", 1),
	})
	if fail(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	phrase, ok := requiredParam(w, r, "q")
	if !ok {
		return
	}

	result, err := s.catalog.Search(r.Context(), phrase)
	if fail(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	rows, err := s.catalog.Home(r.Context())
	if fail(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) detail(w http.ResponseWriter, r *http.Request) {
	pageURL, ok := requiredParam(w, r, "url")
	if !ok {
		return
	}

	detail, err := s.catalog.Detail(r.Context(), pageURL)
	if fail(w, err) {
		return
	}

	record, ok := detail.Get()
	if !ok {
		writeError(w, http.StatusNotFound, "detail unavailable")
		return
	}
	record.PlayerLinks = rankLinks(record.PlayerLinks)
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) episode(w http.ResponseWriter, r *http.Request) {
	url, ok := requiredParam(w, r, "url")
	if !ok {
		return
	}

	episode, err := s.catalog.EpisodeDetail(r.Context(), url)
	if fail(w, err) {
		return
	}

	record, ok := episode.Get()
	if !ok {
		writeError(w, http.StatusNotFound, "episode unavailable")
		return
	}
	record.PlayerLinks = rankLinks(record.PlayerLinks)
	writeJSON(w, http.StatusOK, record)
}

type filtersBody struct {
	Categories  []scraper.Choice `json:"categories"`
	MovieSorts  []scraper.Choice `json:"movieSorts"`
	SeriesSorts []scraper.Choice `json:"seriesSorts"`
}

func (s *Server) filters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, filtersBody{
		Categories:  scraper.Categories.Choices(),
		MovieSorts:  scraper.MovieSorts.Choices(),
		SeriesSorts: scraper.SeriesSorts.Choices(),
	})
}

type trailerBody struct {
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
}

func (s *Server) trailer(w http.ResponseWriter, r *http.Request) {
	q, ok := requiredParam(w, r, "q")
	if !ok {
		return
	}

	id, found := s.trailers.Find(r.Context(), q).Get()
	if !found {
		writeError(w, http.StatusNotFound, "no trailer found")
		return
	}
	writeJSON(w, http.StatusOK, trailerBody{VideoID: id, URL: trailer.WatchURL(id)})
}

func watchlistFail(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, watchlist.ErrDisabled) {
		writeError(w, http.StatusForbidden, err.Error())
		return true
	}
	writeError(w, http.StatusInternalServerError, err.Error())
	return true
}

func (s *Server) listWatchlist(w http.ResponseWriter, _ *http.Request) {
	items, err := watchlist.List()
	if watchlistFail(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) addWatchlist(w http.ResponseWriter, r *http.Request) {
	var entry source.CatalogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry: "+err.Error())
		return
	}
	if strings.TrimSpace(entry.PageURL) == "" {
		writeError(w, http.StatusBadRequest, "pageUrl is required")
		return
	}

	if watchlistFail(w, watchlist.Add(entry)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeWatchlist(w http.ResponseWriter, r *http.Request) {
	pageURL, ok := requiredParam(w, r, "url")
	if !ok {
		return
	}

	if watchlistFail(w, watchlist.Remove(pageURL)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
