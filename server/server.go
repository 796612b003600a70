// Package server exposes the scraper as a local JSON-over-HTTP service.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/metrics"
	"github.com/kinotv/kino/scraper"
	"github.com/kinotv/kino/source"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Catalog is the part of *scraper.Scraper the service needs.
type Catalog interface {
	Kids(ctx context.Context, page int) (source.FilteredResult, error)
	Movies(ctx context.Context, f scraper.MovieFilter) (source.FilteredResult, error)
	Series(ctx context.Context, f scraper.SeriesFilter) (source.FilteredResult, error)
	Search(ctx context.Context, phrase string) (source.SearchResult, error)
	Home(ctx context.Context) ([]source.HomeRow, error)
	Detail(ctx context.Context, pageURL string) (mo.Option[source.DetailRecord], error)
	EpisodeDetail(ctx context.Context, url string) (mo.Option[source.EpisodeDetailRecord], error)
}

type Trailers interface {
	Find(ctx context.Context, query string) mo.Option[string]
}

var _ Catalog = (*scraper.Scraper)(nil)

type Server struct {
	catalog  Catalog
	trailers Trailers
}

func New(catalog Catalog, trailers Trailers) *Server {
	return &Server{catalog: catalog, trailers: trailers}
}

// Router wires every route. /metrics is only mounted when server.metrics is on.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(instrument)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/kids", s.kids).Methods(http.MethodGet)
	api.HandleFunc("/movies", s.movies).Methods(http.MethodGet)
	api.HandleFunc("/series", s.series).Methods(http.MethodGet)
	api.HandleFunc("/search", s.search).Methods(http.MethodGet)
	api.HandleFunc("/home", s.home).Methods(http.MethodGet)
	api.HandleFunc("/detail", s.detail).Methods(http.MethodGet)
	api.HandleFunc("/episode", s.episode).Methods(http.MethodGet)
	api.HandleFunc("/filters", s.filters).Methods(http.MethodGet)
	api.HandleFunc("/trailer", s.trailer).Methods(http.MethodGet)
	api.HandleFunc("/watchlist", s.listWatchlist).Methods(http.MethodGet)
	api.HandleFunc("/watchlist", s.addWatchlist).Methods(http.MethodPut)
	api.HandleFunc("/watchlist", s.removeWatchlist).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	if viper.GetBool(key.ServerMetrics) {
		r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		metrics.Requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		log.WithField("route", route).
			WithField("status", rec.status).
			WithField("took", time.Since(started).String()).
			Debug(r.Method)
	})
}
