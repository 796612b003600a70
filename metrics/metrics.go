// Package metrics holds the prometheus collectors shared by the network client and the JSON service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry is exposed on /metrics by `kino serve`.
var Registry = prometheus.NewRegistry()

var (
	Fetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kino",
		Name:      "fetches_total",
		Help:      "Outbound catalog requests by host and status class.",
	}, []string{"host", "status"})

	FetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kino",
		Name:      "fetch_duration_seconds",
		Help:      "Latency of outbound catalog requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"host"})

	SessionExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kino",
		Name:      "session_expired_total",
		Help:      "Pages that came back without the logged-in marker.",
	})

	Extracted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kino",
		Name:      "extracted_total",
		Help:      "Entities produced by the extractors.",
	}, []string{"kind"})

	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kino",
		Name:      "api_requests_total",
		Help:      "JSON service requests by route and status code.",
	}, []string{"route", "code"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		Fetches,
		FetchDuration,
		SessionExpired,
		Extracted,
		Requests,
	)
}

// StatusClass folds an HTTP status into "2xx", "4xx" and so on. Zero means the request never got a response.
func StatusClass(code int) string {
	if code <= 0 {
		return "error"
	}
	return string(rune('0'+code/100)) + "xx"
}
