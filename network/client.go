// Package network provides the HTTP client used for every outbound catalog request.
package network

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/metrics"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// Doer executes a single HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	Timeout time.Duration
	// RateLimit is requests per second; zero or less disables pacing.
	RateLimit float64
	// TLSFingerprint dials with a Chrome ClientHello instead of Go's.
	TLSFingerprint bool
}

// Client paces requests, negotiates compressed bodies and records metrics.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = time.Minute
	}

	var transport http.RoundTripper = newTransport()
	if opts.TLSFingerprint {
		transport = newFingerprintTransport(opts.Timeout)
	}

	c := &Client{
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
	}

	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return c
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

// Default returns the process-wide client built from the network.* config keys.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = New(Options{
			Timeout:        time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
			RateLimit:      viper.GetFloat64(key.NetworkRateLimit),
			TLSFingerprint: viper.GetBool(key.NetworkTLSFingerprint),
		})
	})
	return defaultClient
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// Do waits for the limiter, sends req and transparently decodes br and gzip bodies.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "br, gzip")
	}

	host := req.URL.Hostname()
	started := time.Now()
	resp, err := c.http.Do(req)
	metrics.FetchDuration.WithLabelValues(host).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.Fetches.WithLabelValues(host, metrics.StatusClass(0)).Inc()
		return nil, err
	}
	metrics.Fetches.WithLabelValues(host, metrics.StatusClass(resp.StatusCode)).Inc()

	if err := decode(resp); err != nil {
		_ = resp.Body.Close()
		return nil, err
	}

	return resp, nil
}

func decode(resp *http.Response) error {
	var reader io.Reader
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("gzip body: %w", err)
		}
		reader = gz
	default:
		return nil
	}

	resp.Body = &decodedBody{Reader: reader, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return nil
}

type decodedBody struct {
	io.Reader
	raw io.Closer
}

func (d *decodedBody) Close() error {
	if c, ok := d.Reader.(io.Closer); ok {
		_ = c.Close()
	}
	return d.raw.Close()
}
