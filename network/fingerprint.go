package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/kinotv/kino/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const (
	protoH2 = "h2"
	protoH1 = "http/1.1"
)

type dialFunc func(ctx context.Context, network, addr string, protos []string) (net.Conn, string, error)

// fingerprintTransport routes requests over a Chrome-like TLS handshake. The first
// connection to a host offers both h2 and http/1.1; the protocol the server picks
// decides which transport carries that host from then on. A request is sent once.
type fingerprintTransport struct {
	h1, h2 http.RoundTripper
	dial   dialFunc

	mu        sync.Mutex
	protocols map[string]string
	pending   map[string]net.Conn
}

func newFingerprintTransport(timeout time.Duration) *fingerprintTransport {
	t := &fingerprintTransport{
		dial: func(ctx context.Context, network, addr string, protos []string) (net.Conn, string, error) {
			return dialChrome(ctx, network, addr, timeout, protos)
		},
		protocols: make(map[string]string),
		pending:   make(map[string]net.Conn),
	}

	t.h2 = &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return t.connect(ctx, network, addr, protoH2)
		},
	}
	t.h1 = &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return t.connect(ctx, network, addr, protoH1)
		},
		ResponseHeaderTimeout: 30 * time.Second,
	}

	return t
}

// connect hands out the connection left by negotiation, or dials a new one for proto.
func (t *fingerprintTransport) connect(ctx context.Context, network, addr, proto string) (net.Conn, error) {
	t.mu.Lock()
	conn, ok := t.pending[addr]
	delete(t.pending, addr)
	t.mu.Unlock()
	if ok {
		return conn, nil
	}

	conn, _, err := t.dial(ctx, network, addr, []string{proto})
	return conn, err
}

// protocol returns the ALPN protocol of addr, handshaking once if it is not known yet.
func (t *fingerprintTransport) protocol(ctx context.Context, addr string) (string, error) {
	t.mu.Lock()
	proto, ok := t.protocols[addr]
	t.mu.Unlock()
	if ok {
		return proto, nil
	}

	conn, proto, err := t.dial(ctx, "tcp", addr, []string{protoH2, protoH1})
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if known, ok := t.protocols[addr]; ok {
		_ = conn.Close()
		return known, nil
	}

	log.Debugf("%s negotiated %q", addr, proto)
	t.protocols[addr] = proto
	t.pending[addr] = conn
	return proto, nil
}

func hostPort(req *http.Request) string {
	port := req.URL.Port()
	if port == "" {
		port = "443"
	}
	return net.JoinHostPort(req.URL.Hostname(), port)
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	proto, err := t.protocol(req.Context(), hostPort(req))
	if err != nil {
		return nil, err
	}

	if proto == protoH2 {
		return t.h2.RoundTrip(req)
	}
	return t.h1.RoundTrip(req)
}

// dialChrome opens a TLS connection with Chrome's ClientHello, offering protos via ALPN.
// It returns the connection and the negotiated protocol ("" when the server chose none).
func dialChrome(ctx context.Context, network, addr string, timeout time.Duration, protos []string) (net.Conn, string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	spec, err := utls.UTLSIdToSpec(utls.HelloChrome_120)
	if err != nil {
		return nil, "", fmt.Errorf("client hello: %w", err)
	}
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = protos
		}
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, "", err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, utls.HelloCustom)

	if err := tlsConn.ApplyPreset(&spec); err != nil {
		_ = conn.Close()
		return nil, "", fmt.Errorf("client hello: %w", err)
	}

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, "", fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, tlsConn.ConnectionState().NegotiatedProtocol, nil
}
