package network

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type countingTripper struct {
	calls atomic.Int32
	err   error
}

func (c *countingTripper) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func fakeTransport(negotiated string, dialErr error) (*fingerprintTransport, *countingTripper, *countingTripper, *atomic.Int32) {
	var dials atomic.Int32
	h1, h2 := &countingTripper{}, &countingTripper{}
	t := &fingerprintTransport{
		h1: h1,
		h2: h2,
		dial: func(context.Context, string, string, []string) (net.Conn, string, error) {
			dials.Add(1)
			if dialErr != nil {
				return nil, "", dialErr
			}
			client, server := net.Pipe()
			_ = server.Close()
			return client, negotiated, nil
		},
		protocols: make(map[string]string),
		pending:   make(map[string]net.Conn),
	}
	return t, h1, h2, &dials
}

func get(t *testing.T, url string) *http.Request {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestFingerprintTransport(t *testing.T) {
	Convey("Given a host that negotiates h2", t, func() {
		transport, h1, h2, dials := fakeTransport(protoH2, nil)

		Convey("A failing h2 request should not be sent again over http/1.1", func() {
			h2.err = context.DeadlineExceeded

			_, err := transport.RoundTrip(get(t, "https://filman.cc/"))
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
			So(h2.calls.Load(), ShouldEqual, 1)
			So(h1.calls.Load(), ShouldEqual, 0)
		})

		Convey("The negotiated protocol should be remembered per host", func() {
			_, err := transport.RoundTrip(get(t, "https://filman.cc/a"))
			So(err, ShouldBeNil)
			_, err = transport.RoundTrip(get(t, "https://filman.cc:443/b"))
			So(err, ShouldBeNil)

			So(dials.Load(), ShouldEqual, 1)
			So(h2.calls.Load(), ShouldEqual, 2)
		})

		Convey("The negotiation connection should be handed to the transport", func() {
			_, _ = transport.protocol(context.Background(), "filman.cc:443")

			conn, err := transport.connect(context.Background(), "tcp", "filman.cc:443", protoH2)
			So(err, ShouldBeNil)
			So(conn, ShouldNotBeNil)
			So(dials.Load(), ShouldEqual, 1)
		})
	})

	Convey("Given a host that only speaks http/1.1", t, func() {
		transport, h1, h2, _ := fakeTransport(protoH1, nil)

		_, err := transport.RoundTrip(get(t, "https://filman.cc/"))
		So(err, ShouldBeNil)
		So(h1.calls.Load(), ShouldEqual, 1)
		So(h2.calls.Load(), ShouldEqual, 0)
	})

	Convey("Given a handshake failure", t, func() {
		transport, h1, h2, _ := fakeTransport("", errors.New("tls handshake: reset"))

		_, err := transport.RoundTrip(get(t, "https://filman.cc/"))
		So(err, ShouldNotBeNil)
		So(h1.calls.Load()+h2.calls.Load(), ShouldEqual, 0)
	})

	Convey("Plain http should skip negotiation", t, func() {
		transport, h1, _, dials := fakeTransport(protoH2, nil)

		_, err := transport.RoundTrip(get(t, "http://filman.cc/"))
		So(err, ShouldBeNil)
		So(h1.calls.Load(), ShouldEqual, 1)
		So(dials.Load(), ShouldEqual, 0)
	})
}
