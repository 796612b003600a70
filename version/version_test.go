package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kinotv/kino/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare should order semantic versions", t, func() {
		cmp, err := Compare("v1.2.3", "1.2.3")
		So(err, ShouldBeNil)
		So(cmp, ShouldEqual, 0)

		cmp, _ = Compare("0.4.0", "0.3.9")
		So(cmp, ShouldEqual, 1)

		cmp, _ = Compare("0.3.1", "1.0.0")
		So(cmp, ShouldEqual, -1)

		_, err = Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"tag_name":"v0.9.0"}`))
		}))
		defer srv.Close()

		previous := ReleasesURL
		ReleasesURL = srv.URL
		defer func() { ReleasesURL = previous }()

		latest, err := Latest(context.Background(), srv.Client())
		So(err, ShouldBeNil)
		So(latest, ShouldEqual, "0.9.0")

		Convey("The second lookup should be served from cache", func() {
			again, err := Latest(context.Background(), srv.Client())
			So(err, ShouldBeNil)
			So(again, ShouldEqual, "0.9.0")
			So(hits.Load(), ShouldEqual, 1)
		})
	})
}
