package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStatusClass(t *testing.T) {
	Convey("StatusClass", t, func() {
		So(StatusClass(200), ShouldEqual, "2xx")
		So(StatusClass(404), ShouldEqual, "4xx")
		So(StatusClass(503), ShouldEqual, "5xx")
		So(StatusClass(0), ShouldEqual, "error")
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given the shared registry", t, func() {
		Convey("Counters should be collected", func() {
			before := testutil.ToFloat64(SessionExpired)
			SessionExpired.Inc()
			So(testutil.ToFloat64(SessionExpired), ShouldEqual, before+1)

			families, err := Registry.Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
		})
	})
}
