package scraper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveMaxPage(t *testing.T) {
	Convey("Given a pager", t, func() {
		doc := mustParse(`<ul class="pagination">
			<li><a data-pagenumber="1">1</a></li>
			<li><a data-pagenumber="2">2</a></li>
			<li><a data-pagenumber="47">47</a></li>
			<li><a data-pagenumber="next">»</a></li>
		</ul>`)

		So(ResolveMaxPage(doc, 1), ShouldEqual, 47)
		So(ResolveMaxPage(doc, 50), ShouldEqual, 50)
	})

	Convey("Given no pager", t, func() {
		doc := mustParse(`<div></div>`)

		So(ResolveMaxPage(doc, 0), ShouldEqual, 1)
		So(ResolveMaxPage(doc, 1), ShouldEqual, 1)
		So(ResolveMaxPage(doc, 4), ShouldEqual, 4)
	})

	Convey("The result should never be below the requested page", t, func() {
		doc := mustParse(`<ul class="pagination"><li><a data-pagenumber="3">3</a></li></ul>`)
		for n := 1; n <= 10; n++ {
			So(ResolveMaxPage(doc, n), ShouldBeGreaterThanOrEqualTo, n)
		}
	})
}
