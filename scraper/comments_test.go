package scraper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const threadPage = `<div id="comments">
	<div class="comment">
		<h5><b>Ala</b><sup class="pull-right">2 dni temu</sup></h5>
		<p>Świetny film</p>
		<div class="comment">
			<h5><b>Ola</b><sup class="pull-right">1 dzień temu</sup></h5>
			<p><span class="spoiler-click">Pokaz ukryta zawartosc</span>Zawartosc tego komentarza moze zawierac spoiler Zgadzam się</p>
			<div class="response-comment"><p>Odpowiedz</p></div>
			<div class="comment">
				<h5><b>Iza</b></h5>
				<p>Trzeci poziom</p>
			</div>
		</div>
	</div>
	<div class="comment">
		<h5></h5>
		<p>bez autora</p>
		<div class="comment">
			<h5><b>Ewa</b></h5>
			<p>Odpowiedź do usuniętego</p>
		</div>
	</div>
	<div class="comment">
		<h5><b>Pusty</b></h5>
		<p>Pokaz ukryta zawartosc</p>
	</div>
</div>`

func TestExtractComments(t *testing.T) {
	Convey("Given a nested comment thread", t, func() {
		comments := ExtractComments(mustParse(threadPage))

		Convey("Comments should come out in document order with depths", func() {
			So(comments, ShouldHaveLength, 4)

			So(comments[0].Author, ShouldEqual, "Ala")
			So(comments[0].Depth, ShouldEqual, 0)
			So(comments[0].Text, ShouldEqual, "Świetny film")
			So(comments[0].Date, ShouldEqual, "2 dni temu")

			So(comments[1].Author, ShouldEqual, "Ola")
			So(comments[1].Depth, ShouldEqual, 1)

			So(comments[2].Author, ShouldEqual, "Iza")
			So(comments[2].Depth, ShouldEqual, 2)
			So(comments[2].Date, ShouldEqual, "")

			So(comments[3].Author, ShouldEqual, "Ewa")
			So(comments[3].Depth, ShouldEqual, 1)
		})

		Convey("Spoiler chrome and reply forms should be stripped", func() {
			So(comments[1].Text, ShouldEqual, "Zgadzam się")
		})

		Convey("Every emitted comment should have an author and a body", func() {
			for _, c := range comments {
				So(c.Author, ShouldNotBeEmpty)
				So(c.Text, ShouldNotBeEmpty)
				So(c.Depth, ShouldBeGreaterThanOrEqualTo, 0)
			}
		})
	})

	Convey("Given a page without comments", t, func() {
		comments := ExtractComments(mustParse(`<div id="comments"></div>`))
		So(comments, ShouldNotBeNil)
		So(comments, ShouldBeEmpty)
	})

	Convey("Given a deep thread", t, func() {
		html := `<div id="comments">`
		for i := 0; i < 60; i++ {
			html += `<div class="comment"><h5><b>u</b></h5><p>t</p>`
		}
		for i := 0; i < 60; i++ {
			html += `</div>`
		}
		html += `</div>`

		comments := ExtractComments(mustParse(html))

		Convey("There should be no depth limit", func() {
			So(comments, ShouldHaveLength, 60)
			So(comments[59].Depth, ShouldEqual, 59)
		})
	})
}
