package scraper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseEntries(t *testing.T) {
	Convey("Given the Shrek listing", t, func() {
		entries := ParseEntries(mustParse(shrekPage).Find("#item-list"))

		So(entries, ShouldHaveLength, 1)
		shrek := entries[0]
		So(shrek.Title, ShouldEqual, "Shrek")
		So(shrek.Description, ShouldEqual, "Opis Shreka")
		So(shrek.PageURL, ShouldEqual, "https://filman.cc/film/shrek")
		So(shrek.Year, ShouldEqual, "2001")
		So(shrek.ImageURL.OrEmpty(), ShouldEqual, "shrek_real.jpg")
		So(shrek.Rating.OrEmpty(), ShouldEqual, "8.5")
		So(shrek.Views.OrEmpty(), ShouldEqual, "1000")
		So(shrek.QualityLabel.OrEmpty(), ShouldEqual, "1080p Lektor")
		So(shrek.IsSeries, ShouldBeFalse)
	})

	Convey("Given cards that exercise the fallbacks", t, func() {
		const html = `<div id="item-list">
			<div class="item">
				<a class="textOverImage2" href="/m/1"></a>
				<h1 class="film_title">  Z nagłówka  </h1>
				<picture><source data-src="lazy.webp"><img></picture>
				<div class="direct-version"><span>7.1</span></div>
				<div class="rate">1.0</div>
			</div>
			<div class="item">
				<a class="textOverImage" href="/m/2"></a>
				<span class="film_title">Z klasy</span>
				<picture><source srcset="set.webp 1x"><img></picture>
			</div>
			<div class="item">
				<a class="textOverImage" href="/m/3" data-title="Bez obrazka"></a>
			</div>
			<div class="item">
				<img src="orphan.jpg">
			</div>
			<div class="item">
				<a class="textOverImage" href="/m/5"></a>
				<img>
				<div class="view">   </div>
			</div>
		</div>`

		entries := ParseEntries(mustParse(html).Find("#item-list"))

		Convey("Cards missing a link or an image should be skipped", func() {
			So(entries, ShouldHaveLength, 3)
		})

		Convey("The title should fall back to h1.film_title then .film_title", func() {
			So(entries[0].Title, ShouldEqual, "Z nagłówka")
			So(entries[1].Title, ShouldEqual, "Z klasy")
			So(entries[2].Title, ShouldEqual, "")
		})

		Convey("The image should fall back to the sibling source element", func() {
			So(entries[0].ImageURL.OrEmpty(), ShouldEqual, "lazy.webp")
			So(entries[1].ImageURL.OrEmpty(), ShouldEqual, "set.webp 1x")
			So(entries[2].ImageURL.IsAbsent(), ShouldBeTrue)
		})

		Convey("The rating should prefer .direct-version span", func() {
			So(entries[0].Rating.OrEmpty(), ShouldEqual, "7.1")
			So(entries[1].Rating.IsAbsent(), ShouldBeTrue)
		})

		Convey("Blank optional fields should be absent", func() {
			So(entries[2].Views.IsAbsent(), ShouldBeTrue)
			So(entries[2].QualityLabel.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given an empty container", t, func() {
		entries := ParseEntries(mustParse(`<div id="item-list"></div>`).Find("#item-list"))
		So(entries, ShouldNotBeNil)
		So(entries, ShouldBeEmpty)
	})
}
