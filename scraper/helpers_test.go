package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func mustParse(html string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(err)
	}
	return doc.Selection
}

const shrekPage = `<html>
<body>
	<div>Zalogowany jako User</div>
	<div id="item-list">
		<div class="item">
			<a class="textOverImage" href="https://filman.cc/film/shrek" data-title="Shrek" data-text="Opis Shreka"></a>
			<img src="shrek.jpg" data-src="shrek_real.jpg" />
			<div class="film_year">2001</div>
			<div class="quality-version">1080p Lektor</div>
			<div class="view">1000</div>
			<div class="rate">8.5</div>
		</div>
	</div>
</body>
</html>`

const matrixPage = `<html>
<body>
	<div>Zalogowany jako User</div>
	<h1 class="film_title"><span itemprop="title">Matrix</span></h1>
	<p class="description">W świecie matrixa...</p>
	<div id="single-poster"><img src="poster.jpg"/></div>
	<table id="links">
		<tbody>
			<tr>
				<td>
					<a data-iframe="base64code" href="#">voe.sx dodane 1 godz temu</a>
				</td>
				<td>Lektor</td>
				<td>1080p</td>
			</tr>
		</tbody>
	</table>
</body>
</html>`

const loggedOutPage = `<html>
<body>
	<div id="login-form">Please login</div>
</body>
</html>`
