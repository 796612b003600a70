package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/util"
)

var commentNoise = strings.NewReplacer(
	"Zawartosc tego komentarza moze zawierac spoiler", "",
	"Pokaz ukryta zawartosc", "",
)

type pendingComment struct {
	el    *goquery.Selection
	depth int
}

// ExtractComments flattens the comment thread in document order, tagging each comment with its nesting depth.
// Nodes missing an author or a body are not emitted, but their replies still are.
func ExtractComments(doc *goquery.Selection) []source.Comment {
	comments := make([]source.Comment, 0)

	var stack util.Stack[pendingComment]
	pushReversed := func(nodes *goquery.Selection, depth int) {
		for i := nodes.Length() - 1; i >= 0; i-- {
			stack.Push(pendingComment{el: nodes.Eq(i), depth: depth})
		}
	}

	pushReversed(doc.Find("#comments > .comment"), 0)

	for !stack.Empty() {
		current := stack.Pop()

		if c, ok := parseComment(current.el, current.depth); ok {
			comments = append(comments, c)
		}

		pushReversed(current.el.ChildrenFiltered(".comment"), current.depth+1)
	}

	return comments
}

func parseComment(el *goquery.Selection, depth int) (source.Comment, bool) {
	own := el.Clone()
	own.Find(".comment, .spoiler-click, .response-comment, .modal").Remove()

	author := text(own.Find("h5 b"))
	body := strings.TrimSpace(commentNoise.Replace(text(own.Find("p"))))
	if author == "" || body == "" {
		return source.Comment{}, false
	}

	return source.Comment{
		Author: author,
		Date:   text(own.Find("h5 sup.pull-right")),
		Text:   body,
		Depth:  depth,
	}, true
}
