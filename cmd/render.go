package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/icon"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/rank"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/style"
	"github.com/kinotv/kino/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
)

const fallbackWidth = 80

func wrapWidth() int {
	if w := viper.GetInt(key.CliWrap); w > 0 {
		return w
	}
	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		return util.Min(w, 120)
	}
	return fallbackWidth
}

func wrapIndented(s string, by int) string {
	width := util.Max(wrapWidth()-by, 20)
	return indent.String(wordwrap.String(s, width), uint(by))
}

func kindIcon(series bool) string {
	if series {
		return icon.Get(icon.Series)
	}
	return icon.Get(icon.Movie)
}

func renderEntry(w io.Writer, i int, e source.CatalogEntry) {
	var b strings.Builder
	b.WriteString(style.Faint(fmt.Sprintf("%3d", i)))
	b.WriteString(" ")
	if k := kindIcon(e.IsSeries); k != "" {
		b.WriteString(k + " ")
	}
	b.WriteString(style.Bold(e.String()))

	if rating, ok := e.Rating.Get(); ok {
		b.WriteString(" " + style.Fg(color.Yellow)(icon.Get(icon.Star)+rating))
	}
	if quality, ok := e.QualityLabel.Get(); ok {
		b.WriteString(" " + style.Fg(color.Quality(rank.QualityScore(quality)))(quality))
	}
	if views, ok := e.Views.Get(); ok {
		b.WriteString(" " + style.Faint(views))
	}

	fmt.Fprintln(w, b.String())
	fmt.Fprintln(w, "    "+style.Faint(e.PageURL))
}

func renderEntries(w io.Writer, entries []source.CatalogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, style.Faint("nothing found"))
		return
	}
	for i, e := range entries {
		renderEntry(w, i, e)
	}
}

func renderPage(w io.Writer, result source.FilteredResult, page int) {
	renderEntries(w, result.Entries)
	fmt.Fprintf(w, "\n%s\n", style.Faint(fmt.Sprintf("page %d of %d", page, result.MaxPage)))
}

func renderLinks(w io.Writer, links []source.PlayerLink) {
	if len(links) == 0 {
		fmt.Fprintln(w, style.Faint("no links"))
		return
	}
	for i, l := range links {
		quality := style.Fg(color.Quality(rank.QualityScore(l.Quality)))(l.Quality)
		line := fmt.Sprintf("%s %s %s %s", style.Faint(fmt.Sprintf("%3d", i)), style.Bold(l.HostName), l.Version, quality)
		if l.AddedDate != "" {
			line += " " + style.Faint(l.AddedDate)
		}
		fmt.Fprintln(w, line)
	}
}

func renderComments(w io.Writer, comments []source.Comment) {
	maxDepth := util.Max(viper.GetInt(key.CommentsMaxDepthDisplay), 0)
	for _, c := range comments {
		by := util.Min(c.Depth, maxDepth) * 2
		header := fmt.Sprintf("%s %s %s", icon.Get(icon.Comment), style.Bold(c.Author), style.Faint(c.Date))
		fmt.Fprintln(w, indent.String(strings.TrimSpace(header), uint(by)))
		fmt.Fprintln(w, wrapIndented(c.Text, by+2))
	}
}

func heading(w io.Writer, s string) {
	fmt.Fprintf(w, "\n%s\n", style.Title(s))
}

func renderDetail(w io.Writer, d source.DetailRecord) {
	fmt.Fprintln(w, style.Bold(d.Title)+" "+kindIcon(d.IsSeries))

	var facts []string
	for _, f := range []string{d.Year, d.Rating, d.Views} {
		if f != "" {
			facts = append(facts, f)
		}
	}
	if len(facts) > 0 {
		fmt.Fprintln(w, style.Faint(strings.Join(facts, " · ")))
	}
	if len(d.Genres) > 0 {
		fmt.Fprintln(w, style.Fg(color.Cyan)(strings.Join(d.Genres, ", ")))
	}
	if len(d.Countries) > 0 {
		fmt.Fprintln(w, style.Fg(color.Blue)(strings.Join(d.Countries, ", ")))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, wrapIndented(d.Description, 0))

	if d.IsSeries {
		heading(w, fmt.Sprintf("Seasons · %s", util.Quantify(d.EpisodeCount(), "episode", "episodes")))
		for _, s := range d.Seasons {
			fmt.Fprintln(w, style.Bold(s.Title))
			for i, e := range s.Episodes {
				fmt.Fprintf(w, "%s %s %s\n", style.Faint(fmt.Sprintf("%3d", i)), e.Title, style.Faint(e.URL))
			}
		}
	} else {
		heading(w, "Links")
		renderLinks(w, d.PlayerLinks)
	}

	if len(d.Comments) > 0 {
		heading(w, "Comments")
		renderComments(w, d.Comments)
	}
}

func renderEpisode(w io.Writer, e source.EpisodeDetailRecord) {
	fmt.Fprintln(w, style.Bold(e.SeriesTitle))
	fmt.Fprintln(w, style.Italic(e.EpisodeTitle))
	fmt.Fprintln(w)
	fmt.Fprintln(w, wrapIndented(e.Description, 0))

	heading(w, "Links")
	renderLinks(w, e.PlayerLinks)

	if prev, ok := e.PrevURL.Get(); ok {
		fmt.Fprintf(w, "\n%s %s\n", style.Faint("previous"), prev)
	}
	if next, ok := e.NextURL.Get(); ok {
		fmt.Fprintf(w, "%s %s\n", style.Faint("next"), next)
	}

	if len(e.Comments) > 0 {
		heading(w, "Comments")
		renderComments(w, e.Comments)
	}
}

func renderRows(w io.Writer, rows []source.HomeRow) {
	for i, row := range rows {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, style.Title(row.Title))
		renderEntries(w, row.Entries)
	}
}
