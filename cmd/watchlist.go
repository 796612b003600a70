package cmd

import (
	"fmt"

	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/icon"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/style"
	"github.com/kinotv/kino/watchlist"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchlistCmd)
}

var watchlistCmd = &cobra.Command{
	Use:     "watchlist",
	Short:   "Keep a local list of titles to watch later",
	Aliases: []string{"wl"},
}

// entryFromDetail turns a detail page into the card stored on the watchlist.
func entryFromDetail(pageURL string, d source.DetailRecord) source.CatalogEntry {
	var image mo.Option[string]
	if d.PosterURL != "" {
		image = mo.Some(d.PosterURL)
	}
	return source.CatalogEntry{
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    image,
		PageURL:     pageURL,
		Year:        d.Year,
		Rating:      source.OptionalText(d.Rating),
		Views:       source.OptionalText(d.Views),
		IsSeries:    d.IsSeries,
	}
}

func init() {
	watchlistCmd.AddCommand(watchlistAddCmd)
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Save a title to the watchlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := newScraper()
		url := resolveURL(s.BaseURL(), args[0])

		found, err := s.Detail(commandContext(cmd), url)
		handleErr(err)

		detail, ok := found.Get()
		if !ok {
			handleErr(fmt.Errorf("could not load %s", args[0]))
		}

		handleErr(watchlist.Add(entryFromDetail(url, detail)))
		fmt.Printf("%s saved %s\n", style.Fg(color.Green)(icon.Get(icon.Bookmark)), style.Bold(detail.Title))
	},
}

func init() {
	watchlistCmd.AddCommand(watchlistRemoveCmd)
}

var watchlistRemoveCmd = &cobra.Command{
	Use:     "remove <url>",
	Short:   "Remove a title from the watchlist",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := resolveURL(newScraper().BaseURL(), args[0])
		if !watchlist.Has(url) {
			handleErr(fmt.Errorf("%s is not on the watchlist", args[0]))
		}

		handleErr(watchlist.Remove(url))
		fmt.Printf("%s removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	watchlistCmd.AddCommand(watchlistListCmd)
	addJsonFlag(watchlistListCmd)
}

var watchlistListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List saved titles, newest first",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		items, err := watchlist.List()
		handleErr(err)

		if asJson(cmd) {
			printJson(cmd, items)
			return
		}

		renderEntries(cmd.OutOrStdout(), lo.Map(items, func(item *watchlist.Item, _ int) source.CatalogEntry {
			return item.Entry
		}))
	},
}
