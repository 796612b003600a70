package cmd

import (
	"fmt"
	"io"

	"github.com/kinotv/kino/icon"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/network"
	"github.com/kinotv/kino/open"
	"github.com/kinotv/kino/playback"
	"github.com/kinotv/kino/rank"
	"github.com/kinotv/kino/scraper"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/style"
	"github.com/kinotv/kino/trailer"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func rankLinks(links []source.PlayerLink) []source.PlayerLink {
	if viper.GetBool(key.LinksRank) {
		return rank.Sort(links)
	}
	return links
}

func printResolved(w io.Writer, links []source.PlayerLink) {
	for i, l := range links {
		target, err := playback.Decode(l.EncodedPayload)
		if err != nil {
			log.Warnf("decode %s payload: %s", l.HostName, err)
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", style.Faint(fmt.Sprintf("%3d", i)), l, target)
	}
}

func showDetail(cmd *cobra.Command, s *scraper.Scraper, pageURL string) {
	ctx := commandContext(cmd)
	found, err := s.Detail(ctx, resolveURL(s.BaseURL(), pageURL))
	handleErr(err)

	detail, ok := found.Get()
	if !ok {
		handleErr(fmt.Errorf("could not load %s", pageURL))
	}
	detail.PlayerLinks = rankLinks(detail.PlayerLinks)

	out := cmd.OutOrStdout()
	if flag := cmd.Flags().Lookup("trailer"); flag != nil && lo.Must(cmd.Flags().GetBool("trailer")) {
		id, ok := trailer.NewFinder(network.Default()).Find(ctx, detail.Title+" "+detail.Year+" zwiastun").Get()
		if !ok {
			handleErr(fmt.Errorf("no trailer found for %s", detail.Title))
		}
		fmt.Fprintln(out, trailer.WatchURL(id))
		handleErr(open.Start(trailer.WatchURL(id)))
		return
	}

	if flag := cmd.Flags().Lookup("resolve"); flag != nil && lo.Must(cmd.Flags().GetBool("resolve")) {
		printResolved(out, detail.PlayerLinks)
		return
	}

	if asJson(cmd) {
		printJson(cmd, detail)
		return
	}
	renderDetail(out, detail)
}

func init() {
	rootCmd.AddCommand(showCmd)
	addJsonFlag(showCmd)
	showCmd.Flags().BoolP("trailer", "t", false, "Look up a trailer and open it")
	showCmd.Flags().BoolP("resolve", "r", false, "Print the decoded target of every playback link")
	showCmd.MarkFlagsMutuallyExclusive("trailer", "resolve", "json")
}

var showCmd = &cobra.Command{
	Use:   "show <url>",
	Short: "Show the detail page of a movie or series",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showDetail(cmd, newScraper(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(episodeCmd)
	addJsonFlag(episodeCmd)
	episodeCmd.Flags().BoolP("resolve", "r", false, "Print the decoded target of every playback link")
	episodeCmd.MarkFlagsMutuallyExclusive("resolve", "json")
}

var episodeCmd = &cobra.Command{
	Use:   "episode <url>",
	Short: "Show a single episode of a series",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := newScraper()
		found, err := s.EpisodeDetail(commandContext(cmd), resolveURL(s.BaseURL(), args[0]))
		handleErr(err)

		episode, ok := found.Get()
		if !ok {
			handleErr(fmt.Errorf("could not load %s", args[0]))
		}
		episode.PlayerLinks = rankLinks(episode.PlayerLinks)

		switch {
		case lo.Must(cmd.Flags().GetBool("resolve")):
			printResolved(cmd.OutOrStdout(), episode.PlayerLinks)
		case asJson(cmd):
			printJson(cmd, episode)
		default:
			renderEpisode(cmd.OutOrStdout(), episode)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().IntP("index", "i", 0, "Index of the playback link, after ranking")
	openCmd.Flags().BoolP("episode", "e", false, "Treat the URL as an episode page")
}

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a playback link in the default browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s     = newScraper()
			ctx   = commandContext(cmd)
			url   = resolveURL(s.BaseURL(), args[0])
			index = lo.Must(cmd.Flags().GetInt("index"))
			links []source.PlayerLink
		)

		if lo.Must(cmd.Flags().GetBool("episode")) {
			found, err := s.EpisodeDetail(ctx, url)
			handleErr(err)
			links = found.OrEmpty().PlayerLinks
		} else {
			found, err := s.Detail(ctx, url)
			handleErr(err)
			detail := found.OrEmpty()
			if detail.IsSeries {
				handleErr(fmt.Errorf("%s is a series, pass an episode URL with --episode", args[0]))
			}
			links = detail.PlayerLinks
		}

		links = rankLinks(links)
		if index < 0 || index >= len(links) {
			handleErr(fmt.Errorf("no playback link at index %d (%d available)", index, len(links)))
		}

		target, err := playback.Decode(links[index].EncodedPayload)
		handleErr(err)

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", icon.Get(icon.Link), target)
		handleErr(open.Start(target))
	},
}
