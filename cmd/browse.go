package cmd

import (
	"github.com/kinotv/kino/scraper"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func tableCompletion(t scraper.Table) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return t.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}

func optionalYear(cmd *cobra.Command, name string) mo.Option[int] {
	if !cmd.Flags().Changed(name) {
		return mo.None[int]()
	}
	return mo.Some(lo.Must(cmd.Flags().GetInt(name)))
}

func init() {
	rootCmd.AddCommand(moviesCmd)

	moviesCmd.Flags().StringP("category", "c", scraper.Categories.Default(), "Category to browse")
	moviesCmd.Flags().StringP("sort", "s", scraper.MovieSorts.Default(), "Sort order of the listing")
	moviesCmd.Flags().Int("from", 0, "Earliest release year")
	moviesCmd.Flags().Int("to", 0, "Latest release year")
	pageFlag(moviesCmd)
	addJsonFlag(moviesCmd)

	lo.Must0(moviesCmd.RegisterFlagCompletionFunc("category", tableCompletion(scraper.Categories)))
	lo.Must0(moviesCmd.RegisterFlagCompletionFunc("sort", tableCompletion(scraper.MovieSorts)))
}

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse the movie catalog",
	Run: func(cmd *cobra.Command, args []string) {
		p := page(cmd)
		result, err := newScraper().Movies(commandContext(cmd), scraper.MovieFilter{
			Category: lo.Must(cmd.Flags().GetString("category")),
			Sort:     lo.Must(cmd.Flags().GetString("sort")),
			YearFrom: optionalYear(cmd, "from"),
			YearTo:   optionalYear(cmd, "to"),
			Page:     p,
		})
		handleErr(err)

		if asJson(cmd) {
			printJson(cmd, result)
			return
		}
		renderPage(cmd.OutOrStdout(), result, p)
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)

	seriesCmd.Flags().StringP("category", "c", scraper.Categories.Default(), "Category to browse")
	seriesCmd.Flags().StringP("sort", "s", scraper.SeriesSorts.Default(), "Sort order of the listing")
	pageFlag(seriesCmd)
	addJsonFlag(seriesCmd)

	lo.Must0(seriesCmd.RegisterFlagCompletionFunc("category", tableCompletion(scraper.Categories)))
	lo.Must0(seriesCmd.RegisterFlagCompletionFunc("sort", tableCompletion(scraper.SeriesSorts)))
}

var seriesCmd = &cobra.Command{
	Use:     "series",
	Short:   "Browse the series catalog",
	Aliases: []string{"seriale"},
	Run: func(cmd *cobra.Command, args []string) {
		p := page(cmd)
		result, err := newScraper().Series(commandContext(cmd), scraper.SeriesFilter{
			Category: lo.Must(cmd.Flags().GetString("category")),
			Sort:     lo.Must(cmd.Flags().GetString("sort")),
			Page:     p,
		})
		handleErr(err)

		if asJson(cmd) {
			printJson(cmd, result)
			return
		}
		renderPage(cmd.OutOrStdout(), result, p)
	},
}

func init() {
	rootCmd.AddCommand(kidsCmd)
	pageFlag(kidsCmd)
	addJsonFlag(kidsCmd)
}

var kidsCmd = &cobra.Command{
	Use:   "kids",
	Short: "Browse titles for children",
	Run: func(cmd *cobra.Command, args []string) {
		p := page(cmd)
		result, err := newScraper().Kids(commandContext(cmd), p)
		handleErr(err)

		if asJson(cmd) {
			printJson(cmd, result)
			return
		}
		renderPage(cmd.OutOrStdout(), result, p)
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
	addJsonFlag(homeCmd)
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the rows of the main page",
	Run: func(cmd *cobra.Command, args []string) {
		rows, err := newScraper().Home(commandContext(cmd))
		handleErr(err)

		if asJson(cmd) {
			printJson(cmd, rows)
			return
		}
		renderRows(cmd.OutOrStdout(), rows)
	},
}
