package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/icon"
	"github.com/kinotv/kino/inline"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/query"
	"github.com/kinotv/kino/source"
	"github.com/kinotv/kino/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// parseSelector accepts "first", "last", a 0-based index or an exact title.
func parseSelector(selector string) (inline.EntryPicker, error) {
	switch selector {
	case "first", "last":
		return inline.ParseEntryPicker(selector, "")
	}
	if _, err := strconv.Atoi(selector); err == nil {
		return inline.ParseEntryPicker("index", selector)
	}
	return inline.ParseEntryPicker("exact", selector)
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addJsonFlag(searchCmd)
	searchCmd.Flags().String("pick", "", "Show the detail page of one hit: first, last, an index or an exact title")
}

var searchCmd = &cobra.Command{
	Use:   "search <phrase>",
	Short: "Search the catalog by title",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		phrase := strings.Join(args, " ")
		s := newScraper()
		ctx := commandContext(cmd)

		result, err := s.Search(ctx, phrase)
		handleErr(err)

		if !result.Empty() {
			if err := query.Remember(phrase, 1); err != nil {
				log.Warnf("remember query: %s", err)
			}
		}

		if selector := lo.Must(cmd.Flags().GetString("pick")); selector != "" {
			picker, err := parseSelector(selector)
			handleErr(err)

			entries := append(append([]source.CatalogEntry{}, result.Movies...), result.Serials...)
			entry, ok := picker(entries).Get()
			if !ok {
				handleErr(fmt.Errorf("no hit matches %q", selector))
			}

			showDetail(cmd, s, entry.PageURL)
			return
		}

		if asJson(cmd) {
			printJson(cmd, result)
			return
		}

		out := cmd.OutOrStdout()
		if result.Empty() {
			fmt.Fprintf(out, "%s nothing found for %s\n", icon.Get(icon.Search), style.Fg(color.Yellow)(phrase))
			if suggestion, ok := query.Suggest(phrase).Get(); ok && suggestion != strings.ToLower(phrase) {
				fmt.Fprintf(out, "did you mean %s?\n", style.Fg(color.Cyan)(suggestion))
			}
			return
		}

		// indexes continue across both buckets to match --pick
		offset := 0
		for _, bucket := range []struct {
			title   string
			entries []source.CatalogEntry
		}{{"FILMY", result.Movies}, {"SERIALE", result.Serials}} {
			if len(bucket.entries) == 0 {
				continue
			}
			fmt.Fprintln(out, style.Title(bucket.title))
			for i, e := range bucket.entries {
				renderEntry(out, offset+i, e)
			}
			offset += len(bucket.entries)
		}
	},
}
