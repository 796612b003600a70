// Package inline runs a search without prompts and prints the outcome for scripts.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/rank"
	"github.com/kinotv/kino/source"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	found, err := options.Catalog.Search(ctx, options.Query)
	if err != nil {
		return err
	}

	entries := append(append([]source.CatalogEntry{}, found.Movies...), found.Serials...)

	var selected []source.CatalogEntry
	if picker, ok := options.Picker.Get(); ok {
		if choice, ok := picker(entries).Get(); ok {
			selected = []source.CatalogEntry{choice}
		}
	} else {
		selected = entries
	}

	results := make([]*Result, len(selected))
	for i, entry := range selected {
		results[i] = &Result{Entry: entry}
	}

	// a detail page is only fetched for an explicit pick
	if options.Picker.IsPresent() && len(results) == 1 {
		if err := prepare(ctx, results[0], options); err != nil {
			return err
		}
	}

	if options.Json {
		return writeJson(options.Out, options.Query, results)
	}

	for _, r := range results {
		printResult(options, r)
	}
	return nil
}

func prepare(ctx context.Context, r *Result, options *Options) error {
	detail, err := options.Catalog.Detail(ctx, r.Entry.PageURL)
	if err != nil {
		return err
	}

	record, ok := detail.Get()
	if !ok {
		log.Warnf("no detail for %s", r.Entry.PageURL)
		return nil
	}

	if filter, ok := options.EpisodesFilter.Get(); ok {
		for i := range record.Seasons {
			record.Seasons[i].Episodes = filter(record.Seasons[i].Episodes)
		}
	}
	if options.Rank {
		record.PlayerLinks = rank.Sort(record.PlayerLinks)
	}

	r.Detail = &record
	return nil
}

func printResult(options *Options, r *Result) {
	if r.Detail == nil {
		fmt.Fprintln(options.Out, r.Entry.PageURL)
		return
	}

	if r.Detail.IsSeries {
		for _, season := range r.Detail.Seasons {
			for _, ep := range season.Episodes {
				fmt.Fprintln(options.Out, ep.URL)
			}
		}
		return
	}

	for _, link := range r.Detail.PlayerLinks {
		fmt.Fprintf(options.Out, "%s\t%s\t%s\t%s\n", link.HostName, link.Version, link.Quality, link.EncodedPayload)
	}
}
