package cmd

import (
	"context"
	"fmt"

	"github.com/kinotv/kino/inline"
	"github.com/kinotv/kino/scraper"
	"github.com/kinotv/kino/session"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newScraper() *scraper.Scraper {
	return scraper.New(session.NewKeyring())
}

func addJsonFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

func asJson(cmd *cobra.Command) bool {
	return lo.Must(cmd.Flags().GetBool("json"))
}

func printJson(cmd *cobra.Command, v any) {
	handleErr(inline.Encode(cmd.OutOrStdout(), v))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveURL turns a site-relative path into an absolute URL.
func resolveURL(base, url string) string {
	if len(url) > 0 && url[0] == '/' {
		return base + url
	}
	return url
}

func pageFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("page", "p", 1, "Page of the listing to fetch")
}

func page(cmd *cobra.Command) int {
	p := lo.Must(cmd.Flags().GetInt("page"))
	if p < 1 {
		handleErr(fmt.Errorf("invalid page: %d", p))
	}
	return p
}
