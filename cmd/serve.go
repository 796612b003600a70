package cmd

import (
	"fmt"

	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/network"
	"github.com/kinotv/kino/scraper"
	"github.com/kinotv/kino/server"
	"github.com/kinotv/kino/session"
	"github.com/kinotv/kino/style"
	"github.com/kinotv/kino/trailer"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Listen address")
	lo.Must0(viper.BindPFlag(key.ServerAddr, serveCmd.Flags().Lookup("addr")))

	serveCmd.Flags().Bool("ephemeral", false, "Keep the session in memory instead of the system keyring")
	serveCmd.Flags().String("cookie", "", "Session cookie for --ephemeral")
	serveCmd.MarkFlagsRequiredTogether("ephemeral", "cookie")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as a local JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		var store session.Store = session.NewKeyring()
		if lo.Must(cmd.Flags().GetBool("ephemeral")) {
			store = session.NewMemory(lo.Must(cmd.Flags().GetString("cookie")))
		}

		if _, ok := store.Cookie(); !ok {
			handleErr(fmt.Errorf("no session cookie stored: %w", scraper.ErrSessionExpired))
		}

		addr := viper.GetString(key.ServerAddr)
		srv := server.New(scraper.New(store), trailer.NewFinder(network.Default()))

		fmt.Printf("%s %s\n", style.Fg(color.Green)("serving on"), style.Bold("http://"+addr))
		handleErr(srv.ListenAndServe(commandContext(cmd), addr))
	},
}
