package cmd

import (
	"os"

	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/style"
	"github.com/kinotv/kino/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name  string
	where func() string
	flag  string
	short string
}

var wherePaths = []whereTarget{
	{"Config", where.Config, "config", "c"},
	{"Logs", where.Logs, "logs", "l"},
	{"Cache", where.Cache, "cache", "C"},
	{"Watchlist", where.Watchlist, "watchlist", "w"},
	{"Queries", where.Queries, "queries", "q"},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		whereCmd.Flags().BoolP(n.flag, n.short, false, n.name+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t whereTarget, _ int) string {
		return t.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where kino keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.flag)) {
				cmd.Println(n.where())
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.flag))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
