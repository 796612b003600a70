package cmd

import (
	"io"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/constant"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/session"
	"github.com/kinotv/kino/style"
	"github.com/kinotv/kino/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
	addJsonFlag(versionCmd)
}

// buildInfo is what `kino version` reports about the binary and the site it talks to.
type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
	Site     string `json:"site"`
	Session  bool   `json:"session"`
}

func collectBuildInfo(store session.Store) buildInfo {
	_, hasCookie := store.Cookie()

	return buildInfo{
		App:      constant.Kino,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Site:     viper.GetString(key.SiteBaseURL),
		Session:  hasCookie,
	}
}

var versionTemplate = template.Must(template.New("version").Funcs(map[string]any{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
	"session": func(ok bool) string {
		if ok {
			return style.Fg(color.Green)("stored")
		}
		return style.Fg(color.Red)("missing, run `kino session set`")
	},
}).Parse(`{{ magenta .App }} {{ bold .Version }} {{ faint .Platform }}

  {{ faint "Commit " }}  {{ .Revision }}
  {{ faint "Built  " }}  {{ .BuiltAt }} by {{ .BuiltBy }}
  {{ faint "Site   " }}  {{ .Site }}
  {{ faint "Session" }}  {{ session .Session }}
`))

func renderVersion(w io.Writer, info buildInfo) error {
	return versionTemplate.Execute(w, info)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, build and session information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := collectBuildInfo(session.NewKeyring())

		if asJson(cmd) {
			printJson(cmd, info)
			return
		}

		defer version.Notify()
		handleErr(renderVersion(cmd.OutOrStdout(), info))
	},
}
