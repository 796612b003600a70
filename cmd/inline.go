package cmd

import (
	"io"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/kinotv/kino/filesystem"
	"github.com/kinotv/kino/inline"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Search phrase")
	inlineCmd.Flags().StringP("pick", "p", "", "Hit to select: first, last, an index or an exact title")
	inlineCmd.Flags().StringP("episodes", "e", "", "Episodes of the picked series to keep")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")
	inlineCmd.Flags().Bool("rank", true, "Order playback links of the picked title")
	lo.Must0(viper.BindPFlag(key.LinksRank, inlineCmd.Flags().Lookup("rank")))

	lo.Must0(inlineCmd.MarkFlagRequired("query"))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Search without prompts, for scripts",
	Long: `Search the catalog and print the outcome without any prompts.

Pick selectors:
  first - first hit
  last - last hit
  [number] - select hit by index (starting from 0, movies before series)
  [title] - select the hit with this exact title

Episode selectors:
  first - first episode of every season
  last - last episode of every season
  all - all episodes
  [number] - select episode by index (starting from 0)
  [from]-[to] - select episodes by range
  @[substring]@ - select episodes by title substring

Without --pick every hit is listed and no detail page is fetched.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(cmd.MarkFlagRequired("pick"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var writer io.Writer = os.Stdout

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		picker := mo.None[inline.EntryPicker]()
		if selector := lo.Must(cmd.Flags().GetString("pick")); selector != "" {
			fn, err := parseSelector(selector)
			handleErr(err)
			picker = mo.Some(fn)
		}

		episodesFilter := mo.None[inline.EpisodesFilter]()
		if description := lo.Must(cmd.Flags().GetString("episodes")); description != "" {
			fn, err := inline.ParseEpisodesFilter(description)
			handleErr(err)
			episodesFilter = mo.Some(fn)
		}

		options := &inline.Options{
			Out:            writer,
			Catalog:        newScraper(),
			Json:           lo.Must(cmd.Flags().GetBool("json")),
			Query:          lo.Must(cmd.Flags().GetString("query")),
			Picker:         picker,
			EpisodesFilter: episodesFilter,
			Rank:           viper.GetBool(key.LinksRank),
		}

		handleErr(inline.Run(commandContext(cmd), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var optionalString = reflect.TypeOf(mo.Option[string]{})

// schemaReflector describes optional fields as nullable strings.
func schemaReflector() *jsonschema.Reflector {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
		if t == optionalString {
			return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "null"}}}
		}
		return nil
	}
	return reflector
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		printJson(cmd, schemaReflector().Reflect(&inline.Output{}))
	},
}
