package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/icon"
	"github.com/kinotv/kino/session"
	"github.com/kinotv/kino/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sessionCmd)
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the logged-in session used to read the catalog",
}

func init() {
	sessionCmd.AddCommand(sessionSetCmd)
	sessionSetCmd.Flags().String("cookie", "", "Session cookie copied from a logged-in browser")
	sessionSetCmd.Flags().String("user-agent", "", "User agent of the same browser")
}

var sessionSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the session cookie in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			store     = session.NewKeyring()
			cookie    = lo.Must(cmd.Flags().GetString("cookie"))
			userAgent = lo.Must(cmd.Flags().GetString("user-agent"))
		)

		if cookie == "" {
			prompt := &survey.Password{
				Message: "Paste the Cookie header of a logged-in browser tab",
			}
			handleErr(survey.AskOne(prompt, &cookie, survey.WithValidator(survey.Required)))
		}

		if !cmd.Flags().Changed("user-agent") {
			prompt := &survey.Input{
				Message: "User agent of that browser",
				Help:    "Leave empty to use the built-in one",
			}
			handleErr(survey.AskOne(prompt, &userAgent))
		}

		handleErr(store.SetCookie(cookie))
		if userAgent != "" {
			handleErr(store.SetUserAgent(userAgent))
		}

		fmt.Printf("%s session saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	sessionCmd.AddCommand(sessionClearCmd)
}

var sessionClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Forget the stored session",
	Aliases: []string{"logout"},
	Run: func(cmd *cobra.Command, args []string) {
		session.NewKeyring().Clear()
		fmt.Printf("%s session cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	sessionCmd.AddCommand(sessionStatusCmd)
}

// mask keeps the first and last four characters of a secret.
func mask(secret string) string {
	if len(secret) <= 8 {
		return "********"
	}
	return secret[:4] + "…" + secret[len(secret)-4:]
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session is stored",
	Run: func(cmd *cobra.Command, args []string) {
		store := session.NewKeyring()

		cookie, ok := store.Cookie()
		if !ok {
			handleErr(errors.New("no session stored"))
		}

		cmd.Printf("%s %s %s\n", icon.Get(icon.Lock), style.Bold("cookie"), style.Faint(mask(cookie)))
		if ua, ok := store.UserAgent(); ok {
			cmd.Printf("%s %s\n", style.Bold("user agent"), ua)
		} else {
			cmd.Printf("%s %s\n", style.Bold("user agent"), style.Faint("built-in"))
		}
	},
}
