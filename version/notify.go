package version

import (
	"context"
	"fmt"
	"time"

	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/constant"
	"github.com/kinotv/kino/icon"
	"github.com/kinotv/kino/key"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/network"
	"github.com/kinotv/kino/style"
	"github.com/kinotv/kino/util"
	"github.com/spf13/viper"
)

// Notify prints a short banner when a newer release is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx, network.Default())
	erase()
	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/kinotv/kino/releases/tag/v"+latest),
	)
}
