// Package main is the entry point for the kino application.
package main

import (
	"github.com/kinotv/kino/cmd"
	"github.com/kinotv/kino/config"
	"github.com/kinotv/kino/log"
	"github.com/kinotv/kino/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go log.Prune(where.Logs(), log.Retention)

	cmd.Execute()
}
