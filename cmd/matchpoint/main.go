package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Score   ScoreCmd         `cmd:"" default:"withargs" help:"Track a match point by point"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("matchpoint"),
		kong.Description("Point-by-point tennis match tracker and statistics recorder"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
