package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lox/teenpatti/internal/config"
	"github.com/lox/teenpatti/internal/simulator"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play Teen Patti against the computer"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many games with an automated player"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("teenpatti"),
		kong.Description("Three-card Teen Patti in the terminal, you against the computer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    version,
			"config":     config.DefaultFile,
			"strategies": strings.Join(simulator.Strategies, ","),
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
