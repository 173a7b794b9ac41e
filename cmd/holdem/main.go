package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"V" help:"Show version"`
	Verbose  bool             `short:"v" help:"Enable debug logging"`
	LogLevel string           `help:"Log level (debug, info, warn, error)"`

	Play PlayCmd `cmd:"" default:"withargs" help:"Play tables of automated players"`
	Eval EvalCmd `cmd:"" help:"Rank a hand of one to seven cards"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em betting-round simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := newLogger(cli.Verbose, cli.LogLevel)
	ctx.Bind(logger)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newLogger(verbose bool, level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.InfoLevel,
	})
	if level != "" {
		if lvl, err := log.ParseLevel(level); err == nil {
			logger.SetLevel(lvl)
		}
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
