package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`

	Play     PlayCmd     `cmd:"" help:"Play a competition between bots"`
	Bots     BotsCmd     `cmd:"" help:"List the available strategies"`
	Features FeaturesCmd `cmd:"" help:"Show the training and classifier feature schema"`
	Model    ModelCmd    `cmd:"" help:"Work with spy classifier models"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("resistance"),
		kong.Description("Heuristic and classifier-driven bots for The Resistance"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

func newLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
