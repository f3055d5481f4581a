// Command overlap computes ETF holdings overlap from the terminal.
//
//	overlap analyze SPY QQQ VTI
//	overlap search nasdaq
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/aristath/etfoverlap/internal/cli"
	"github.com/aristath/etfoverlap/internal/config"
	"github.com/aristath/etfoverlap/internal/di"
	"github.com/aristath/etfoverlap/pkg/logger"
	"github.com/google/subcommands"
)

func main() {
	// Logs go to stderr so rendered output on stdout stays clean.
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true, Output: os.Stderr})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
		Output: os.Stderr,
	})

	container, _, err := di.Wire(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, cmd := range cli.Commands(container.OverlapService, container.SearchService, cfg.MaxTickers) {
		commander.Register(cmd, "")
	}

	flag.Parse()
	status := commander.Execute(context.Background())
	container.Close()
	os.Exit(int(status))
}
