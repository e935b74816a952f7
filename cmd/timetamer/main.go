package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/timetamer/internal/config"
	"github.com/appengine-ltd/timetamer/internal/game"
	"github.com/appengine-ltd/timetamer/internal/ui"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	fs := flag.NewFlagSet("timetamer", flag.ExitOnError)
	cfg, err := config.ParseConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Printf("TimeTamer %s (%s) %s\n", version, commit, date)
		return
	}

	if cfg.ListActivities {
		if err := ui.PrintActivities(os.Stdout, game.DefaultCatalog()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	level, _ := cfg.Level()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "timetamer",
		ReportTimestamp: true,
	})

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = game.NewSeed(); err != nil {
			logger.Warn("falling back to clock seed", "err", err)
		}
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Seed:      seed,
		Words:     cfg.Words,
		Logger:    logger,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
