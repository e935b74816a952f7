// Package config resolves runtime settings from the environment and then
// command-line flags. Flags win over environment values.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

type Config struct {
	Seed     int64  `env:"TIMETAMER_SEED"`
	LogLevel string `env:"TIMETAMER_LOG_LEVEL" envDefault:"warn"`
	Words    bool   `env:"TIMETAMER_WORDS"`

	ShowVersion    bool
	ListActivities bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one at startup)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.Words, "words", cfg.Words, "accept activity names as well as menu numbers")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	fs.BoolVar(&cfg.ListActivities, "activities", false, "list activities and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level maps LogLevel onto a logger level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
