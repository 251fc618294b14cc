package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mpdigest"
	"github.com/alnah/go-mpdigest/internal/config"
	"github.com/alnah/go-mpdigest/internal/hints"
	"github.com/alnah/go-mpdigest/internal/logger"
)

// loadConfig returns the config named by --config, or the defaults.
// A --layout flag overrides render.layout.
func loadConfig(f commonFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		var err error
		cfg, err = config.LoadConfig(f.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(f.config))
			}
			return nil, err
		}
	}

	if f.layout != "" {
		if _, err := mpdigest.ParseLayout(f.layout); err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForLayout(mpdigest.Layouts()))
		}
		cfg.Render.Layout = f.layout
	}
	return cfg, nil
}

// newLogger builds the stderr logger. --verbose forces debug; otherwise
// the CLI stays at warn unless the config asks for more.
func newLogger(cfg *config.Config, f commonFlags, env *Environment, cliDefault string) *logrus.Logger {
	level := cliDefault
	if f.config != "" {
		level = cfg.Log.Level
	}
	if f.verbose {
		level = "debug"
	}
	return logger.New(level, env.Stderr)
}

// newConverter builds the library converter from config.
func newConverter(cfg *config.Config, env *Environment) (*mpdigest.Converter, error) {
	return mpdigest.NewConverter(
		mpdigest.WithNow(env.Now),
		mpdigest.WithLayout(cfg.Render.Layout),
		mpdigest.WithDateFormat(cfg.Render.DateFormat),
	)
}
