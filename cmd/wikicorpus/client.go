package main

import (
	"golang.org/x/time/rate"

	"github.com/matsen/wikicorpus/internal/config"
	"github.com/matsen/wikicorpus/wiki"
)

var langFlag string

// loadConfig loads the global config, exiting on parse errors.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// newClient builds a MediaWiki client from the global config and flags.
func newClient() *wiki.Client {
	cfg := loadConfig()

	lang := cfg.Lang
	if langFlag != "" {
		lang = langFlag
	}

	opts := []wiki.Option{
		wiki.WithLanguage(lang),
		wiki.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)),
		wiki.WithMaxConcurrency(cfg.MaxConcurrency),
		wiki.WithLogger(newLogger()),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, wiki.WithUserAgent(cfg.UserAgent))
	}
	return wiki.NewClient(opts...)
}
