// Package config handles wikicorpus global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/wikicorpus/config.yml.
// Zero fields fall back to defaults; environment variables override the file.
type Config struct {
	Lang           string  `yaml:"lang,omitempty"`
	UserAgent      string  `yaml:"user_agent,omitempty"`
	RateLimit      float64 `yaml:"rate_limit,omitempty"`
	RateBurst      int     `yaml:"rate_burst,omitempty"`
	MaxConcurrency int     `yaml:"max_concurrency,omitempty"`
	StorePath      string  `yaml:"store_path,omitempty"`
}

const (
	// Dir is the directory name under XDG_CONFIG_HOME.
	Dir = "wikicorpus"
	// File is the config file name.
	File = "config.yml"

	// DefaultStoreFile is the corpus store filename used when store_path
	// is not configured.
	DefaultStoreFile = "corpus.db"
)

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Lang:           "en",
		RateLimit:      50,
		RateBurst:      10,
		MaxConcurrency: 4,
		StorePath:      DefaultStoreFile,
	}
}

// cache holds the loaded config for the process lifetime.
var cache *Config

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/wikicorpus/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, Dir, File)
}

// Load reads the global configuration, applying defaults for unset fields
// and environment overrides on top. A missing file is not an error.
func Load() (*Config, error) {
	if cache != nil {
		return cache, nil
	}

	cfg := Defaults()
	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}
	applyDefaults(cfg)
	applyEnv(cfg)
	cfg.StorePath = ExpandTilde(cfg.StorePath)

	cache = cfg
	return cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	cache = nil
}

func applyDefaults(cfg *Config) {
	def := Defaults()
	if cfg.Lang == "" {
		cfg.Lang = def.Lang
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = def.RateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = def.RateBurst
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = def.MaxConcurrency
	}
	if cfg.StorePath == "" {
		cfg.StorePath = def.StorePath
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WIKICORPUS_LANG"); v != "" {
		cfg.Lang = v
	}
	if v := os.Getenv("WIKICORPUS_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("WIKICORPUS_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimit = f
		}
	}
	if v := os.Getenv("WIKICORPUS_MAX_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxConcurrency = n
		}
	}
	if v := os.Getenv("WIKICORPUS_STORE"); v != "" {
		cfg.StorePath = v
	}
}

// ExpandTilde expands a leading ~/ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
