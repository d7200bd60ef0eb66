// Package config loads the aockit configuration from a JSON file with the
// AOC_SESSION environment variable taking precedence for the session token.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultBaseURL = "https://adventofcode.com"
	defaultUA      = "aockit (personal Advent of Code scaffolding tool)"
)

// Config holds the application configuration.
type Config struct {
	BaseURL      string `json:"base_url"`
	Session      string `json:"session"`
	UserAgent    string `json:"user_agent"`
	CacheDir     string `json:"cache_dir"`
	SolutionsDir string `json:"solutions_dir"`
}

func defaultConfig() Config {
	cacheDir := ""
	if dir, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(dir, "aockit")
	}
	return Config{
		BaseURL:      defaultBaseURL,
		UserAgent:    defaultUA,
		CacheDir:     cacheDir,
		SolutionsDir: "solutions",
	}
}

// DefaultPath returns the default config file location,
// <user config dir>/aockit/config.json.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(dir, "aockit", "config.json")
}

// Load loads configuration from the specified path. A missing file yields
// the defaults; AOC_SESSION overrides the file's session token.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config: %w", err)
		}
	} else {
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if env := strings.TrimSpace(os.Getenv("AOC_SESSION")); env != "" {
		cfg.Session = env
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Session = strings.TrimSpace(cfg.Session)
	cfg.UserAgent = strings.TrimSpace(cfg.UserAgent)
	cfg.CacheDir = strings.TrimSpace(cfg.CacheDir)
	cfg.SolutionsDir = strings.TrimSpace(cfg.SolutionsDir)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}
	if cfg.SolutionsDir == "" {
		cfg.SolutionsDir = "solutions"
	}
	return cfg, nil
}
