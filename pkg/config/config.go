// Package config loads botcmd settings from an optional TOML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// CatalogPath points at a catalog file. When empty the user and project
	// catalogs are merged.
	CatalogPath string `toml:"catalog" env:"BOTCMD_CATALOG"`

	// Renderer names the metadata renderer: default, markdown, html or
	// terminal.
	Renderer string `toml:"renderer" env:"BOTCMD_RENDERER"`

	// Groups are the groups of the console user.
	Groups []string `toml:"groups" env:"BOTCMD_GROUPS" envSeparator:","`

	// HelpCommand is answered by the dispatcher without being registered.
	HelpCommand string `toml:"help_command" env:"BOTCMD_HELP_COMMAND"`

	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
}

type LogConfig struct {
	Level  string `toml:"level" env:"BOTCMD_LOG_LEVEL"`
	Format string `toml:"format" env:"BOTCMD_LOG_FORMAT"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled" env:"BOTCMD_HISTORY"`
	Dir     string `toml:"dir" env:"BOTCMD_HISTORY_DIR"`
}

var validRenderers = []string{"default", "markdown", "html", "terminal"}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Renderer:    "default",
		HelpCommand: "!help",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		History: HistoryConfig{
			Dir: defaultHistoryDir(),
		},
	}
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".botcmd", "history")
	}
	return filepath.Join(home, ".botcmd", "history")
}

// Load reads path (if not empty and present), applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
	if !slices.Contains(validRenderers, c.Renderer) {
		return fmt.Errorf("unknown renderer %q (want one of %s)", c.Renderer, strings.Join(validRenderers, ", "))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if strings.ContainsFunc(c.HelpCommand, func(r rune) bool { return r == ' ' || r == '\t' }) {
		return fmt.Errorf("help command %q must be a single token", c.HelpCommand)
	}
	return nil
}
