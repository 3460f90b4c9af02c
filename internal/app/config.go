package app

import (
	"fmt"
	"slices"

	"github.com/vk/bsv/internal/config"
	"github.com/vk/bsv/internal/view"
)

// Config holds the command-line settings for an App instance. Empty string
// fields were not given on the command line and fall back to the settings
// file, then to config.Defaults.
type Config struct {
	Root       string
	ConfigPath string // resolved settings file, "" for none

	LogLevel  string
	LogFormat string
	Output    view.Format
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel != "" && !slices.Contains(config.LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.LogLevel, config.LogLevels)
	}
	if cfg.LogFormat != "" && !slices.Contains(config.LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.LogFormat, config.LogFormats)
	}
	if cfg.Output == 0 {
		cfg.Output = view.FormatHuman
	}
	return &cfg, nil
}

// apply overlays the command-line values on s.
func (c *Config) apply(s *config.Settings) {
	if c.Root != "" {
		s.Catalog.Root = c.Root
	}
	if c.LogLevel != "" {
		s.Log.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		s.Log.Format = c.LogFormat
	}
}
