package config

import (
	"fmt"
	"slices"
)

// Settings is the complete tool configuration.
type Settings struct {
	Catalog Catalog
	Log     Log
}

// Catalog controls where and how catalog files are discovered.
type Catalog struct {
	// Root is a directory to walk or a single file to read.
	Root string
	// FileNames are base-name patterns of catalog files. Empty selects the
	// built-in names.
	FileNames []string
	// Exclude are extra path patterns to skip, relative to Root.
	Exclude []string
}

// Log controls the process logger.
type Log struct {
	Level  string
	Format string
}

var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Defaults returns the settings used when nothing else is configured.
func Defaults() *Settings {
	return &Settings{
		Catalog: Catalog{Root: "."},
		Log:     Log{Level: "warn", Format: "text"},
	}
}

// Validate checks enumerated values.
func (s *Settings) Validate() error {
	if s.Catalog.Root == "" {
		return fmt.Errorf("catalog root cannot be empty")
	}
	if !slices.Contains(LogLevels, s.Log.Level) {
		return fmt.Errorf("invalid log level %q: must be one of %v", s.Log.Level, LogLevels)
	}
	if !slices.Contains(LogFormats, s.Log.Format) {
		return fmt.Errorf("invalid log format %q: must be one of %v", s.Log.Format, LogFormats)
	}
	return nil
}
