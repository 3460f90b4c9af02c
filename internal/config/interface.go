package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and applies it on top of base.
	// Values the file does not set keep their value from base.
	Load(ctx context.Context, path string, base *Settings) (*Settings, error)
}
