package config

import "context"

// Loader is the interface for a format-specific project file loader.
type Loader interface {
	// Load reads the project file at path and translates it into the
	// format-agnostic model. It does not touch the action files themselves.
	Load(ctx context.Context, path string) (*Model, error)
}
