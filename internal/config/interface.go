package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest file at path and translates it into the
	// format-agnostic model. Relative input paths are resolved against the
	// directory of the file.
	Load(ctx context.Context, path string) (*Manifest, error)
}
