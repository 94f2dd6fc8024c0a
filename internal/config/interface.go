package config

import "context"

// Loader is the interface for a format-specific plan loader. Load reads a
// plan from the given path and translates it into the format-agnostic
// model. Loaders do not validate beyond what decoding requires; the
// application calls Plan.Validate afterwards.
type Loader interface {
	Load(ctx context.Context, path string) (*Plan, error)
}
