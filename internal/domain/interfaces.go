package domain

import "context"

// Registry exposes the command hierarchy to render.
type Registry interface {
	// Resolve looks up a command by its dotted path.
	// Returns a usage.CommandNotFound error if the path does not resolve.
	Resolve(path string) (RawCommand, error)

	// TopLevel returns the full top-level command list in registry order.
	TopLevel() []RawCommand
}

// Localizer provides human-readable descriptions for commands.
type Localizer interface {
	// Describe returns the localized description for a dotted command
	// name, or the empty string if none is registered. The returned text
	// may contain HTML entities; unescaping is the caller's job.
	Describe(name string) string
}

// ImageRenderer rasterizes a markup fragment into an image artifact.
type ImageRenderer interface {
	// Render converts the markup fragment (a <pre> block with inline
	// style) into image bytes. Cancellation and timeouts are whatever
	// the underlying transport provides.
	Render(ctx context.Context, markup string) ([]byte, error)
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	Get(key string) (string, bool)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
