package render

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cmdtree-tools/cli/internal/config"
	"github.com/cmdtree-tools/cli/internal/imgrender"
	"github.com/cmdtree-tools/cli/internal/registry"
	"github.com/cmdtree-tools/cli/internal/ui"
	"github.com/cmdtree-tools/cli/internal/usage"
)

type Deps struct {
	Get           func(string) (string, bool)
	GetInt        func(string, int) int
	GetBool       func(string, bool) bool
	OpenRegistry  func(path string) (*registry.Registry, error)
	Rasterize     func(ctx context.Context, markup string) ([]byte, error)
	WriteArtifact func(path string, data []byte) error
	Pager         func(string)
	Printf        func(string, ...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Get:           config.Get,
		GetInt:        config.GetInt,
		GetBool:       config.GetBool,
		OpenRegistry:  OpenRegistry,
		Rasterize:     rasterize,
		WriteArtifact: imgrender.WriteArtifact,
		Pager:         ui.Pager,
		Printf:        fmt.Printf,
	}
}

// selfRegistryFn is injected from main to avoid an import cycle: the CLI
// tree references this action, and the default registry is built from that
// same tree.
var (
	selfRegistryFn func() *registry.Registry
	selfRegistryMu sync.RWMutex
)

// SetSelfRegistry sets the fallback registry factory used when no manifest
// is configured.
func SetSelfRegistry(fn func() *registry.Registry) {
	selfRegistryMu.Lock()
	defer selfRegistryMu.Unlock()
	selfRegistryFn = fn
}

func getSelfRegistry() func() *registry.Registry {
	selfRegistryMu.RLock()
	defer selfRegistryMu.RUnlock()
	return selfRegistryFn
}

// OpenRegistry resolves the command registry. A path given on the command
// line wins over the configured manifest; with neither, the CLI renders its
// own command tree. The browse action shares this resolution.
func OpenRegistry(flagPath string) (*registry.Registry, error) {
	path := flagPath
	if path == "" {
		path, _ = config.Get("registry")
	}

	if path != "" {
		return registry.Load(path)
	}

	if fn := getSelfRegistry(); fn != nil {
		return fn(), nil
	}

	return nil, errors.New("no command registry available")
}

// rasterize sends markup to the configured rasterizer endpoint.
func rasterize(ctx context.Context, markup string) ([]byte, error) {
	endpoint, _ := config.Get("renderer_url")

	r := imgrender.NewHTTP(endpoint, nil)
	if r == nil {
		return nil, usage.RenderingUnavailable()
	}

	return r.Render(ctx, markup)
}
