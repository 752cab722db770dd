// Package browse implements the interactive registry browser: a full-screen
// split view with the command tree on the left and details on the right.
package browse

import (
	"github.com/cmdtree-tools/cli/internal/actions/render"
	"github.com/cmdtree-tools/cli/internal/config"
	"github.com/cmdtree-tools/cli/internal/registry"
	"github.com/cmdtree-tools/cli/internal/ui/style"
)

type Deps struct {
	Get          func(string) (string, bool)
	GetInt       func(string, int) int
	OpenRegistry func(path string) (*registry.Registry, error)
	GetColors    func() style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		Get:          config.Get,
		GetInt:       config.GetInt,
		OpenRegistry: render.OpenRegistry,
		GetColors:    style.GetColors,
	}
}
