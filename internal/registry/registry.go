// Package registry exposes the command hierarchy to render, loaded from a
// YAML manifest or derived from a live dispatch tree.
package registry

import (
	"github.com/cmdtree-tools/cli/internal/domain"
	"github.com/cmdtree-tools/cli/internal/usage"
)

// Registry is an in-memory command hierarchy. It is read-only after
// construction and safe for concurrent readers.
type Registry struct {
	top          []domain.RawCommand
	descriptions map[string]map[string]string
}

// TopLevel returns the full top-level command list in manifest order.
func (r *Registry) TopLevel() []domain.RawCommand {
	return r.top
}

// Resolve looks up a command by its dotted path anywhere in the hierarchy.
func (r *Registry) Resolve(path string) (domain.RawCommand, error) {
	if cmd, ok := find(r.top, path); ok {
		return cmd, nil
	}
	return domain.RawCommand{}, usage.CommandNotFound(path)
}

func find(cmds []domain.RawCommand, path string) (domain.RawCommand, bool) {
	for _, cmd := range cmds {
		if cmd.Name == path {
			return cmd, true
		}
		if found, ok := find(cmd.Children, path); ok {
			return found, true
		}
	}
	return domain.RawCommand{}, false
}

// Descriptions returns the per-locale description tables from the
// manifest. May be nil when the manifest carries none.
func (r *Registry) Descriptions() map[string]map[string]string {
	return r.descriptions
}

// Verify Registry implements domain.Registry.
var _ domain.Registry = (*Registry)(nil)
