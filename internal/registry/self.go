package registry

import (
	"sort"
	"strings"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/domain"
)

// FromDispatchTree derives a registry from a live dispatch tree, so the
// CLI can render its own command hierarchy when no manifest is
// configured. Dotted names are the dispatch paths below the root; command
// summaries become the "en" description table.
func FromDispatchTree(root *dispatchers.DispatchNode) *Registry {
	descriptions := map[string]string{}

	var convert func(node *dispatchers.DispatchNode) domain.RawCommand
	convert = func(node *dispatchers.DispatchNode) domain.RawCommand {
		name := strings.Join(node.Path[1:], ".")

		if node.Summary != "" {
			descriptions[name] = node.Summary
		}

		cmd := domain.RawCommand{Name: name}
		for _, childName := range sortedChildNames(node) {
			cmd.Children = append(cmd.Children, convert(node.Children[childName]))
		}
		return cmd
	}

	var top []domain.RawCommand
	for _, childName := range sortedChildNames(root) {
		top = append(top, convert(root.Children[childName]))
	}

	return &Registry{
		top:          top,
		descriptions: map[string]map[string]string{"en": descriptions},
	}
}

// sortedChildNames keeps the derived registry deterministic; dispatch
// children live in a map.
func sortedChildNames(node *dispatchers.DispatchNode) []string {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
