// Package tree builds a pruned, annotated command tree from the raw
// registry hierarchy. A fresh tree is built and discarded within a single
// render call; nothing is cached across invocations.
package tree

import (
	"html"
	"sort"
	"strings"

	"github.com/cmdtree-tools/cli/internal/domain"
)

// Params controls one build pass.
type Params struct {
	// MaxDepth is carried for the render step; depth limiting happens at
	// render time so descriptions and match info for deeper nodes stay
	// computed even when never shown.
	MaxDepth int

	// MaxSubcommands caps every node's child list (>= 0).
	MaxSubcommands int

	// Filter is a plain substring filter; empty means inactive.
	Filter string

	// FullPath displays the full dotted name instead of the leaf segment.
	FullPath bool
}

// Node is one entry of the built tree, immutable once constructed.
type Node struct {
	Display     string
	Description string
	Children    []*Node

	// IsMatch is true when Display contains the active filter substring,
	// and true unconditionally when no filter is active.
	IsMatch bool

	// SubtreeMatches is true when this node or any pre-truncation
	// descendant matches.
	SubtreeMatches bool

	// Truncated is true when the filtered child list exceeded
	// MaxSubcommands and was cut.
	Truncated bool
}

// Build resolves path against the registry and builds the tree for it.
// An empty path builds a synthetic root over the full top-level list.
func Build(reg domain.Registry, path string, loc domain.Localizer, p Params) (*Node, error) {
	if path == "" {
		return BuildRoot(reg.TopLevel(), loc, p), nil
	}

	cmd, err := reg.Resolve(path)
	if err != nil {
		return nil, err
	}

	return BuildCommand(cmd, loc, p), nil
}

// BuildRoot builds a synthetic root with empty display and description
// whose children are the processed top-level sibling list. A filter that
// matches nothing yields a childless root; that is not an error.
func BuildRoot(top []domain.RawCommand, loc domain.Localizer, p Params) *Node {
	root := &Node{IsMatch: p.Filter == ""}

	children, truncated, anyMatch := buildChildren(top, loc, p)
	root.Children = children
	root.Truncated = truncated
	root.SubtreeMatches = root.IsMatch || anyMatch

	return root
}

// BuildCommand builds the tree for a single raw command.
func BuildCommand(cmd domain.RawCommand, loc domain.Localizer, p Params) *Node {
	display := cmd.Leaf()
	if p.FullPath {
		display = cmd.Name
	}
	display = html.UnescapeString(display)

	node := &Node{
		Display:     display,
		Description: html.UnescapeString(loc.Describe(cmd.Name)),
		IsMatch:     p.Filter == "" || strings.Contains(display, p.Filter),
	}

	children, truncated, anyMatch := buildChildren(cmd.Children, loc, p)
	node.Children = children
	node.Truncated = truncated
	node.SubtreeMatches = node.IsMatch || anyMatch

	return node
}

// buildChildren runs the full sibling pipeline: hoist removal, recursive
// construction, filter pass, match-last ordering, truncation. The third
// return value reports whether any pre-truncation sibling subtree matched.
func buildChildren(siblings []domain.RawCommand, loc domain.Localizer, p Params) ([]*Node, bool, bool) {
	kept := removeHoisted(siblings)

	nodes := make([]*Node, 0, len(kept))
	anyMatch := false
	for _, cmd := range kept {
		n := BuildCommand(cmd, loc, p)
		if n.SubtreeMatches {
			anyMatch = true
		}
		nodes = append(nodes, n)
	}

	if p.Filter != "" {
		filtered := nodes[:0]
		for _, n := range nodes {
			if n.SubtreeMatches {
				filtered = append(filtered, n)
			}
		}
		nodes = filtered

		// Matches surface toward the end; registry order is preserved
		// among siblings with equal match status.
		sort.SliceStable(nodes, func(i, j int) bool {
			return !nodes[i].IsMatch && nodes[j].IsMatch
		})
	}

	truncated := false
	if len(nodes) > p.MaxSubcommands {
		nodes = nodes[:p.MaxSubcommands]
		truncated = true
	}

	return nodes, truncated, anyMatch
}

// removeHoisted drops any sibling whose dotted name is a strict extension
// of another sibling's name. The registry may expose both a nested command
// and a flattened duplicate; only the nested form renders.
func removeHoisted(siblings []domain.RawCommand) []domain.RawCommand {
	kept := make([]domain.RawCommand, 0, len(siblings))

	for _, cmd := range siblings {
		hoisted := false
		for _, other := range siblings {
			if cmd.IsNestedUnder(other.Name) {
				hoisted = true
				break
			}
		}
		if !hoisted {
			kept = append(kept, cmd)
		}
	}

	return kept
}
