// Package completions generates shell completion scripts from the live
// dispatch tree.
package completions

import (
	"sort"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
)

// CommandInfo is one command extracted from the dispatch tree.
type CommandInfo struct {
	Name        string
	Path        []string // Full path from root (e.g., ["cmdtree", "config", "set"])
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// FlagInfo is one flag a command accepts.
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the dispatch tree and extracts every command,
// root included, in depth-first order. Subcommand lists are sorted so
// generated scripts are deterministic.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	subcommands := make([]string, 0, len(node.Children))
	for name := range node.Children {
		subcommands = append(subcommands, name)
	}
	sort.Strings(subcommands)

	var flags []FlagInfo
	for _, f := range node.Flags {
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path,
		Summary:     node.Summary,
		Subcommands: subcommands,
		Flags:       flags,
	})

	for _, name := range subcommands {
		extractNode(node.Children[name], commands)
	}
}

// FindCommand finds a command by its full path.
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if pathsEqual(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rootName is the binary name the scripts complete for, taken from the
// extracted root entry.
func rootName(commands []CommandInfo) string {
	if len(commands) > 0 && len(commands[0].Path) > 0 {
		return commands[0].Path[0]
	}
	return "cmdtree"
}
