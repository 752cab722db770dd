// Package cli defines the command tree the dispatcher walks.
package cli

import (
	"github.com/cmdtree-tools/cli/internal/actions"
	"github.com/cmdtree-tools/cli/internal/actions/browse"
	configactions "github.com/cmdtree-tools/cli/internal/actions/config"
	renderaction "github.com/cmdtree-tools/cli/internal/actions/render"
	"github.com/cmdtree-tools/cli/internal/actions/styles"
	"github.com/cmdtree-tools/cli/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "cmdtree",
		Summary: "Render command registries as trees",
		Usage:   "cmdtree <command> [flags]",
		Flags:   RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "render",
		Parent:  root,
		Summary: "Render the command tree",
		Description: "Renders the command registry as a tree, either as styled text " +
			"through the pager or as an image via the configured rasterizer. " +
			"An optional dotted command path limits the output to one subtree.",
		Usage:    "cmdtree render [command] [flags]",
		Flags:    RenderFlags,
		Args:     OptionalCommandPathArg,
		Action:   renderaction.Render,
		Category: dispatchers.CategoryRender,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "browse",
		Parent:  root,
		Summary: "Browse the command tree interactively",
		Description: "Opens a full-screen browser over the command registry: the tree " +
			"on the left, details and a subtree preview on the right.",
		Usage:    "cmdtree browse [flags]",
		Flags:    BrowseFlags,
		Action:   browse.Browse,
		Category: dispatchers.CategoryRender,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "styles",
		Parent:   root,
		Summary:  "Preview the available tree styles",
		Usage:    "cmdtree styles",
		Action:   styles.List,
		Category: dispatchers.CategoryRender,
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "cmdtree config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Get a config value",
		Usage:    "cmdtree config get <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "cmdtree config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "cmdtree config unset <key>",
		Flags:    ConfigUnsetFlags,
		Args:     ConfigKeyArg,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List all config values",
		Usage:    "cmdtree config list",
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Print a shell completion script",
		Usage:    "cmdtree completions [shell]",
		Args:     OptionalShellArg,
		Action:   actions.ShowCompletions,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show cmdtree version",
		Usage:    "cmdtree version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInfo,
	})

	// Resolved by the dispatcher itself; no action.
	dispatchers.Group(dispatchers.GroupSpec{
		Name:    "help",
		Parent:  root,
		Summary: "Show help for a command",
		Usage:   "cmdtree help [command]",
	})

	return root
}
