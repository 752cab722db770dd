package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
)

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := BuildTree()

	require.NotNil(t, root)
	require.Equal(t, "cmdtree", root.Name)
}

func TestBuildTree_HasExpectedTopLevelCommands(t *testing.T) {
	root := BuildTree()

	expectedCommands := []string{
		"render",
		"browse",
		"styles",
		"config",
		"completions",
		"version",
		"help",
	}

	for _, cmd := range expectedCommands {
		_, found := root.Children[cmd]
		require.True(t, found, "expected top-level command '%s' not found", cmd)
	}
}

func TestBuildTree_ConfigHasSubcommands(t *testing.T) {
	root := BuildTree()

	config, found := root.Children["config"]
	require.True(t, found, "config group not found")

	expectedSubcommands := []string{"get", "set", "unset", "list"}
	for _, sub := range expectedSubcommands {
		_, found := config.Children[sub]
		require.True(t, found, "expected config subcommand '%s' not found", sub)
	}
}

func TestBuildTree_CommandsHaveActions(t *testing.T) {
	root := BuildTree()

	commandsWithActions := []string{
		"render",
		"browse",
		"styles",
		"completions",
		"version",
	}

	for _, cmdName := range commandsWithActions {
		cmd, found := root.Children[cmdName]
		require.True(t, found, "command '%s' not found", cmdName)
		require.NotNil(t, cmd.Action, "command '%s' should have an action", cmdName)
	}
}

func TestBuildTree_SubcommandsHaveActions(t *testing.T) {
	root := BuildTree()

	config := root.Children["config"]
	for name, child := range config.Children {
		require.NotNil(t, child.Action, "config subcommand '%s' should have an action", name)
	}
}

func TestBuildTree_RootHasFlags(t *testing.T) {
	root := BuildTree()

	require.NotEmpty(t, root.Flags, "root should have flags")

	flagNames := make(map[string]bool)
	for _, flag := range root.Flags {
		for _, name := range flag.Names {
			flagNames[name] = true
		}
	}

	require.True(t, flagNames["--help"], "root should have --help flag")
	require.True(t, flagNames["--version"], "root should have --version flag")
	require.True(t, flagNames["--no-color"], "root should have --no-color flag")
	require.True(t, flagNames["--interactive"], "root should have --interactive flag")
	require.True(t, flagNames["-i"], "root should have -i flag")
}

func TestBuildTree_RenderHasFlags(t *testing.T) {
	root := BuildTree()

	render := root.Children["render"]
	require.NotEmpty(t, render.Flags, "render should have flags")

	flagNames := make(map[string]bool)
	for _, flag := range render.Flags {
		for _, name := range flag.Names {
			flagNames[name] = true
		}
	}

	require.True(t, flagNames["--style"], "render should have --style flag")
	require.True(t, flagNames["--depth"], "render should have --depth flag")
	require.True(t, flagNames["--filter"], "render should have --filter flag")
	require.True(t, flagNames["--no-image"], "render should have --no-image flag")
	require.True(t, flagNames["--registry"], "render should have --registry flag")
}

func TestBuildTree_RenderTakesOptionalPath(t *testing.T) {
	root := BuildTree()

	render := root.Children["render"]
	require.Len(t, render.Args, 1)
	require.False(t, render.Args[0].Required)
}

func TestBuildTree_ConfigUnsetHasAllFlag(t *testing.T) {
	root := BuildTree()

	unset := root.Children["config"].Children["unset"]
	require.NotEmpty(t, unset.Flags)

	flagNames := make(map[string]bool)
	for _, flag := range unset.Flags {
		for _, name := range flag.Names {
			flagNames[name] = true
		}
	}
	require.True(t, flagNames["--all"], "config unset should have --all flag")
}

func TestBuildTree_CommandsHaveUsage(t *testing.T) {
	root := BuildTree()

	require.NotEmpty(t, root.Usage, "root should have usage")

	for name, child := range root.Children {
		require.NotEmpty(t, child.Usage, "command '%s' should have usage", name)
	}
}

func TestBuildTree_CommandsHaveSummary(t *testing.T) {
	root := BuildTree()

	require.NotEmpty(t, root.Summary, "root should have summary")

	for name, child := range root.Children {
		require.NotEmpty(t, child.Summary, "command '%s' should have summary", name)
	}
}

func TestBuildTree_CommandsHaveCategories(t *testing.T) {
	root := BuildTree()

	require.Equal(t, dispatchers.CategoryRender, root.Children["render"].Category)
	require.Equal(t, dispatchers.CategoryRender, root.Children["browse"].Category)
	require.Equal(t, dispatchers.CategoryInfo, root.Children["version"].Category)
	require.Equal(t, dispatchers.CategoryConfig, root.Children["config"].Children["get"].Category)
}

func TestBuildTree_HelpHasNoAction(t *testing.T) {
	root := BuildTree()

	help, found := root.Children["help"]
	require.True(t, found, "help command not found")
	require.Nil(t, help.Action, "help should not have an action (handled specially)")
}
