package cli

import "github.com/cmdtree-tools/cli/internal/dispatchers"

var (
	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	OptionalShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "Shell dialect: bash, zsh or fish (defaults to $SHELL)",
			Required:    false,
		},
	}

	OptionalCommandPathArg = []dispatchers.ArgSpec{
		{
			Name:        "command",
			Description: "Dotted command path to render (defaults to the whole registry)",
			Required:    false,
		},
	}
)
