package cli

import "github.com/cmdtree-tools/cli/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--interactive", "-i"},
			Description: "Open the interactive browser",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	RenderFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--style"},
			ValueHint:   "<name>",
			Description: "Tree style (plain-indent, ascii-box, unicode-box)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--depth"},
			ValueHint:   "<n>",
			Description: "Maximum nesting depth to show",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--max-children"},
			ValueHint:   "<n>",
			Description: "Maximum subcommands listed per command",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--indent"},
			ValueHint:   "<n>",
			Description: "Indent width in columns",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--filter"},
			ValueHint:   "<text>",
			Description: "Only show commands whose name contains text",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--full-path"},
			Description: "Show full dotted command names",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--image"},
			Description: "Render to an image file",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--no-image"},
			Description: "Render as text even when image output is configured",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--out"},
			ValueHint:   "<file>",
			Description: "Image output file name",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--css"},
			ValueHint:   "<decls>",
			Description: "Inline CSS declarations for image output",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--registry"},
			ValueHint:   "<file>",
			Description: "Command manifest to render instead of the configured one",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--locale"},
			ValueHint:   "<tag>",
			Description: "Locale for command descriptions",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	BrowseFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--registry"},
			ValueHint:   "<file>",
			Description: "Command manifest to browse instead of the configured one",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
