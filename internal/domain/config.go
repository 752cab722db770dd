package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `cmdtree config list`
	Hidden      bool   // Hidden keys are not shown in help or config list
	HideIfEmpty bool   // Only show in config list if explicitly set
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in `cmdtree config list`.
var ConfigKeys = []ConfigKey{
	// Rendering
	{
		Name:        "style",
		Default:     "ascii-box",
		Description: "Tree style: plain-indent, ascii-box, unicode-box",
		Section:     "Rendering",
	},
	{
		Name:        "indent_width",
		Default:     "4",
		Description: "Indentation width in columns (minimum 2)",
		Section:     "Rendering",
	},
	{
		Name:        "max_depth",
		Default:     "10",
		Description: "Maximum tree depth shown",
		Section:     "Rendering",
	},
	{
		Name:        "max_subcommands",
		Default:     "5",
		Description: "Maximum subcommands listed per command",
		Section:     "Rendering",
	},
	// Image output
	{
		Name:        "image",
		Default:     "true",
		Description: "Render to an image instead of plain text (true/false)",
		Section:     "Image",
	},
	{
		Name:        "image_css",
		Default:     "color: #e6e6e6; background: #1d1f21; font-family: monospace",
		Description: "CSS declarations applied to the image markup block",
		Section:     "Image",
	},
	{
		Name:        "renderer_url",
		Default:     "",
		Description: "HTTP endpoint of the markup-to-image rasterizer",
		Section:     "Image",
		HideIfEmpty: true,
	},
	// Registry
	{
		Name:        "registry",
		Default:     "",
		Description: "Path to the command registry manifest",
		Section:     "Registry",
		HideIfEmpty: true,
	},
	{
		Name:        "locale",
		Default:     "en",
		Description: "Locale used for command descriptions",
		Section:     "Registry",
	},
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, contrast",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	// Color overrides (use theme defaults when empty)
	{
		Name:        "color_success",
		Default:     "",
		Description: "Override success color (ANSI 0-255 or 'bold')",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Default:     "",
		Description: "Override warning color",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Default:     "",
		Description: "Override error color",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Default:     "",
		Description: "Override info color",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Default:     "",
		Description: "Override muted color",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Default:     "",
		Description: "Override header color",
		Section:     "Colors",
		HideIfEmpty: true,
	},
}

// ValidConfigKey reports whether name is a known configuration key.
func ValidConfigKey(name string) bool {
	for _, k := range ConfigKeys {
		if k.Name == name {
			return true
		}
	}
	return false
}
