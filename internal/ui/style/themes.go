package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Match    string // filter match highlight
	UIActive string // focused panel border in interactive views
	UIDim    string // unfocused panel border in interactive views
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark themes use BRIGHT colors (high contrast on dark backgrounds).
// Light themes use DARK colors (high contrast on light/white backgrounds).
var Themes = map[string]ColorConfig{
	// Classic dark - traditional bright terminal colors for dark backgrounds.
	"default-dark": {
		Success:  "10",  // bright green
		Warning:  "11",  // bright yellow
		Error:    "9",   // bright red
		Info:     "14",  // bright cyan
		Muted:    "245", // medium gray
		Header:   "bold",
		Match:    "9",   // bright red
		UIActive: "14",  // bright cyan
		UIDim:    "240", // dark gray
	},

	// Classic light - dark saturated colors for light/white backgrounds.
	"default-light": {
		Success:  "28",  // dark green
		Warning:  "130", // dark orange
		Error:    "124", // dark red
		Info:     "27",  // dark blue
		Muted:    "243", // medium-dark gray
		Header:   "bold",
		Match:    "124", // dark red
		UIActive: "27",  // dark blue
		UIDim:    "249", // light gray
	},

	// Mono dark - minimalist grayscale with cyan accent.
	"mono-dark": {
		Success:  "50",  // cyan (the one accent)
		Warning:  "229", // pale yellow
		Error:    "210", // light red
		Info:     "50",  // cyan
		Muted:    "245", // gray
		Header:   "bold",
		Match:    "231", // white
		UIActive: "50",  // cyan
		UIDim:    "240", // dim gray
	},

	// Mono light - minimalist grayscale with teal accent.
	"mono-light": {
		Success:  "30",  // dark teal (the one accent)
		Warning:  "136", // amber
		Error:    "124", // dark red
		Info:     "30",  // dark teal
		Muted:    "244", // gray
		Header:   "bold",
		Match:    "235", // near black
		UIActive: "30",  // dark teal
		UIDim:    "249", // light gray
	},

	// Contrast dark - maximum readability with pure primaries.
	"contrast-dark": {
		Success:  "46",  // pure bright green
		Warning:  "226", // pure bright yellow
		Error:    "196", // pure bright red
		Info:     "51",  // pure bright cyan
		Muted:    "250", // bright gray
		Header:   "bold",
		Match:    "196", // pure bright red
		UIActive: "51",  // bright cyan
		UIDim:    "244", // gray
	},

	// Contrast light - maximum readability for light backgrounds.
	"contrast-light": {
		Success:  "22",  // dark green
		Warning:  "130", // dark orange (yellow hard to read on white)
		Error:    "124", // dark red
		Info:     "21",  // dark blue
		Muted:    "240", // dark gray
		Header:   "bold",
		Match:    "124", // dark red
		UIActive: "21",  // dark blue
		UIDim:    "248", // light gray
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (CMDTREE_COLOR_*)
// 2. Config file value
// 3. Theme value (from theme config)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("CMDTREE_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme

	for configKey, fieldName := range colorConfigKeys {
		// Env has highest priority
		envKey := "CMDTREE_" + toUpperSnake(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	}
}

// toUpperSnake converts "color_success" to "COLOR_SUCCESS".
func toUpperSnake(s string) string {
	result := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			result[i] = c - 'a' + 'A'
		} else {
			result[i] = c
		}
	}
	return string(result)
}
