package config

import (
	"strconv"

	"github.com/cmdtree-tools/cli/internal/domain"
)

// Defaults holds in-code default values, keyed by config name.
var Defaults = func() map[string]string {
	m := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		m[key.Name] = key.Default
	}
	return m
}()

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		if def, ok := Defaults[key]; ok {
			return def, true
		}
		return "", false
	}

	cfg, err := Parse(lines)
	if err != nil {
		if def, ok := Defaults[key]; ok {
			return def, true
		}
		return "", false
	}

	// Check config file first
	if value, exists := cfg[key]; exists {
		return value, true
	}

	// Fall back to default
	if def, ok := Defaults[key]; ok {
		return def, true
	}

	return "", false
}

// GetInt returns the integer value for a config key, falling back to def
// when the key is unset or not a number.
func GetInt(key string, def int) int {
	value, ok := Get(key)
	if !ok || value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// GetBool returns the boolean value for a config key, falling back to def
// when the key is unset or not a boolean.
func GetBool(key string, def bool) bool {
	value, ok := Get(key)
	if !ok || value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	// Start with defaults
	for key, value := range Defaults {
		result[key] = value
	}

	// Override with user config
	lines, err := ReadLines()
	if err != nil {
		return result, nil // Return defaults on error
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
