// Package config implements the config get/set/unset/list commands.
package config

import (
	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/domain"
	"github.com/cmdtree-tools/cli/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	if !domain.ValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)
	deps.Println(value)
	return nil
}
