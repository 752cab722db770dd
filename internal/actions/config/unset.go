package config

import (
	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/usage"
)

func Unset(args []string, flags *dispatchers.ParsedFlags) error {
	return unset(args, flags, DefaultDeps())
}

func unset(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if flags.Has("--all") {
		if len(args) > 0 {
			return &usage.Error{
				Kind:    usage.ErrInvalidFlag,
				Message: "cmdtree: --all does not take a key argument",
			}
		}

		err := deps.WithLock(func() error {
			return deps.WriteLines([]string{})
		})
		if err != nil {
			return err
		}

		deps.Println("all config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	var removed bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, removed = deps.Unset(lines, key)
		if !removed {
			return nil
		}
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	if !removed {
		return usage.InvalidConfigKey(key)
	}

	deps.Printf("unset %s\n", key)
	return nil
}
