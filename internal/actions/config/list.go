package config

import (
	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/domain"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		value := configMap[key.Name]
		if key.HideIfEmpty && value == "" {
			continue
		}

		deps.Printf("%s=%s\n", key.Name, value)
	}

	return nil
}
