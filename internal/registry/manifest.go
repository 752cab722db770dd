package registry

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cmdtree-tools/cli/internal/domain"
	"github.com/cmdtree-tools/cli/internal/usage"
)

// manifestCommand mirrors one command entry in the YAML manifest. Names
// are full dotted identifiers; the manifest may list both a nested command
// and a flattened duplicate (the hoist case handled at build time).
type manifestCommand struct {
	Name     string            `yaml:"name"`
	Children []manifestCommand `yaml:"children"`
}

type manifest struct {
	Commands     []manifestCommand            `yaml:"commands"`
	Descriptions map[string]map[string]string `yaml:"descriptions"`
}

// Load reads and parses a registry manifest from disk.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, usage.InvalidManifest(path, err)
	}

	reg, err := Parse(data)
	if err != nil {
		return nil, usage.InvalidManifest(path, err)
	}

	return reg, nil
}

// Parse builds a Registry from manifest bytes.
func Parse(data []byte) (*Registry, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	top := make([]domain.RawCommand, 0, len(m.Commands))
	for _, mc := range m.Commands {
		top = append(top, toRawCommand(mc))
	}

	return &Registry{top: top, descriptions: m.Descriptions}, nil
}

func toRawCommand(mc manifestCommand) domain.RawCommand {
	cmd := domain.RawCommand{Name: mc.Name}
	for _, child := range mc.Children {
		cmd.Children = append(cmd.Children, toRawCommand(child))
	}
	return cmd
}
