package styles

import (
	"strings"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/render"
	"github.com/cmdtree-tools/cli/internal/tree"
	"github.com/cmdtree-tools/cli/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	indent := deps.GetInt("indent_width", 4)
	sample := sampleTree()

	var sb strings.Builder
	for i, name := range render.StyleNames {
		if i > 0 {
			sb.WriteString("\n")
		}

		spec, err := render.ResolveStyle(name, indent)
		if err != nil {
			return err
		}

		sb.WriteString(style.Header(name))
		sb.WriteString("\n")
		sb.WriteString(render.Text(sample, spec, 10, false))
		sb.WriteString("\n")
	}

	deps.Pager(sb.String())
	return nil
}

// sampleTree is a small fixed hierarchy that exercises every glyph a
// style defines: mid and last connectors, continuation bars, nesting.
func sampleTree() *tree.Node {
	return &tree.Node{
		Display:     "command",
		Description: "a command group",
		IsMatch:     true,
		Children: []*tree.Node{
			{
				Display: "first",
				IsMatch: true,
				Children: []*tree.Node{
					{Display: "nested", IsMatch: true},
				},
			},
			{Display: "second", IsMatch: true},
			{Display: "last", IsMatch: true},
		},
	}
}
