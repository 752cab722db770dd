package actions

import (
	"fmt"
	"io"
	"os"

	"github.com/cmdtree-tools/cli/internal/app"
	"github.com/cmdtree-tools/cli/internal/completions"
	"github.com/cmdtree-tools/cli/internal/dispatchers"
)

type actionDependencies struct {
	Printf  func(format string, a ...any) (n int, err error)
	Version func() string
	Stdout  io.Writer
	Tree    func() *dispatchers.DispatchNode
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Printf:  fmt.Printf,
		Version: func() string { return app.Version },
		Stdout:  os.Stdout,
		Tree:    completions.GetCommandTree,
	}
}
