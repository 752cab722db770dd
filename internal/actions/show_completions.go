package actions

import (
	"github.com/cmdtree-tools/cli/internal/completions"
	"github.com/cmdtree-tools/cli/internal/dispatchers"
)

func ShowCompletions(args []string, flags *dispatchers.ParsedFlags) error {
	return showCompletions(args, flags, defaultDeps())
}

func showCompletions(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	shell := completions.DetectShell()
	if len(args) > 0 {
		shell = completions.Shell(args[0])
	}

	return completions.PrintCompletions(deps.Stdout, deps.Tree(), shell)
}
