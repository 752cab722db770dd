package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/cmdtree-tools/cli/internal/actions"
	"github.com/cmdtree-tools/cli/internal/actions/browse"
	renderaction "github.com/cmdtree-tools/cli/internal/actions/render"
	"github.com/cmdtree-tools/cli/internal/cli"
	"github.com/cmdtree-tools/cli/internal/completions"
	"github.com/cmdtree-tools/cli/internal/config"
	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/log"
	"github.com/cmdtree-tools/cli/internal/paths"
	"github.com/cmdtree-tools/cli/internal/registry"
	"github.com/cmdtree-tools/cli/internal/ui"
	"github.com/cmdtree-tools/cli/internal/ui/style"
	"github.com/cmdtree-tools/cli/internal/usage"
)

func main() {
	args := os.Args[1:]

	rawFlags, commands := extractFlagsAndCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	cfg, _ := config.GetAll()

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	style.Init(enableColor, cfg)

	if config.GetBool("enable_log", true) {
		if err := log.Init(paths.LogFilePath(), log.ParseLevel(os.Getenv("CMDTREE_LOG_LEVEL"))); err != nil {
			fmt.Fprintln(os.Stderr, style.Warning("cmdtree: logging disabled: "+err.Error()))
		}
	}

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}

	root := cli.BuildTree()

	// Late bindings that would otherwise be import cycles: the browser is a
	// command over the tree that contains it, and the default registry is
	// derived from that same tree.
	dispatchers.SetInteractiveBrowserFunc(browse.Browse)
	renderaction.SetSelfRegistry(func() *registry.Registry {
		return registry.FromDispatchTree(root)
	})
	completions.RegisterCommandTree(root)

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		_ = actions.ShowVersion(nil, flags)
		return
	}

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		fail(err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		fail(err)
	}

	// Exit non-zero when resolution requests it (e.g. cmdtree with no args)
	if res.ExitCode != 0 {
		os.Exit(res.ExitCode)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, style.Error(err.Error()))

	var ue *usage.Error
	if errors.As(err, &ue) {
		os.Exit(ue.GetExitCode())
	}
	os.Exit(1)
}

// valueFlags take a value. When the value comes space-separated
// ("--filter ban") it is folded into the "--filter=ban" form the flag
// parser expects.
var valueFlags = map[string]bool{
	"--style":        true,
	"--depth":        true,
	"--max-children": true,
	"--indent":       true,
	"--filter":       true,
	"--out":          true,
	"--css":          true,
	"--registry":     true,
	"--locale":       true,
	"--pager":        true,
}

func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if len(a) == 0 || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if valueFlags[a] && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
			flags = append(flags, a+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}
