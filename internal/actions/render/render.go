// Package render implements the render command: it builds the pruned
// command tree and emits it as pager text or a rasterized image.
package render

import (
	"context"
	"time"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/imgrender"
	"github.com/cmdtree-tools/cli/internal/locale"
	"github.com/cmdtree-tools/cli/internal/log"
	treerender "github.com/cmdtree-tools/cli/internal/render"
	"github.com/cmdtree-tools/cli/internal/tree"
	"github.com/cmdtree-tools/cli/internal/ui/style"
)

const rasterizeTimeout = 30 * time.Second

func Render(args []string, flags *dispatchers.ParsedFlags) error {
	return renderTree(args, flags, DefaultDeps())
}

func renderTree(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	// Style resolution fails fast, before any registry work.
	cfgStyle, _ := deps.Get("style")
	styleName := flags.String("--style", cfgStyle)
	indent := flags.Int("--indent", deps.GetInt("indent_width", 4))

	spec, err := treerender.ResolveStyle(styleName, indent)
	if err != nil {
		return err
	}

	params := tree.Params{
		MaxDepth:       flags.Int("--depth", deps.GetInt("max_depth", 10)),
		MaxSubcommands: flags.Int("--max-children", deps.GetInt("max_subcommands", 5)),
		Filter:         flags.String("--filter", ""),
		FullPath:       flags.Has("--full-path"),
	}

	reg, err := deps.OpenRegistry(flags.String("--registry", ""))
	if err != nil {
		return err
	}

	localeName, _ := deps.Get("locale")
	if v := flags.String("--locale", ""); v != "" {
		localeName = v
	}
	loc := locale.Select(reg.Descriptions(), localeName)

	root, err := tree.Build(reg, path, loc, params)
	if err != nil {
		return err
	}

	// The match marker only appears when a filter narrowed the tree.
	markMatches := params.Filter != ""

	image := deps.GetBool("image", true)
	if flags.Has("--image") {
		image = true
	}
	if flags.Has("--no-image") {
		image = false
	}

	log.Debug("render path=%q style=%s depth=%d filter=%q image=%v",
		path, styleName, params.MaxDepth, params.Filter, image)

	if !image {
		text := treerender.Text(root, spec, params.MaxDepth, markMatches)
		deps.Pager(text + "\n")
		return nil
	}

	cssRaw, _ := deps.Get("image_css")
	if v := flags.String("--css", ""); v != "" {
		cssRaw = v
	}

	markup, err := treerender.MarkupDocument(root, spec, params.MaxDepth, markMatches, treerender.ParseCSS(cssRaw))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), rasterizeTimeout)
	defer cancel()

	data, err := deps.Rasterize(ctx, markup)
	if err != nil {
		return err
	}

	out := imgrender.ArtifactPath(flags.String("--out", ""))
	if err := deps.WriteArtifact(out, data); err != nil {
		return err
	}

	deps.Printf("wrote %s\n", style.Success(out))
	return nil
}
