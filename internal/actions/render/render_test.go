package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/registry"
	"github.com/cmdtree-tools/cli/internal/usage"
)

const sampleManifest = `
commands:
  - name: admin
    children:
      - name: admin.ban
  - name: music
descriptions:
  en:
    admin: "Admin tools"
    music: "Play music"
`

type capture struct {
	pager        string
	printed      strings.Builder
	markup       string
	artifactPath string
	artifactData []byte
	registryPath string
	opened       bool
}

func testDeps(t *testing.T, cfg map[string]string, rasterErr error) (Deps, *capture) {
	t.Helper()

	rec := &capture{}

	deps := Deps{
		Get: func(key string) (string, bool) {
			v, ok := cfg[key]
			return v, ok
		},
		GetInt: func(key string, def int) int {
			if v, ok := cfg[key]; ok {
				if n, err := strconv.Atoi(v); err == nil {
					return n
				}
			}
			return def
		},
		GetBool: func(key string, def bool) bool {
			if v, ok := cfg[key]; ok {
				if b, err := strconv.ParseBool(v); err == nil {
					return b
				}
			}
			return def
		},
		OpenRegistry: func(path string) (*registry.Registry, error) {
			rec.opened = true
			rec.registryPath = path
			return registry.Parse([]byte(sampleManifest))
		},
		Rasterize: func(_ context.Context, markup string) ([]byte, error) {
			if rasterErr != nil {
				return nil, rasterErr
			}
			rec.markup = markup
			return []byte("PNG"), nil
		},
		WriteArtifact: func(path string, data []byte) error {
			rec.artifactPath = path
			rec.artifactData = data
			return nil
		},
		Pager: func(s string) { rec.pager = s },
		Printf: func(format string, a ...any) (int, error) {
			s := fmt.Sprintf(format, a...)
			rec.printed.WriteString(s)
			return len(s), nil
		},
	}

	return deps, rec
}

func baseConfig() map[string]string {
	return map[string]string{
		"style":           "ascii-box",
		"indent_width":    "4",
		"max_depth":       "10",
		"max_subcommands": "5",
		"image":           "false",
		"image_css":       "color: #fff",
		"locale":          "en",
	}
}

func TestRenderTree_TextMode(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil)

	err := renderTree(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	want := "admin: Admin tools\n" +
		"`- ban\n" +
		"music: Play music\n"
	require.Equal(t, want, rec.pager)
}

func TestRenderTree_SingleCommandPath(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil)

	err := renderTree([]string{"admin"}, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	want := "admin: Admin tools\n" +
		"`- ban\n"
	require.Equal(t, want, rec.pager)
}

func TestRenderTree_UnknownStyleFailsBeforeRegistry(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil)

	err := renderTree(nil, dispatchers.NewParsedFlags([]string{"--style=fancy"}), deps)
	require.Error(t, err)

	var usageErr *usage.Error
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, usage.ErrUnknownStyle, usageErr.Kind)
	require.False(t, rec.opened, "registry must not be opened when the style is invalid")
}

func TestRenderTree_DepthFlagSuppressesChildren(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil)

	err := renderTree(nil, dispatchers.NewParsedFlags([]string{"--depth=0"}), deps)
	require.NoError(t, err)

	want := "admin: Admin tools\n" +
		"music: Play music\n"
	require.Equal(t, want, rec.pager)
}

func TestRenderTree_FilterMarksMatches(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil)

	err := renderTree(nil, dispatchers.NewParsedFlags([]string{"--filter=ban"}), deps)
	require.NoError(t, err)

	require.Contains(t, rec.pager, "(*) ban")
	require.NotContains(t, rec.pager, "music")
}

func TestRenderTree_NoFilterNoMarker(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil)

	err := renderTree(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.NotContains(t, rec.pager, "(*)")
}

func TestRenderTree_ImageMode(t *testing.T) {
	cfg := baseConfig()
	cfg["image"] = "true"
	deps, rec := testDeps(t, cfg, nil)

	err := renderTree(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	require.Contains(t, rec.markup, "<pre")
	require.Contains(t, rec.markup, "color: #fff;")
	require.Equal(t, []byte("PNG"), rec.artifactData)
	require.True(t, strings.HasPrefix(rec.artifactPath, "tree-"))
	require.True(t, strings.HasSuffix(rec.artifactPath, ".png"))
	require.Contains(t, rec.printed.String(), "wrote "+rec.artifactPath)
	require.Empty(t, rec.pager, "image mode must not page text output")
}

func TestRenderTree_ImageFlagOverridesConfig(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil) // image=false in config

	err := renderTree(nil, dispatchers.NewParsedFlags([]string{"--image"}), deps)
	require.NoError(t, err)
	require.NotEmpty(t, rec.markup)
}

func TestRenderTree_NoImageFlagOverridesConfig(t *testing.T) {
	cfg := baseConfig()
	cfg["image"] = "true"
	deps, rec := testDeps(t, cfg, nil)

	err := renderTree(nil, dispatchers.NewParsedFlags([]string{"--no-image"}), deps)
	require.NoError(t, err)
	require.NotEmpty(t, rec.pager)
	require.Empty(t, rec.markup)
}

func TestRenderTree_OutFlag(t *testing.T) {
	cfg := baseConfig()
	cfg["image"] = "true"
	deps, rec := testDeps(t, cfg, nil)

	err := renderTree(nil, dispatchers.NewParsedFlags([]string{"--out=mytree.png"}), deps)
	require.NoError(t, err)
	require.Equal(t, "mytree.png", rec.artifactPath)
}

func TestRenderTree_RasterizerUnavailable(t *testing.T) {
	cfg := baseConfig()
	cfg["image"] = "true"
	deps, _ := testDeps(t, cfg, usage.RenderingUnavailable())

	err := renderTree(nil, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)

	var usageErr *usage.Error
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, usage.ErrRenderingUnavailable, usageErr.Kind)
}

func TestRenderTree_RegistryFlagPassedThrough(t *testing.T) {
	deps, rec := testDeps(t, baseConfig(), nil)

	err := renderTree(nil, dispatchers.NewParsedFlags([]string{"--registry=commands.yaml"}), deps)
	require.NoError(t, err)
	require.Equal(t, "commands.yaml", rec.registryPath)
}

func TestRenderTree_UnknownCommandPath(t *testing.T) {
	deps, _ := testDeps(t, baseConfig(), nil)

	err := renderTree([]string{"nosuch"}, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)

	var usageErr *usage.Error
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, usage.ErrCommandNotFound, usageErr.Kind)
}
