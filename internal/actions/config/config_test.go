package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmdtree-tools/cli/internal/config"
	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/usage"
)

// testDeps builds a Deps backed by an in-memory line store and output buffer.
func testDeps(initial []string) (Deps, *[]string, *strings.Builder) {
	lines := append([]string{}, initial...)
	var out strings.Builder

	deps := Deps{
		ReadLines: func() ([]string, error) {
			return append([]string{}, lines...), nil
		},
		WriteLines: func(updated []string) error {
			lines = append([]string{}, updated...)
			return nil
		},
		Set:   config.Set,
		Unset: config.Unset,
		Get: func(key string) (string, bool) {
			cfg, err := config.Parse(lines)
			if err != nil {
				return "", false
			}
			if v, ok := cfg[key]; ok {
				return v, true
			}
			if def, ok := config.Defaults[key]; ok {
				return def, true
			}
			return "", false
		},
		GetAll: func() (map[string]string, error) {
			result := make(map[string]string)
			for k, v := range config.Defaults {
				result[k] = v
			}
			cfg, err := config.Parse(lines)
			if err != nil {
				return result, nil
			}
			for k, v := range cfg {
				result[k] = v
			}
			return result, nil
		},
		WithLock: func(fn func() error) error { return fn() },
		Printf: func(format string, a ...any) (int, error) {
			s := fmt.Sprintf(format, a...)
			out.WriteString(s)
			return len(s), nil
		},
		Println: func(a ...any) (int, error) {
			s := fmt.Sprintln(a...)
			out.WriteString(s)
			return len(s), nil
		},
	}

	return deps, &lines, &out
}

func TestGet_ReturnsConfiguredValue(t *testing.T) {
	deps, _, out := testDeps([]string{"style=unicode-box"})

	err := get([]string{"style"}, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Equal(t, "unicode-box\n", out.String())
}

func TestGet_FallsBackToDefault(t *testing.T) {
	deps, _, out := testDeps(nil)

	err := get([]string{"max_depth"}, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Equal(t, "10\n", out.String())
}

func TestGet_MissingKeyArg(t *testing.T) {
	deps, _, _ := testDeps(nil)

	err := get(nil, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)

	var usageErr *usage.Error
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, usage.ErrMissingArgument, usageErr.Kind)
}

func TestGet_UnknownKey(t *testing.T) {
	deps, _, _ := testDeps(nil)

	err := get([]string{"no_such_key"}, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)

	var usageErr *usage.Error
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, usage.ErrInvalidConfigKey, usageErr.Kind)
}

func TestSet_AddsNewKey(t *testing.T) {
	deps, lines, out := testDeps(nil)

	err := set([]string{"style", "plain-indent"}, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Contains(t, *lines, "style=plain-indent")
	require.Contains(t, out.String(), "added style=plain-indent")
}

func TestSet_UpdatesExistingKey(t *testing.T) {
	deps, lines, out := testDeps([]string{"style=ascii-box"})

	err := set([]string{"style", "unicode-box"}, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Contains(t, *lines, "style=unicode-box")
	require.Contains(t, out.String(), "updated style=unicode-box")
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	deps, _, _ := testDeps(nil)

	err := set([]string{"bogus", "value"}, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)

	var usageErr *usage.Error
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, usage.ErrInvalidConfigKey, usageErr.Kind)
}

func TestSet_MissingValue(t *testing.T) {
	deps, _, _ := testDeps(nil)

	err := set([]string{"style"}, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)
	require.Contains(t, err.Error(), "value")
}

func TestUnset_RemovesKey(t *testing.T) {
	deps, lines, out := testDeps([]string{"style=ascii-box", "max_depth=3"})

	err := unset([]string{"style"}, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.NotContains(t, *lines, "style=ascii-box")
	require.Contains(t, *lines, "max_depth=3")
	require.Contains(t, out.String(), "unset style")
}

func TestUnset_KeyNotSet(t *testing.T) {
	deps, _, _ := testDeps(nil)

	err := unset([]string{"style"}, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)

	var usageErr *usage.Error
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, usage.ErrInvalidConfigKey, usageErr.Kind)
}

func TestUnset_All(t *testing.T) {
	deps, lines, out := testDeps([]string{"style=ascii-box", "max_depth=3"})

	err := unset(nil, dispatchers.NewParsedFlags([]string{"--all"}), deps)
	require.NoError(t, err)
	require.Empty(t, *lines)
	require.Contains(t, out.String(), "all config entries removed")
}

func TestUnset_AllWithArgsRejected(t *testing.T) {
	deps, _, _ := testDeps(nil)

	err := unset([]string{"style"}, dispatchers.NewParsedFlags([]string{"--all"}), deps)
	require.Error(t, err)
}

func TestList_ShowsDefaultsAndOverrides(t *testing.T) {
	deps, _, out := testDeps([]string{"style=plain-indent"})

	err := list(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	require.Contains(t, out.String(), "style=plain-indent")
	require.Contains(t, out.String(), "max_depth=10")
	require.Contains(t, out.String(), "max_subcommands=5")
}

func TestList_HidesEmptyOptionalKeys(t *testing.T) {
	deps, _, out := testDeps(nil)

	err := list(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	require.NotContains(t, out.String(), "renderer_url=")
	require.NotContains(t, out.String(), "registry=")
}

func TestList_ShowsOptionalKeysWhenSet(t *testing.T) {
	deps, _, out := testDeps([]string{"renderer_url=http://localhost:9222/render"})

	err := list(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	require.Contains(t, out.String(), "renderer_url=http://localhost:9222/render")
}
