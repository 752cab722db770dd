package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmdtree-tools/cli/internal/usage"
)

func TestResolveStylePlainIndent(t *testing.T) {
	spec, err := ResolveStyle("plain-indent", 4)
	require.NoError(t, err)
	require.Equal(t, "    ", spec.WhitespaceFiller)
	require.Equal(t, "    ", spec.ContinuationBar)
	require.Empty(t, spec.BranchConnector)
	require.Empty(t, spec.LastBranchConnector)
}

func TestResolveStyleAsciiBox(t *testing.T) {
	spec, err := ResolveStyle("ascii-box", 4)
	require.NoError(t, err)
	require.Equal(t, "    ", spec.WhitespaceFiller)
	require.Equal(t, "|   ", spec.ContinuationBar)
	require.Equal(t, "+- ", spec.BranchConnector)
	require.Equal(t, "`- ", spec.LastBranchConnector)
}

func TestResolveStyleUnicodeBox(t *testing.T) {
	spec, err := ResolveStyle("unicode-box", 2)
	require.NoError(t, err)
	require.Equal(t, "  ", spec.WhitespaceFiller)
	require.Equal(t, "| ", spec.ContinuationBar)
	require.Equal(t, "├── ", spec.BranchConnector)
	require.Equal(t, "└── ", spec.LastBranchConnector)
}

func TestResolveStyleWidthsFollowIndent(t *testing.T) {
	for _, width := range []int{2, 3, 4, 8} {
		spec, err := ResolveStyle("ascii-box", width)
		require.NoError(t, err)
		require.Len(t, spec.WhitespaceFiller, width)
		require.Len(t, spec.ContinuationBar, width)
	}
}

func TestResolveStyleClampsNarrowIndent(t *testing.T) {
	spec, err := ResolveStyle("ascii-box", 1)
	require.NoError(t, err)
	require.Len(t, spec.WhitespaceFiller, MinIndentWidth)
}

func TestResolveStyleUnknown(t *testing.T) {
	_, err := ResolveStyle("fancy", 4)
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownStyle, ue.Kind)
	require.Contains(t, ue.Error(), "fancy")
	require.Contains(t, ue.Error(), "ascii-box")
}
