package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmdtree-tools/cli/internal/domain"
	"github.com/cmdtree-tools/cli/internal/tree"
)

func TestParseCSS(t *testing.T) {
	props := ParseCSS("color: #fff; background: #000; font-family: monospace")

	require.Equal(t, []CSSProperty{
		{Key: "color", Value: "#fff"},
		{Key: "background", Value: "#000"},
		{Key: "font-family", Value: "monospace"},
	}, props)
}

func TestParseCSSDropsMalformedDeclarations(t *testing.T) {
	props := ParseCSS("color: red; nonsense; : novalue; padding: 4px;")

	require.Equal(t, []CSSProperty{
		{Key: "color", Value: "red"},
		{Key: "padding", Value: "4px"},
	}, props)
}

func TestStyleAttrPreservesDeclarationOrder(t *testing.T) {
	props := []CSSProperty{
		{Key: "background", Value: "#000"},
		{Key: "color", Value: "#fff"},
	}

	require.Equal(t, "background: #000; color: #fff;", StyleAttr(props))
}

func TestMarkupDocumentWrapsInStyledPre(t *testing.T) {
	top := []domain.RawCommand{{Name: "alpha"}}
	root := tree.BuildRoot(top, mapLocalizer{}, tree.Params{MaxDepth: 10, MaxSubcommands: 5})

	out, err := MarkupDocument(root, mustStyle(t, "ascii-box"), 10, false, ParseCSS("color: #fff"))
	require.NoError(t, err)

	require.Contains(t, out, `<pre style="color: #fff;">`)
	require.Contains(t, out, "alpha")
	require.Contains(t, out, "</pre>")
}

func TestMarkupDocumentEmphasizesMatches(t *testing.T) {
	top := []domain.RawCommand{{Name: "alpha"}, {Name: "beam"}}

	p := tree.Params{MaxDepth: 10, MaxSubcommands: 5, Filter: "beam"}
	root := tree.BuildRoot(top, mapLocalizer{}, p)

	out, err := MarkupDocument(root, mustStyle(t, "ascii-box"), 10, true, nil)
	require.NoError(t, err)

	require.Contains(t, out, `<b style="color: #d33">beam</b>`)
	// Markup mode never emits the literal text marker.
	require.NotContains(t, out, "(*)")
}

func TestMarkupDocumentEscapesText(t *testing.T) {
	loc := mapLocalizer{"cmp": "compares a < b"}
	node := tree.BuildCommand(domain.RawCommand{Name: "cmp"}, loc, tree.Params{MaxDepth: 10, MaxSubcommands: 5})

	out, err := MarkupDocument(node, mustStyle(t, "ascii-box"), 10, false, nil)
	require.NoError(t, err)

	require.Contains(t, out, "a &lt; b")
}

func TestMarkupDocumentNoCSS(t *testing.T) {
	node := tree.BuildCommand(domain.RawCommand{Name: "solo"}, mapLocalizer{}, tree.Params{MaxDepth: 10, MaxSubcommands: 5})

	out, err := MarkupDocument(node, mustStyle(t, "ascii-box"), 10, false, nil)
	require.NoError(t, err)

	require.Contains(t, out, "<pre>solo</pre>")
}
