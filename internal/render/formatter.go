package render

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/cmdtree-tools/cli/internal/tree"
)

// CSSProperty is one declaration applied to the markup wrapper. Properties
// are kept as an ordered list so the emitted style attribute is
// deterministic (declaration order from the config).
type CSSProperty struct {
	Key   string
	Value string
}

// ParseCSS splits a declaration list ("color: #fff; background: #000")
// into ordered properties. Malformed declarations are dropped.
func ParseCSS(s string) []CSSProperty {
	var props []CSSProperty

	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}

		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			continue
		}

		props = append(props, CSSProperty{Key: key, Value: value})
	}

	return props
}

// StyleAttr renders the properties as "key: value;" pairs.
func StyleAttr(props []CSSProperty) string {
	var sb strings.Builder
	for i, p := range props {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Key)
		sb.WriteString(": ")
		sb.WriteString(p.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// MarkupDocument renders the tree as a preformatted markup block suitable
// for the image rasterizer: matches emphasized, the whole output wrapped
// in a <pre> carrying the configured inline style.
func MarkupDocument(root *tree.Node, spec StyleSpec, maxDepth int, markMatches bool, css []CSSProperty) (string, error) {
	doc := etree.NewDocument()

	pre := doc.CreateElement("pre")
	if attr := StyleAttr(css); attr != "" {
		pre.CreateAttr("style", attr)
	}

	Markup(root, spec, maxDepth, markMatches, pre)

	return doc.WriteToString()
}
