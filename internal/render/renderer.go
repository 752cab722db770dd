// Package render turns a built command tree into styled text or markup.
package render

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/cmdtree-tools/cli/internal/tree"
)

// ellipsis is the synthetic final sibling marking a truncated child list.
const ellipsis = "..."

// matchColor is the emphasis color used for filter matches in markup mode.
const matchColor = "#d33"

// lineWriter abstracts the two output encodings. Plain(s) receives
// connector glyphs and non-matching header text; Match(s) receives a
// header that must be emphasized.
type lineWriter interface {
	Plain(s string)
	Match(s string)
	Newline()
}

// Text renders the tree as plain text. When markMatches is set (a filter
// is active), matching headers get a literal "(*) " prefix.
func Text(root *tree.Node, spec StyleSpec, maxDepth int, markMatches bool) string {
	w := &textWriter{}
	walkRoot(root, spec, maxDepth, markMatches, w)
	return w.sb.String()
}

// Markup renders the tree into parent as markup: matching headers are
// wrapped in a bold, colored element instead of the literal marker. The
// two highlighting modes are mutually exclusive; the output mode picks one.
func Markup(root *tree.Node, spec StyleSpec, maxDepth int, markMatches bool, parent *etree.Element) {
	w := &markupWriter{parent: parent}
	walkRoot(root, spec, maxDepth, markMatches, w)
}

type textWriter struct {
	sb strings.Builder
}

func (w *textWriter) Plain(s string) { w.sb.WriteString(s) }
func (w *textWriter) Match(s string) {
	w.sb.WriteString("(*) ")
	w.sb.WriteString(s)
}
func (w *textWriter) Newline() { w.sb.WriteByte('\n') }

type markupWriter struct {
	parent *etree.Element
}

func (w *markupWriter) Plain(s string) { w.parent.CreateText(s) }
func (w *markupWriter) Match(s string) {
	b := w.parent.CreateElement("b")
	b.CreateAttr("style", "color: "+matchColor)
	b.SetText(s)
}
func (w *markupWriter) Newline() { w.parent.CreateText("\n") }

// walkRoot handles the synthetic root: an empty display means "render the
// whole registry", so its children become top-level lines with no
// connectors.
func walkRoot(root *tree.Node, spec StyleSpec, maxDepth int, markMatches bool, w lineWriter) {
	if root.Display != "" {
		walk(root, spec, 0, maxDepth, "", markMatches, w)
		return
	}

	for i, child := range root.Children {
		if i > 0 {
			w.Newline()
		}
		walk(child, spec, 0, maxDepth, "", markMatches, w)
	}
	if root.Truncated {
		if len(root.Children) > 0 {
			w.Newline()
		}
		w.Plain(ellipsis)
	}
}

func walk(n *tree.Node, spec StyleSpec, depth, maxDepth int, indent string, markMatches bool, w lineWriter) {
	header := n.Display
	if n.Description != "" {
		header += ": " + n.Description
	}

	if markMatches && n.IsMatch {
		w.Match(header)
	} else {
		w.Plain(header)
	}

	// Depth suppression: at maxDepth neither children nor the ellipsis
	// show. The ellipsis marks count truncation only.
	if depth >= maxDepth {
		return
	}
	if len(n.Children) == 0 && !n.Truncated {
		return
	}

	for i, child := range n.Children {
		last := i == len(n.Children)-1 && !n.Truncated

		connector := spec.BranchConnector
		carried := indent + spec.ContinuationBar
		if last {
			connector = spec.LastBranchConnector
			carried = indent + spec.WhitespaceFiller
		}

		w.Newline()
		w.Plain(indent + connector)
		walk(child, spec, depth+1, maxDepth, carried, markMatches, w)
	}

	if n.Truncated {
		w.Newline()
		w.Plain(indent + spec.LastBranchConnector + ellipsis)
	}
}
