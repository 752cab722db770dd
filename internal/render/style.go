package render

import (
	"strings"

	"github.com/cmdtree-tools/cli/internal/usage"
)

// StyleSpec holds the four glyph strings a tree style is made of. All
// widths derive from one configured indent width.
type StyleSpec struct {
	WhitespaceFiller    string
	ContinuationBar     string
	BranchConnector     string
	LastBranchConnector string
}

// MinIndentWidth is the narrowest indent that still fits the connector
// glyphs.
const MinIndentWidth = 2

// StyleNames lists the fixed style catalog in display order.
var StyleNames = []string{"plain-indent", "ascii-box", "unicode-box"}

// ResolveStyle maps a style name to its rendering primitives.
// Fails with UnknownStyle for anything outside the fixed catalog.
func ResolveStyle(name string, indentWidth int) (StyleSpec, error) {
	if indentWidth < MinIndentWidth {
		indentWidth = MinIndentWidth
	}

	spaces := strings.Repeat(" ", indentWidth)

	switch name {
	case "plain-indent":
		// Pure indentation, no lines.
		return StyleSpec{
			WhitespaceFiller: spaces,
			ContinuationBar:  spaces,
		}, nil
	case "ascii-box":
		return StyleSpec{
			WhitespaceFiller:    spaces,
			ContinuationBar:     "|" + strings.Repeat(" ", indentWidth-1),
			BranchConnector:     "+- ",
			LastBranchConnector: "`- ",
		}, nil
	case "unicode-box":
		return StyleSpec{
			WhitespaceFiller:    spaces,
			ContinuationBar:     "|" + strings.Repeat(" ", indentWidth-1),
			BranchConnector:     "├── ",
			LastBranchConnector: "└── ",
		}, nil
	default:
		return StyleSpec{}, usage.UnknownStyle(name, StyleNames)
	}
}
