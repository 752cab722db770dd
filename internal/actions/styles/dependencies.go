// Package styles implements the styles command, a catalog preview of the
// available tree styles.
package styles

import (
	"github.com/cmdtree-tools/cli/internal/config"
	"github.com/cmdtree-tools/cli/internal/ui"
)

type Deps struct {
	GetInt func(string, int) int
	Pager  func(string)
}

func DefaultDeps() Deps {
	return Deps{
		GetInt: config.GetInt,
		Pager:  ui.Pager,
	}
}
