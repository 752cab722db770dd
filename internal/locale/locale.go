// Package locale provides per-locale command description lookup.
package locale

import (
	"strings"

	"github.com/cmdtree-tools/cli/internal/domain"
)

// fallbackLocale is used when the requested locale has no table.
const fallbackLocale = "en"

// Table maps dotted command names to description text for one locale.
// Values may carry HTML entities; unescaping is the tree builder's job.
type Table map[string]string

// Describe returns the description for a command, or the empty string.
func (t Table) Describe(name string) string {
	return t[name]
}

// Select picks the description table for a locale. Falls back from a
// regional tag to its base language ("de-AT" to "de"), then to English,
// then to an empty table.
func Select(tables map[string]map[string]string, locale string) Table {
	if tables == nil {
		return Table{}
	}

	if t, ok := tables[locale]; ok {
		return Table(t)
	}

	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		if t, ok := tables[locale[:idx]]; ok {
			return Table(t)
		}
	}

	if t, ok := tables[fallbackLocale]; ok {
		return Table(t)
	}

	return Table{}
}

// Verify Table implements domain.Localizer.
var _ domain.Localizer = Table{}
