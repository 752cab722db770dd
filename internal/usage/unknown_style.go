package usage

import (
	"fmt"
	"strings"
)

// UnknownStyle is returned when a style name is not in the fixed catalog.
func UnknownStyle(name string, known []string) *Error {
	return &Error{
		Kind:    ErrUnknownStyle,
		Message: fmt.Sprintf("cmdtree: unknown style '%s' (available: %s)", name, strings.Join(known, ", ")),
	}
}
