package usage

import "fmt"

// CommandNotFound is returned when a registry path does not resolve to a
// command.
func CommandNotFound(path string) *Error {
	return &Error{
		Kind:    ErrCommandNotFound,
		Message: fmt.Sprintf("cmdtree: no command registered under '%s'", path),
	}
}
