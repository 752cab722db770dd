package usage

import "fmt"

// InvalidManifest is returned when the registry manifest cannot be read or
// parsed.
func InvalidManifest(path string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidManifest,
		Message: fmt.Sprintf("cmdtree: cannot load registry manifest '%s': %v", path, err),
	}
}
