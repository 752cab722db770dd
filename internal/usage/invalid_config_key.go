package usage

import "fmt"

// InvalidConfigKey is returned when a configuration key is not recognized.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("cmdtree: unknown config key '%s'", key),
	}
}
