package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrCommandNotFound
	ErrUnknownStyle
	ErrRenderingUnavailable
	ErrInvalidManifest
	ErrInvalidConfigKey
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown CLI command
//	  - Registry path does not resolve
//	  - Rasterizer unavailable
//	  - Manifest cannot be read or parsed
//	  - Invalid config key
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Unknown style name
var exitCodes = map[ErrorKind]int{
	ErrUnknown:              1,
	ErrInvalidFlag:          2,
	ErrMissingArgument:      2,
	ErrUnknownCommand:       1,
	ErrCommandNotFound:      1,
	ErrUnknownStyle:         2,
	ErrRenderingUnavailable: 1,
	ErrInvalidManifest:      1,
	ErrInvalidConfigKey:     1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
