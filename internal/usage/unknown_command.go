package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when CLI arguments do not name a cmdtree
// command. Suggestions, when present, are appended to the message.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("cmdtree: '%s' is not a cmdtree command. See 'cmdtree --help'.", command)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\n\nDid you mean one of these?\n   %s", strings.Join(suggestions, "\n   "))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
