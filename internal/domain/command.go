package domain

import "strings"

// RawCommand is one entry of the external command registry. Name is the
// dot-separated hierarchical identifier (e.g. "admin.ban.user"); Children
// holds nested subcommands. The registry owns these values; the renderer
// only reads them for the duration of one invocation.
type RawCommand struct {
	Name     string
	Children []RawCommand
}

// Leaf returns the last segment of the dotted name.
func (c RawCommand) Leaf() string {
	if idx := strings.LastIndex(c.Name, "."); idx >= 0 {
		return c.Name[idx+1:]
	}
	return c.Name
}

// IsNestedUnder reports whether c's name is a strict dotted extension of
// name, i.e. c is already reachable as a descendant of a command called
// name and must not also appear flattened among its siblings.
func (c RawCommand) IsNestedUnder(name string) bool {
	return name != "" && strings.HasPrefix(c.Name, name+".")
}
