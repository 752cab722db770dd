package config

import "strings"

// Set updates key in place, preserving comments and unrelated lines.
// Returns the updated lines and whether the key already existed.
func Set(lines []string, key, value string) ([]string, bool) {
	// Values with spaces or '#' must be quoted or Parse would split them.
	if (strings.Contains(value, " ") || strings.Contains(value, "#")) && !strings.HasPrefix(value, "\"") {
		value = "\"" + value + "\""
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			// Check for inline comment after the value and preserve it
			if comment := inlineComment(parts[1]); comment != "" {
				lines[i] = key + "=" + value + " " + comment
			} else {
				lines[i] = key + "=" + value
			}
			return lines, true
		}
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// inlineComment returns the trailing "# ..." comment of a value, skipping
// any '#' inside a quoted value.
func inlineComment(value string) string {
	rest := strings.TrimSpace(value)

	if strings.HasPrefix(rest, "\"") {
		end := strings.Index(rest[1:], "\"")
		if end < 0 {
			return ""
		}
		rest = rest[end+2:]
	}

	idx := strings.Index(rest, "#")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(rest[idx:])
}

// Unset removes key from the lines. Returns the remaining lines and
// whether anything was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			out = append(out, line)
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}
