package config

import "strings"

// Parse converts raw config lines into a key/value map. Blank lines and
// comments are ignored; inline comments after a value are stripped;
// surrounding double quotes are removed from values.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Quoted values keep everything between the quotes, including '#'.
		// Anything after the closing quote (an inline comment) is dropped.
		if strings.HasPrefix(value, "\"") {
			if end := strings.Index(value[1:], "\""); end >= 0 {
				value = value[1 : end+1]
			} else {
				value = value[1:]
			}
		} else if idx := strings.Index(value, "#"); idx >= 0 {
			value = strings.TrimSpace(value[:idx])
		}

		if key == "" {
			continue
		}

		cfg[key] = value
	}

	return cfg, nil
}
