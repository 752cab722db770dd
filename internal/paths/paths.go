package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "cmdtree"

// AppDataDir returns the application data directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the user config file (~/.cmdtreerc).
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cmdtreerc"), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/cmdtree/cmdtree.log
//   - Linux: $XDG_CONFIG_HOME/cmdtree/cmdtree.log or ~/.config/cmdtree/cmdtree.log
//   - Windows: %AppData%\cmdtree\cmdtree.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdtree.log")
}
