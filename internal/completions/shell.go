package completions

import (
	"os"
	"path/filepath"
)

// Shell identifies a completion script dialect.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// DetectShell guesses the user's shell from $SHELL. Defaults to bash.
func DetectShell() Shell {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ShellBash
	}
}

// SourceInstructions returns shell-specific instructions for loading the
// completion script from the user's rc file.
func SourceInstructions(shell Shell, binary string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return `eval "$(` + binary + ` completions ` + string(shell) + `)"`
	case ShellFish:
		return binary + ` completions fish | source`
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}
