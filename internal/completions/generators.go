package completions

import (
	"fmt"
	"strings"
)

// GenerateBash renders a bash completion function keyed on the words
// typed so far.
func GenerateBash(commands []CommandInfo) string {
	name := rootName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", name)
	fmt.Fprintf(&b, "_%s_completions() {\n", name)
	b.WriteString("    local cur path opts\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    path=\"${COMP_WORDS[*]:1:COMP_CWORD-1}\"\n\n")
	b.WriteString("    case \"$path\" in\n")

	for _, cmd := range commands {
		opts := append([]string{}, cmd.Subcommands...)
		opts = append(opts, longFlagNames(cmd.Flags)...)
		if len(opts) == 0 {
			continue
		}

		fmt.Fprintf(&b, "        \"%s\")\n", strings.Join(cmd.Path[1:], " "))
		fmt.Fprintf(&b, "            opts=\"%s\"\n", strings.Join(opts, " "))
		b.WriteString("            ;;\n")
	}

	b.WriteString("        *)\n")
	b.WriteString("            opts=\"\"\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$opts\" -- \"$cur\"))\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", name, name)

	return b.String()
}

// GenerateZsh renders a zsh completion function using _describe for the
// top-level command list.
func GenerateZsh(commands []CommandInfo) string {
	name := rootName(commands)
	root := FindCommand(commands, []string{name})

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", name)

	fmt.Fprintf(&b, "_%s_commands() {\n", name)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	if root != nil {
		for _, sub := range root.Subcommands {
			summary := ""
			if child := FindCommand(commands, append([]string{name}, sub)); child != nil {
				summary = child.Summary
			}
			fmt.Fprintf(&b, "        '%s:%s'\n", sub, escapeSingleQuotes(summary))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", name)
	b.WriteString("    local curcontext=\"$curcontext\" state line\n")
	b.WriteString("    _arguments -C \\\n")
	fmt.Fprintf(&b, "        '1: :_%s_commands' \\\n", name)
	b.WriteString("        '*::arg:->args'\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", name)

	return b.String()
}

// GenerateFish renders fish complete statements: one per top-level
// command, plus long flags scoped to their subcommand.
func GenerateFish(commands []CommandInfo) string {
	name := rootName(commands)
	root := FindCommand(commands, []string{name})

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", name)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", name)

	if root != nil {
		for _, sub := range root.Subcommands {
			summary := ""
			if child := FindCommand(commands, append([]string{name}, sub)); child != nil {
				summary = child.Summary
			}
			fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s -d '%s'\n",
				name, sub, escapeSingleQuotes(summary))
		}
	}

	for _, cmd := range commands {
		if len(cmd.Path) < 2 {
			continue
		}
		leaf := cmd.Path[len(cmd.Path)-1]
		for _, flag := range longFlagNames(cmd.Flags) {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -l %s -d '%s'\n",
				name, leaf, strings.TrimPrefix(flag, "--"), escapeSingleQuotes(flagDescription(cmd.Flags, flag)))
		}
	}

	return b.String()
}

func longFlagNames(flags []FlagInfo) []string {
	var names []string
	for _, f := range flags {
		for _, n := range f.Names {
			if strings.HasPrefix(n, "--") {
				names = append(names, n)
			}
		}
	}
	return names
}

func flagDescription(flags []FlagInfo, name string) string {
	for _, f := range flags {
		for _, n := range f.Names {
			if n == name {
				return f.Description
			}
		}
	}
	return ""
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "'\\''")
}
