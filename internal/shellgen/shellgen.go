// Package shellgen emits profile fragments for interactive shells. Each
// fragment defines one function per alias that checks for the underlying
// tool, forwards arguments unchanged, and prints an install hint when the
// tool is missing. The generated aliases work natively in bash, zsh, or
// fish without going through pal at all.
package shellgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/palshell/pal/internal/registry"
)

// Supported lists the shells a fragment can be generated for.
func Supported() []string {
	return []string{"bash", "zsh", "fish"}
}

// Write generates the profile fragment for the given shell and writes it
// to w. Returns an error for unsupported shells.
func Write(w io.Writer, shell string, reg *registry.Registry) error {
	switch shell {
	case "bash", "zsh":
		writePosix(w, reg)
	case "fish":
		writeFish(w, reg)
	default:
		return fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(Supported(), ", "))
	}
	return nil
}

func writePosix(w io.Writer, reg *registry.Registry) {
	fmt.Fprintln(w, "# pal shell integration; regenerate with `pal init`")
	for _, group := range reg.Groups() {
		fmt.Fprintf(w, "\n# %s\n", group.Tool)
		for _, alias := range group.Aliases {
			fmt.Fprintf(w, "%s() {\n", alias.Name)
			fmt.Fprintf(w, "  if command -v %s >/dev/null 2>&1; then\n", group.Tool)
			fmt.Fprintf(w, "    %s \"$@\"\n", invocation(group.Tool, alias.Args))
			fmt.Fprintln(w, "  else")
			fmt.Fprintf(w, "    echo %s >&2\n", posixQuote(missingMessage(alias.Name, group.Tool)))
			if group.InstallHint != "" {
				fmt.Fprintf(w, "    echo %s >&2\n", posixQuote("install it from "+group.InstallHint))
			}
			fmt.Fprintln(w, "  fi")
			fmt.Fprintln(w, "}")
		}
	}
}

func writeFish(w io.Writer, reg *registry.Registry) {
	fmt.Fprintln(w, "# pal shell integration; regenerate with `pal init`")
	for _, group := range reg.Groups() {
		fmt.Fprintf(w, "\n# %s\n", group.Tool)
		for _, alias := range group.Aliases {
			fmt.Fprintf(w, "function %s\n", alias.Name)
			fmt.Fprintf(w, "    if type -q %s\n", group.Tool)
			fmt.Fprintf(w, "        %s $argv\n", invocation(group.Tool, alias.Args))
			fmt.Fprintln(w, "    else")
			fmt.Fprintf(w, "        echo %s >&2\n", posixQuote(missingMessage(alias.Name, group.Tool)))
			if group.InstallHint != "" {
				fmt.Fprintf(w, "        echo %s >&2\n", posixQuote("install it from "+group.InstallHint))
			}
			fmt.Fprintln(w, "    end")
			fmt.Fprintln(w, "end")
		}
	}
}

func missingMessage(alias, tool string) string {
	return fmt.Sprintf("%s: %s is not installed", alias, tool)
}

// invocation renders the tool and its fixed arguments, quoting arguments
// that need it.
func invocation(tool string, args []string) string {
	parts := []string{tool}
	for _, arg := range args {
		if strings.ContainsAny(arg, " \t\"'$`\\*?[]{}()<>|&;#~") {
			parts = append(parts, posixQuote(arg))
		} else {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, " ")
}

// posixQuote single-quotes a string for POSIX shells (fish accepts the same
// form).
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
