// Package shellcomplete adapts a Scanner's completion engine to
// github.com/posener/complete's shell-completion protocol, and renders the
// installable script bodies that protocol expects a host to emit for bash,
// zsh, and fish.
package shellcomplete

import (
	"fmt"
	"strings"
)

// Script renders the shell snippet a host prints so a user can install
// completions for the binary at exe, named name. The body is identical in
// shape across shells to the one posener/complete itself expects: a
// "complete -C <exe> <name>" hookup, wrapped per shell as needed.
func Script(shell, exe, name string) (string, error) {
	var b strings.Builder
	switch shell {
	case "bash":
		fmt.Fprintf(&b, "complete -C %s %s\n", exe, name)
	case "zsh":
		b.WriteString("autoload -U +X bashcompinit && bashcompinit\n")
		fmt.Fprintf(&b, "complete -C %s %s\n", exe, name)
	case "fish":
		fmt.Fprintf(&b, "function __complete_%s\n", name)
		b.WriteString("    set -lx COMP_LINE (commandline -cp)\n")
		b.WriteString("    test -z (commandline -ct)\n")
		b.WriteString("    and set COMP_LINE \"$COMP_LINE \"\n")
		fmt.Fprintf(&b, "    %s\n", exe)
		b.WriteString("end\n")
		fmt.Fprintf(&b, "complete -f -c %s -a \"(__complete_%s)\"\n", name, name)
	default:
		return "", fmt.Errorf("shellcomplete: unsupported shell %q", shell)
	}
	return b.String(), nil
}
