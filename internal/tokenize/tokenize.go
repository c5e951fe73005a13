// Package tokenize splits a single raw command line into the argv-shaped
// token list argscan's Scanner expects, for hosts that hold one string
// (a git-config shorthand value, a REPL line) instead of pre-split
// os.Args-style arguments.
package tokenize

import "github.com/buildkite/shellwords"

// SplitLine splits line using POSIX shell word-splitting rules: quoting,
// backslash escapes, and whitespace runs are handled the way a shell would
// before exec'ing a command. The scanner itself never sees anything but
// the result; it has no notion of a "line" at all.
func SplitLine(line string) ([]string, error) {
	return shellwords.SplitPosix(line)
}
