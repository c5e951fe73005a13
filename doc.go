// Package argscan is an argument scanner and completion engine for
// command-line interfaces.
//
// Given a declarative [Spec] describing a command's flags and positional
// parameters, and a sequence of raw tokens as they would arrive on a
// command line, a [Scanner] produces either a fully-typed [ParseOutcome]
// or a structured list of [ScanError] diagnostics. The same accumulated
// state can instead be asked to propose shell completions for an
// in-progress final token via [Scanner.ProposeCompletions].
//
// argscan deliberately does not route subcommands, render help text, or
// perform any I/O; it is a pure data transformation over a token sequence.
// Hosts own everything around it: reading argv, picking a subcommand,
// printing errors, and installing shell completion scripts (see
// internal/shellcomplete for one way to wire the last of those up with
// github.com/posener/complete).
package argscan
