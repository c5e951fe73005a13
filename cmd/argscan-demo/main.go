// Command argscan-demo is a minimal host CLI exercising the argscan
// scanner and completion engine end to end: it owns its own routing and
// dispatch (via kong) and delegates only the value-completion for its
// "scan" subcommand's trailing tokens to argscan, exactly the boundary
// spec.md §1 draws between "the surrounding CLI application framework"
// and the scanner/completion core.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/posener/complete"

	"go.abhg.dev/argscan/internal/shellcomplete"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	var cli mainCmd
	parser := kong.Must(&cli,
		kong.Name("argscan-demo"),
		kong.Description("Exercises the argscan scanner and completion engine."),
		kong.Bind(logger),
		kong.UsageOnError(),
	)

	if runShellCompletion(parser) {
		return
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	kctx.FatalIfErrorf(kctx.Run())
}

// runShellCompletion answers the posener/complete protocol directly: when
// invoked with COMP_LINE set (the shape "complete -C argscan-demo ..."
// installs), it writes completions to stdout and reports true so main
// exits without running kong's normal dispatch. It mirrors git-spice's
// own komplete.Run in spirit (detect-then-short-circuit) but is scoped to
// this demo's single "scan" grammar rather than reimplementing kong's
// full flag/positional traversal.
func runShellCompletion(parser *kong.Kong) bool {
	predictor := &shellcomplete.Predictor{
		Spec:             demoSpec(),
		ScannerConfig:    demoScannerConfig(),
		CompletionConfig: demoCompletionConfig(),
	}
	completer := complete.New("argscan-demo", complete.Command{
		Sub: complete.Commands{
			"scan": complete.Command{Args: predictor},
		},
	})
	completer.Out = parser.Stdout
	return completer.Complete()
}

type mainCmd struct {
	Verbose  bool   `short:"v" help:"Enable debug logging"`
	LogLevel string `name:"log-level" env:"ARGSCAN_DEMO_LOG" default:"info" help:"Log level: debug, info, warn, error; defaults to $ARGSCAN_DEMO_LOG"`

	Scan    scanCmd    `cmd:"" help:"Scan raw tokens against the demo spec and print the parsed result."`
	Dump    dumpCmd    `cmd:"" help:"Print the demo spec's flags and positionals."`
	Version versionCmd `cmd:"" help:"Print version information."`
}

type versionCmd struct{}

func (*versionCmd) Run() error {
	fmt.Println("argscan-demo (development build)")
	return nil
}

type dumpCmd struct{}

func (*dumpCmd) Run(w io.Writer) error {
	spec := demoSpec()
	_, err := io.WriteString(w, spec.Describe())
	return err
}

// AfterApply wires the resolved log level into the shared logger and binds
// the writer dumpCmd needs, mirroring git-spice's root command AfterApply
// pattern of adjusting a bound logger based on a verbosity flag before any
// subcommand's Run executes.
func (cmd *mainCmd) AfterApply(kctx *kong.Context, logger *log.Logger) error {
	lvl := log.InfoLevel
	if cmd.Verbose {
		lvl = log.DebugLevel
	} else if parsed, err := log.ParseLevel(cmd.LogLevel); err == nil {
		lvl = parsed
	}
	logger.SetLevel(lvl)

	kctx.BindTo(os.Stdout, (*io.Writer)(nil))
	return nil
}
