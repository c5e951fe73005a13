package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"go.abhg.dev/argscan"
)

// scanCmd feeds its trailing arguments through the demo spec and prints
// either the typed result or every accumulated diagnostic. It is the
// "regular command" counterpart to runShellCompletion's short-circuit: the
// same demoSpec and ScannerConfig drive both (CompletionConfig is used only
// by the completion path).
type scanCmd struct {
	Tokens []string `arg:"" optional:"" help:"Raw tokens, as they would appear on a command line."`
}

func (cmd *scanCmd) Run(logger *log.Logger) error {
	outcome, err := argscan.ParseArguments(demoSpec(), demoScannerConfig(), cmd.Tokens)
	if err != nil {
		// A non-nil error here means the spec itself is malformed, not
		// that the user's tokens were rejected; that's a programming
		// error in demoSpec, not something a scan of bad input produces.
		return fmt.Errorf("build scanner: %w", err)
	}

	if !outcome.Success {
		logger.Warn("scan failed", "errors", len(outcome.Errors))
		for _, scanErr := range outcome.Errors {
			fmt.Println(argscan.Format(scanErr, argscan.FormatOptions{}))
		}
		return fmt.Errorf("%d error(s) while scanning", len(outcome.Errors))
	}

	logger.Debug("scan succeeded", "flags", len(outcome.Flags), "positionals", len(outcome.Positionals))
	fmt.Printf("flags:       %v\n", outcome.Flags)
	fmt.Printf("positionals: %v\n", outcome.Positionals)
	return nil
}
