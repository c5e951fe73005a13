package main

import (
	"fmt"
	"strconv"

	"go.abhg.dev/argscan"
)

// demoSpec is the grammar exercised end-to-end by this binary: an enum
// flag, a parsed integer flag, a counter flag, a boolean flag, and a
// variadic positional array. It exists
// purely to give the scanner and completion engine something concrete to
// run against; the grammar itself is not the point.
func demoSpec() *argscan.Spec {
	return &argscan.Spec{
		Flags: []argscan.FlagSpec{
			{
				ExternalName: "mode",
				Brief:        "Processing mode",
				Kind:         argscan.KindEnum,
				Values:       []string{"foo", "bar", "baz"},
				Default:      []string{"foo"},
			},
			{
				ExternalName: "count",
				Brief:        "Number of times to repeat",
				Kind:         argscan.KindParsed,
				Parse:        parseInt,
				Optional:     true,
			},
			{
				ExternalName: "verbose",
				Brief:        "Increase verbosity",
				Kind:         argscan.KindCounter,
			},
			{
				ExternalName: "forceBuild",
				Brief:        "Rebuild even if nothing changed",
				Kind:         argscan.KindBoolean,
			},
		},
		Aliases: []argscan.Alias{
			{Char: 'm', ExternalName: "mode"},
			{Char: 'c', ExternalName: "count"},
			{Char: 'v', ExternalName: "verbose"},
			{Char: 'f', ExternalName: "forceBuild"},
		},
		Positional: argscan.PositionalSpec{
			Array: &argscan.PositionalParam{Placeholder: "file", Parse: parseFile},
		},
	}
}

// demoScannerConfig mirrors the scenarios walked through in spec §8: kebab
// aliasing for camelCase names, the escape sequence enabled, and the
// threshold/weights used throughout that section's worked examples.
func demoScannerConfig() argscan.ScannerConfig {
	return argscan.ScannerConfig{
		CaseStyle:                   argscan.CaseAllowKebabForCamel,
		AllowArgumentEscapeSequence: true,
		DistanceOptions: argscan.DistanceOptions{
			Threshold: 7,
			Weights:   argscan.Weights{Insertion: 1, Deletion: 3, Substitution: 2, Transposition: 0},
		},
	}
}

func demoCompletionConfig() argscan.CompletionConfig {
	return argscan.CompletionConfig{IncludeAliases: true}
}

func parseInt(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("expected an integer: %w", err)
	}
	return n, nil
}

func parseFile(raw string) (any, error) {
	if raw == "" {
		return nil, fmt.Errorf("file name must not be empty")
	}
	return raw, nil
}
