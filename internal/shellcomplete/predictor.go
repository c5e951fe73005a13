package shellcomplete

import (
	"github.com/posener/complete"

	"go.abhg.dev/argscan"
)

// Predictor adapts a Spec to complete.Predictor, so it can be plugged in as
// a posener/complete Args predictor or a named flag predictor exactly like
// a custom CompleterFunc would be, but driven by a shell's completion
// protocol instead of a host calling ProposeCompletions directly.
type Predictor struct {
	Spec             *argscan.Spec
	ScannerConfig    argscan.ScannerConfig
	CompletionConfig argscan.CompletionConfig
}

var _ complete.Predictor = (*Predictor)(nil)

// Predict feeds every already-completed token through a fresh Scanner and
// proposes completions for the in-progress last one. A fresh Scanner is
// built per call: Scanner holds per-invocation accumulator state, and
// posener/complete calls Predict once per completion request with the full
// token history available each time, so there is nothing to carry over
// between calls.
func (p *Predictor) Predict(args complete.Args) []string {
	sc, err := argscan.NewScanner(p.Spec, p.ScannerConfig)
	if err != nil {
		complete.Log("shellcomplete: invalid spec: %v", err)
		return nil
	}
	for _, tok := range args.Completed {
		sc.Next(tok)
	}

	completions, scanErr := sc.ProposeCompletions(args.Last, p.CompletionConfig)
	if scanErr != nil {
		complete.Log("shellcomplete: %v", scanErr)
		return nil
	}

	out := make([]string, len(completions))
	for i, c := range completions {
		out[i] = c.Completion
	}
	return out
}
