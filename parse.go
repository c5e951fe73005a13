package argscan

// ParseArguments builds a scanner for spec under config, feeds tokens in
// order, and finalizes in one call. It is a convenience for hosts that
// already have a complete token slice; hosts that need to interleave
// feeding with completion (a REPL, a shell completer) should use
// NewScanner and Scanner.Next directly instead.
//
// Unlike amterp-ra's single-entry parse, which stops at the first error,
// this always finalizes and accumulates the full error list, per spec §3's
// "an error emitted during next does not abort scanning".
func ParseArguments(spec *Spec, config ScannerConfig, tokens []string) (ParseOutcome, error) {
	s, err := NewScanner(spec, config)
	if err != nil {
		return ParseOutcome{}, err
	}
	for _, tok := range tokens {
		s.Next(tok)
	}
	return s.ParseArguments(), nil
}
