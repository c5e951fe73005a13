package argscan

import "strings"

// CompletionKind discriminates the two completion shapes a host can render
// differently (e.g. styling flag names versus literal values).
type CompletionKind int

const (
	CompletionFlag CompletionKind = iota
	CompletionValue
)

func (k CompletionKind) String() string {
	if k == CompletionValue {
		return "argument:value"
	}
	return "argument:flag"
}

// Completion is one proposed completion for an in-progress partial token.
type Completion struct {
	Kind       CompletionKind
	Completion string
	Brief      string
}

// ProposeCompletions finalizes completion mode for the scanner's current
// accumulated state: given a partial (possibly empty) final token, it
// returns every completion a shell would want to offer. It is a sibling to
// ParseArguments, not a precursor to it; call at most one of the two on a
// given Scanner (spec §4.4, "Lifecycle").
func (s *Scanner) ProposeCompletions(partial string, cfg CompletionConfig) ([]Completion, ScanError) {
	var out []Completion
	seen := make(map[string]bool)
	add := func(c Completion) {
		key := c.Kind.String() + "\x00" + c.Completion
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, c)
	}

	if s.config.AllowArgumentEscapeSequence && strings.HasPrefix("--", partial) {
		add(Completion{Kind: CompletionFlag, Completion: "--", Brief: "All subsequent inputs should be interpreted as arguments"})
	}

	if s.pending != nil {
		results, err := s.proposePendingValue(s.pending.flag, partial)
		if err != nil {
			return nil, err
		}
		for _, c := range results {
			add(c)
		}
		return out, nil
	}

	if guardErr := s.completionGuardError(partial); guardErr != nil {
		return nil, guardErr
	}

	for _, c := range s.proposeFlagPositional(partial, cfg) {
		add(c)
	}
	return out, nil
}

func (s *Scanner) proposePendingValue(flag *FlagSpec, partial string) ([]Completion, ScanError) {
	if flag.Variadic.Separator != 0 {
		prefix := ""
		chunk := partial
		if idx := strings.LastIndexByte(partial, byte(flag.Variadic.Separator)); idx >= 0 {
			prefix, chunk = partial[:idx+1], partial[idx+1:]
		}
		values := completerValues(flag, chunk)
		out := make([]Completion, 0, len(values))
		for _, v := range values {
			out = append(out, Completion{Kind: CompletionValue, Completion: prefix + v, Brief: flag.Brief})
		}
		return out, nil
	}

	values := completerValues(flag, partial)
	out := make([]Completion, 0, len(values))
	for _, v := range values {
		out = append(out, Completion{Kind: CompletionValue, Completion: v, Brief: flag.Brief})
	}
	return out, nil
}

func completerValues(flag *FlagSpec, chunk string) []string {
	if flag.Complete != nil {
		return flag.Complete(chunk)
	}
	if flag.Kind == KindEnum {
		var out []string
		for _, v := range flag.Values {
			if strings.HasPrefix(v, chunk) {
				out = append(out, v)
			}
		}
		return out
	}
	return nil
}

// completionGuardError surfaces, ahead of proposal generation, the two
// errors spec §4.4 calls out as terminating completion outright rather
// than contributing an empty proposal list: re-specifying an
// already-satisfied non-variadic flag, and an unknown alias character.
func (s *Scanner) completionGuardError(partial string) ScanError {
	if strings.HasPrefix(partial, "--") {
		name, _, _ := strings.Cut(partial[2:], "=")
		if flag, ok := s.model.byWireName[name]; ok && !s.flagAvailableForCompletion(flag) {
			acc := s.accum[flag.ExternalName]
			return UnexpectedFlagError{ExternalName: flag.ExternalName, PreviousInput: acc.single.value, Input: partial}
		}
		return nil
	}
	if strings.HasPrefix(partial, "-") && len(partial) >= 2 {
		for _, ch := range partial[1:] {
			if _, known := s.model.aliasTarget[ch]; !known {
				return AliasNotFoundError{Input: ch}
			}
		}
	}
	return nil
}

func (s *Scanner) flagAvailableForCompletion(flag *FlagSpec) bool {
	acc := s.accum[flag.ExternalName]
	switch flag.Kind {
	case KindBoolean:
		return !acc.boolExplicit
	case KindCounter:
		return true
	default:
		if flag.Variadic.enabled() {
			return true
		}
		return acc.kind != accSingleSet
	}
}

func (s *Scanner) proposeFlagPositional(partial string, cfg CompletionConfig) []Completion {
	looksLikeFlag := partial == "" || partial == "-" || strings.HasPrefix(partial, "--")
	if looksLikeFlag {
		return s.proposeLongFlags(partial, cfg)
	}
	if strings.HasPrefix(partial, "-") && len(partial) >= 2 {
		return s.proposeClusterContinuation(partial, cfg)
	}
	return s.proposePositionalValue(partial)
}

func (s *Scanner) proposeLongFlags(partial string, cfg CompletionConfig) []Completion {
	stripped := strings.TrimPrefix(partial, "--")
	var out []Completion
	for _, name := range s.model.order {
		flag := s.model.byExternalName[name]
		if flag.Hidden && !cfg.IncludeHiddenRoutes {
			continue
		}
		if !s.flagAvailableForCompletion(flag) {
			continue
		}
		wire := s.model.displayWireName(flag)
		if strings.HasPrefix(wire, stripped) {
			out = append(out, Completion{Kind: CompletionFlag, Completion: "--" + wire, Brief: flag.Brief})
		}
	}
	if cfg.IncludeAliases {
		for _, ch := range s.model.aliasOrder {
			flag, ok := s.model.byExternalName[s.model.aliasTarget[ch]]
			if !ok || (flag.Hidden && !cfg.IncludeHiddenRoutes) || !s.flagAvailableForCompletion(flag) {
				continue
			}
			out = append(out, Completion{Kind: CompletionFlag, Completion: "-" + string(ch), Brief: flag.Brief})
		}
	}
	return out
}

// proposeClusterContinuation handles a partial like "-b" where all but the
// last character must be known aliases of existing flags: it offers
// closing the cluster on the trailing alias as-is, plus every other
// available alias appended as a further continuation (spec §4.4 scenario
// "completion mid-cluster").
func (s *Scanner) proposeClusterContinuation(partial string, cfg CompletionConfig) []Completion {
	rest := []rune(partial[1:])
	if len(rest) == 0 {
		return nil
	}
	for _, ch := range rest[:len(rest)-1] {
		target, known := s.model.aliasTarget[ch]
		if !known {
			return nil
		}
		if _, exists := s.model.byExternalName[target]; !exists {
			return nil
		}
	}

	var out []Completion
	lastCh := rest[len(rest)-1]
	if target, known := s.model.aliasTarget[lastCh]; known {
		if flag, exists := s.model.byExternalName[target]; exists {
			out = append(out, Completion{Kind: CompletionFlag, Completion: partial, Brief: flag.Brief})
		}
	}

	typed := make(map[rune]bool, len(rest))
	for _, ch := range rest {
		typed[ch] = true
	}
	for _, ch := range s.model.aliasOrder {
		if typed[ch] {
			continue
		}
		flag, ok := s.model.byExternalName[s.model.aliasTarget[ch]]
		if !ok || (flag.Hidden && !cfg.IncludeHiddenRoutes) || !s.flagAvailableForCompletion(flag) {
			continue
		}
		out = append(out, Completion{Kind: CompletionFlag, Completion: partial + string(ch), Brief: flag.Brief})
	}
	return out
}

func (s *Scanner) proposePositionalValue(partial string) []Completion {
	completer, brief, ok := s.currentPositionalCompleter()
	if !ok {
		return nil
	}
	values := completer(partial)
	out := make([]Completion, 0, len(values))
	for _, v := range values {
		out = append(out, Completion{Kind: CompletionValue, Completion: v, Brief: brief})
	}
	return out
}

func (s *Scanner) currentPositionalCompleter() (CompleterFunc, string, bool) {
	pos := &s.spec.Positional
	if pos.isArray() {
		if pos.Array.Complete == nil {
			return nil, "", false
		}
		if pos.Max != nil && len(s.positionals) >= *pos.Max {
			return nil, "", false
		}
		return pos.Array.Complete, pos.Array.Placeholder, true
	}
	idx := len(s.positionals)
	if idx >= len(pos.Tuple) || pos.Tuple[idx].Complete == nil {
		return nil, "", false
	}
	return pos.Tuple[idx].Complete, pos.Tuple[idx].Placeholder, true
}
