package argscan

import (
	"strconv"
	"strings"
)

type accumulatorKind int

const (
	accUnset accumulatorKind = iota
	accPending
	accSingleSet
	accMultiSet
)

// rawEntry pairs a raw string with the order it was recorded in, so
// finalization can report parse/enum errors in original token order even
// though parsing itself is deferred (spec §9, "Deferred value parsing").
type rawEntry struct {
	seq   int
	value string
}

type flagAccumulator struct {
	kind accumulatorKind

	single rawEntry
	multi  []rawEntry

	boolExplicit bool
	boolValue    bool

	counterValue int
}

type pendingState struct {
	flag   *FlagSpec
	origin string
}

// Scanner is the stateful engine described in spec §3/§4.4. Construct one
// with NewScanner, feed it tokens with Next in order, then finalize exactly
// once with ParseArguments or ProposeCompletions. Re-feeding a Scanner
// after finalization is not defined.
type Scanner struct {
	spec   *Spec
	model  *Model
	config ScannerConfig

	accum       map[string]*flagAccumulator
	positionals []rawEntry
	escaped     bool
	pending     *pendingState
	errs        []ScanError
	seq         int
}

// NewScanner validates spec against config and returns a ready-to-feed
// Scanner. The returned error is a spec-construction problem (duplicate
// flag names, a missing Parse function, etc.), never a user-input problem.
func NewScanner(spec *Spec, config ScannerConfig) (*Scanner, error) {
	model, err := NewModel(spec, config)
	if err != nil {
		return nil, err
	}
	s := &Scanner{
		spec:   spec,
		model:  model,
		config: config,
		accum:  make(map[string]*flagAccumulator, len(spec.Flags)),
	}
	for _, f := range spec.Flags {
		s.accum[f.ExternalName] = &flagAccumulator{}
	}
	return s, nil
}

// Next consumes one raw token, mutating the scanner's accumulated state.
// Errors discovered here do not abort scanning; they accumulate and are
// returned, in token order, by a later ParseArguments call.
func (s *Scanner) Next(token string) {
	seq := s.seq
	s.seq++

	if s.pending != nil {
		flag := s.pending.flag
		if !s.escaped && isFlagShaped(token) {
			if flag.InferEmpty {
				s.setFlagValue(flag, "", seq)
				s.pending = nil
			} else {
				s.errs = append(s.errs, UnsatisfiedFlagError{
					ExternalName: flag.ExternalName,
					NextFlagName: s.describeNextFlagName(token),
				})
				s.pending = nil
			}
			// fall through: the current token is processed fresh below.
		} else {
			s.setFlagValue(flag, token, seq)
			s.pending = nil
			return
		}
	}

	ct := classifyToken(token, s.config, s.escaped, s.model)
	switch ct.kind {
	case tokEscape:
		s.escaped = true
	case tokLongFlag:
		s.handleLongFlag(ct, seq)
	case tokNegatedLongFlag:
		s.handleNegatedLongFlag(ct)
	case tokShortCluster:
		s.handleShortCluster(ct, seq)
	case tokPositional:
		s.handlePositional(ct.name, seq)
	}
}

// describeNextFlagName resolves the interrupting token's external flag
// name for an UnsatisfiedFlagError, falling back to its raw wire text when
// it doesn't resolve to a known flag, and to "" for the escape sequence
// itself (which has no flag name at all).
func (s *Scanner) describeNextFlagName(token string) string {
	ct := classifyToken(token, s.config, false, s.model)
	switch ct.kind {
	case tokEscape:
		return ""
	case tokLongFlag:
		if f, ok := s.model.byWireName[ct.name]; ok {
			return f.ExternalName
		}
		return ct.name
	case tokNegatedLongFlag:
		return ct.negation.ExternalName
	case tokShortCluster:
		runes := []rune(ct.name)
		if len(runes) > 0 {
			if target, ok := s.model.aliasTarget[runes[0]]; ok {
				return target
			}
		}
		return ct.name
	default:
		return token
	}
}

func (s *Scanner) handleLongFlag(ct classifiedToken, seq int) {
	flag, ok := s.model.byWireName[ct.name]
	if !ok {
		s.errs = append(s.errs, FlagNotFoundError{
			Input:       ct.name,
			Corrections: s.model.suggestCorrections(ct.name, s.config.DistanceOptions, false),
		})
		return
	}
	acc := s.accum[flag.ExternalName]
	switch flag.Kind {
	case KindBoolean:
		s.setBoolean(flag, acc, ct.valueText, ct.hasValue)
	case KindCounter:
		s.setCounter(flag, acc, ct.valueText, ct.hasValue)
	case KindParsed, KindEnum:
		if ct.hasValue {
			s.setFlagValue(flag, ct.valueText, seq)
		} else {
			s.pending = &pendingState{flag: flag, origin: "--" + ct.name}
		}
	}
}

// handleNegatedLongFlag never raises a duplicate-set error, unlike the
// positive long-flag handlers: negating an already-set flag (by a prior
// positive or negated token) always succeeds and simply overwrites it to
// false, so that the last setter of either polarity always determines the
// final value without contributing an error of its own.
func (s *Scanner) handleNegatedLongFlag(ct classifiedToken) {
	flag := ct.negation
	if ct.hasValue && ct.valueText != "" {
		s.errs = append(s.errs, InvalidNegatedFlagSyntaxError{
			ExternalFlagName: flag.ExternalName,
			ValueText:        ct.valueText,
		})
		return
	}
	acc := s.accum[flag.ExternalName]
	acc.boolExplicit = true
	acc.boolValue = false
}

func (s *Scanner) handleShortCluster(ct classifiedToken, seq int) {
	runes := []rune(ct.name)
	for i, ch := range runes {
		isLast := i == len(runes)-1

		targetName, known := s.model.aliasTarget[ch]
		if !known {
			s.errs = append(s.errs, AliasNotFoundError{Input: ch})
			continue
		}
		flag, ok := s.model.byExternalName[targetName]
		if !ok {
			s.errs = append(s.errs, FlagNotFoundError{Input: targetName, AliasName: &ch})
			continue
		}
		acc := s.accum[flag.ExternalName]

		switch flag.Kind {
		case KindBoolean:
			if isLast && ct.hasValue {
				s.setBoolean(flag, acc, ct.valueText, true)
			} else {
				s.setBoolean(flag, acc, "", false)
			}
		case KindCounter:
			if isLast && ct.hasValue {
				s.setCounter(flag, acc, ct.valueText, true)
			} else {
				s.setCounter(flag, acc, "", false)
			}
		case KindParsed, KindEnum:
			if !isLast {
				s.errs = append(s.errs, UnsatisfiedFlagError{ExternalName: flag.ExternalName})
				return
			}
			if ct.hasValue {
				s.setFlagValue(flag, ct.valueText, seq)
			} else {
				s.pending = &pendingState{flag: flag, origin: "-" + ct.name}
			}
		}
	}
}

func (s *Scanner) handlePositional(raw string, seq int) {
	pos := &s.spec.Positional
	if pos.isArray() {
		if pos.Max != nil && len(s.positionals) >= *pos.Max {
			s.errs = append(s.errs, UnexpectedPositionalError{ExpectedCount: *pos.Max, Input: raw})
			return
		}
		s.positionals = append(s.positionals, rawEntry{seq, raw})
		return
	}
	if len(s.positionals) < len(pos.Tuple) {
		s.positionals = append(s.positionals, rawEntry{seq, raw})
		return
	}
	s.errs = append(s.errs, UnexpectedPositionalError{ExpectedCount: len(pos.Tuple), Input: raw})
}

// setFlagValue records a raw value for a parsed or enum flag, whether it
// arrived inline (--flag=x), as a separate Pending token, or split off a
// separator. Parsing itself is always deferred to finalization.
func (s *Scanner) setFlagValue(flag *FlagSpec, raw string, seq int) {
	acc := s.accum[flag.ExternalName]
	if flag.Variadic.enabled() {
		if flag.Variadic.Separator != 0 {
			for _, part := range strings.Split(raw, string(flag.Variadic.Separator)) {
				acc.multi = append(acc.multi, rawEntry{seq, part})
			}
		} else {
			acc.multi = append(acc.multi, rawEntry{seq, raw})
		}
		acc.kind = accMultiSet
		return
	}
	if acc.kind == accSingleSet {
		s.errs = append(s.errs, UnexpectedFlagError{
			ExternalName:  flag.ExternalName,
			PreviousInput: acc.single.value,
			Input:         raw,
		})
		return
	}
	acc.kind = accSingleSet
	acc.single = rawEntry{seq, raw}
}

func (s *Scanner) setBoolean(flag *FlagSpec, acc *flagAccumulator, valueText string, hasValue bool) {
	if hasValue {
		v, err := parseBoolText(valueText)
		if err != nil {
			s.errs = append(s.errs, ArgumentParseError{
				ExternalFlagNameOrPlaceholder: flag.ExternalName,
				Input:                         valueText,
				Exception:                     ParseException{Message: err.Error(), Cause: err},
			})
			return
		}
		if acc.boolExplicit {
			s.errs = append(s.errs, UnexpectedFlagError{ExternalName: flag.ExternalName, PreviousInput: "true", Input: "true"})
		}
		acc.boolExplicit = true
		acc.boolValue = v
		return
	}
	if acc.boolExplicit {
		s.errs = append(s.errs, UnexpectedFlagError{ExternalName: flag.ExternalName, PreviousInput: "true", Input: "true"})
	}
	acc.boolExplicit = true
	acc.boolValue = true
}

func (s *Scanner) setCounter(flag *FlagSpec, acc *flagAccumulator, valueText string, hasValue bool) {
	if hasValue {
		n, err := strconv.Atoi(valueText)
		if err != nil || n < 0 {
			s.errs = append(s.errs, ArgumentParseError{
				ExternalFlagNameOrPlaceholder: flag.ExternalName,
				Input:                         valueText,
				Exception:                     ParseException{Message: "expected a non-negative integer"},
			})
			return
		}
		acc.counterValue = n
		return
	}
	acc.counterValue++
}

// parseBoolText implements the boolean value grammar from spec §6.
func parseBoolText(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "t", "1":
		return true, nil
	case "false", "no", "n", "f", "0":
		return false, nil
	default:
		return false, &boolParseError{s}
	}
}

type boolParseError struct{ text string }

func (e *boolParseError) Error() string {
	return "expected one of true|yes|y|t|1|false|no|n|f|0, got " + strconv.Quote(e.text)
}
