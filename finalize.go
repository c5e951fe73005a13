package argscan

import "sort"

// ParseOutcome is the result of finalizing a Scanner.
type ParseOutcome struct {
	Success bool
	// Flags maps each flag's external name to its typed value: bool for
	// KindBoolean, int for KindCounter, the ParseFunc's return value for
	// KindParsed and the matched string for KindEnum (or []any of those
	// for variadic flags).
	Flags map[string]any
	// Positionals holds the typed positional values in arrival order.
	Positionals []any
	Errors      []ScanError
}

// ParseArguments finalizes the scanner: it closes any still-Pending flag,
// applies defaults and checks required flags and positionals, runs every
// deferred parse/enum validation, and returns either a typed result or the
// accumulated error list (spec §4.4 "Finalization").
func (s *Scanner) ParseArguments() ParseOutcome {
	duringNext := s.errs

	var phase1 []ScanError
	if s.pending != nil {
		phase1 = append(phase1, UnsatisfiedFlagError{ExternalName: s.pending.flag.ExternalName})
		s.pending = nil
	}

	positionalValues, positionalErrs := s.finalizePositionals()
	unsatisfiedFlags := s.applyFlagDefaultsAndRequired()
	flagValues, flagErrs := s.parseFlagValues()

	sort.SliceStable(flagErrs, func(i, j int) bool { return flagErrs[i].seq < flagErrs[j].seq })

	var errs []ScanError
	errs = append(errs, duringNext...)
	errs = append(errs, phase1...)
	errs = append(errs, positionalErrs...)
	errs = append(errs, unsatisfiedFlags...)
	for _, e := range flagErrs {
		errs = append(errs, e.err)
	}

	if len(errs) > 0 {
		return ParseOutcome{Success: false, Errors: errs}
	}
	return ParseOutcome{Success: true, Flags: flagValues, Positionals: positionalValues}
}

// finalizePositionals walks positional slots in arrival order, interleaving
// unsatisfied-slot and parse-failure errors exactly as they occur slot by
// slot (rather than batching every unsatisfied error before every parse
// error): a filled slot that fails to parse reports its ArgumentParseError
// immediately, before a later unfilled required slot reports its own
// UnsatisfiedPositionalError.
func (s *Scanner) finalizePositionals() (values []any, errs []ScanError) {
	pos := &s.spec.Positional
	if pos.isArray() {
		min := 0
		if pos.Min != nil {
			min = *pos.Min
		}
		if len(s.positionals) < min {
			limit := [2]int{min, len(s.positionals)}
			errs = append(errs, UnsatisfiedPositionalError{Placeholder: pos.Array.Placeholder, Limit: &limit})
		}
		for _, e := range s.positionals {
			if pos.Array.Parse == nil {
				values = append(values, e.value)
				continue
			}
			v, perr := parseRaw(pos.Array.Parse, false, pos.Array.Placeholder, e)
			if perr != nil {
				errs = append(errs, perr.err)
				continue
			}
			values = append(values, v)
		}
		return values, errs
	}

	for i, slot := range pos.Tuple {
		if i < len(s.positionals) {
			if slot.Parse == nil {
				values = append(values, s.positionals[i].value)
				continue
			}
			v, perr := parseRaw(slot.Parse, false, slot.Placeholder, s.positionals[i])
			if perr != nil {
				errs = append(errs, perr.err)
				continue
			}
			values = append(values, v)
			continue
		}
		if slot.Default != nil {
			entry := rawEntry{value: *slot.Default}
			if slot.Parse == nil {
				values = append(values, entry.value)
				continue
			}
			v, perr := parseRaw(slot.Parse, false, slot.Placeholder, entry)
			if perr != nil {
				errs = append(errs, perr.err)
				continue
			}
			values = append(values, v)
			continue
		}
		if !slot.Optional {
			errs = append(errs, UnsatisfiedPositionalError{Placeholder: slot.Placeholder})
		}
	}
	return values, errs
}

// applyFlagDefaultsAndRequired runs phase 2 of finalization for flags.
// Boolean and counter flags are always implicitly satisfied (they default
// to false and zero respectively); only parsed and enum flags can be
// "required" in the sense of producing an UnsatisfiedFlagError here.
func (s *Scanner) applyFlagDefaultsAndRequired() []ScanError {
	var unsatisfied []ScanError
	for _, name := range s.model.order {
		flag := s.model.byExternalName[name]
		acc := s.accum[name]

		switch flag.Kind {
		case KindBoolean, KindCounter:
			continue
		}

		if acc.kind == accSingleSet || acc.kind == accMultiSet {
			continue
		}
		if flag.Default != nil {
			for _, d := range flag.Default {
				acc.multi = append(acc.multi, rawEntry{seq: s.nextDefaultSeq(), value: d})
			}
			if flag.Variadic.enabled() {
				acc.kind = accMultiSet
			} else if len(acc.multi) > 0 {
				acc.kind = accSingleSet
				acc.single = acc.multi[len(acc.multi)-1]
				acc.multi = nil
			}
			continue
		}
		if !flag.Optional {
			unsatisfied = append(unsatisfied, UnsatisfiedFlagError{ExternalName: flag.ExternalName})
		}
	}
	return unsatisfied
}

func (s *Scanner) nextDefaultSeq() int {
	s.seq++
	return s.seq
}

type scanErrorSeq struct {
	seq int
	err ScanError
}

// parseFlagValues runs phase 3 of finalization: the deferred parse/enum
// pipeline over every recorded raw value.
func (s *Scanner) parseFlagValues() (values map[string]any, errs []scanErrorSeq) {
	values = make(map[string]any, len(s.model.order))
	for _, name := range s.model.order {
		flag := s.model.byExternalName[name]
		acc := s.accum[name]

		switch flag.Kind {
		case KindBoolean:
			values[name] = acc.boolValue
		case KindCounter:
			values[name] = acc.counterValue
		case KindEnum:
			if flag.Variadic.enabled() {
				var out []any
				for _, e := range acc.multi {
					if v, ok := validateEnum(flag, e, &errs); ok {
						out = append(out, v)
					}
				}
				values[name] = out
			} else if acc.kind == accSingleSet {
				if v, ok := validateEnum(flag, acc.single, &errs); ok {
					values[name] = v
				}
			}
		case KindParsed:
			if flag.Variadic.enabled() {
				var out []any
				for _, e := range acc.multi {
					if v, perr := parseRaw(flag.Parse, flag.InferEmpty, flag.ExternalName, e); perr == nil {
						out = append(out, v)
					} else {
						errs = append(errs, scanErrorSeq{e.seq, perr.err})
					}
				}
				values[name] = out
			} else if acc.kind == accSingleSet {
				if v, perr := parseRaw(flag.Parse, flag.InferEmpty, flag.ExternalName, acc.single); perr == nil {
					values[name] = v
				} else {
					errs = append(errs, scanErrorSeq{acc.single.seq, perr.err})
				}
			}
		}
	}
	return values, errs
}

type parseErr struct{ err ScanError }

func parseRaw(parse ParseFunc, inferEmpty bool, nameOrPlaceholder string, e rawEntry) (any, *parseErr) {
	if inferEmpty && e.value == "" {
		return "", nil
	}
	v, err := parse(e.value)
	if err != nil {
		return nil, &parseErr{ArgumentParseError{
			ExternalFlagNameOrPlaceholder: nameOrPlaceholder,
			Input:                         e.value,
			Exception:                     ParseException{Message: err.Error(), Cause: err},
		}}
	}
	return v, nil
}

func validateEnum(flag *FlagSpec, e rawEntry, errs *[]scanErrorSeq) (string, bool) {
	if flag.InferEmpty && e.value == "" {
		return "", true
	}
	for _, v := range flag.Values {
		if v == e.value {
			return e.value, true
		}
	}
	*errs = append(*errs, scanErrorSeq{e.seq, EnumValidationError{
		ExternalFlagName: flag.ExternalName,
		Input:            e.value,
		Values:           flag.Values,
	}})
	return "", false
}
