package argscan

import (
	"fmt"
	"unicode"
)

// Model is the derived, read-only lookup structure built once from a Spec
// and ScannerConfig (spec §4.2). It never mutates after construction; all
// scanner mutation lives in per-flag accumulators kept alongside it.
type Model struct {
	spec   *Spec
	config ScannerConfig

	order          []string // external names, declaration order
	byExternalName map[string]*FlagSpec
	byWireName     map[string]*FlagSpec
	negationOf     map[string]*FlagSpec // exact negation token text -> flag

	aliasOrder  []rune
	aliasTarget map[rune]string // alias char -> external flag name (target may not exist)
	aliasOf     map[string]rune // external name -> its first-declared alias, if any
}

// NewModel validates spec and derives its lookup tables. A non-nil error
// indicates a malformed spec (a programming error, not a user input error).
func NewModel(spec *Spec, config ScannerConfig) (*Model, error) {
	m := &Model{
		spec:           spec,
		config:         config,
		byExternalName: make(map[string]*FlagSpec, len(spec.Flags)),
		byWireName:     make(map[string]*FlagSpec, len(spec.Flags)),
		negationOf:     make(map[string]*FlagSpec),
		aliasTarget:    make(map[rune]string, len(spec.Aliases)),
		aliasOf:        make(map[string]rune, len(spec.Aliases)),
	}

	for i := range spec.Flags {
		f := &spec.Flags[i]
		if f.ExternalName == "" {
			return nil, fmt.Errorf("argscan: flag at index %d has an empty external name", i)
		}
		if _, dup := m.byExternalName[f.ExternalName]; dup {
			return nil, fmt.Errorf("argscan: duplicate flag name %q", f.ExternalName)
		}
		if f.Kind == KindParsed && f.Parse == nil {
			return nil, fmt.Errorf("argscan: parsed flag %q has no Parse function", f.ExternalName)
		}
		if f.Kind == KindEnum && len(f.Values) == 0 {
			return nil, fmt.Errorf("argscan: enum flag %q declares no Values", f.ExternalName)
		}

		m.byExternalName[f.ExternalName] = f
		m.order = append(m.order, f.ExternalName)

		m.byWireName[f.ExternalName] = f
		if config.CaseStyle == CaseAllowKebabForCamel {
			if kebab := toKebab(f.ExternalName); kebab != f.ExternalName {
				m.byWireName[kebab] = f
			}
		}

		if f.Kind == KindBoolean {
			m.negationOf["no"+capitalize(f.ExternalName)] = f
			if config.CaseStyle == CaseAllowKebabForCamel {
				m.negationOf["no-"+toKebab(f.ExternalName)] = f
			}
		}
	}

	for _, alias := range spec.Aliases {
		if _, dup := m.aliasTarget[alias.Char]; dup {
			return nil, fmt.Errorf("argscan: duplicate alias %q", alias.Char)
		}
		m.aliasOrder = append(m.aliasOrder, alias.Char)
		m.aliasTarget[alias.Char] = alias.ExternalName
		if _, has := m.aliasOf[alias.ExternalName]; !has {
			m.aliasOf[alias.ExternalName] = alias.Char
		}
	}

	return m, nil
}

// displayWireName is the form ProposeCompletions renders for a flag: the
// kebab form under CaseAllowKebabForCamel, the external name otherwise.
func (m *Model) displayWireName(f *FlagSpec) string {
	if m.config.CaseStyle == CaseAllowKebabForCamel {
		return toKebab(f.ExternalName)
	}
	return f.ExternalName
}

// candidateWireNames lists the wire names eligible for "did you mean"
// suggestions, in declaration order.
func (m *Model) candidateWireNames(includeHidden bool) []string {
	names := make([]string, 0, len(m.order))
	for _, name := range m.order {
		f := m.byExternalName[name]
		if f.Hidden && !includeHidden {
			continue
		}
		names = append(names, m.displayWireName(f))
	}
	return names
}

func (m *Model) suggestCorrections(input string, opts DistanceOptions, includeHidden bool) []string {
	return suggestCorrections(input, m.candidateWireNames(includeHidden), opts)
}

func toKebab(s string) string {
	out := make([]rune, 0, len(s)+4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				out = append(out, '-')
			}
			out = append(out, unicode.ToLower(r))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
