package argscan

import "strings"

// tokenKind is the classifier's output shape (spec §4.3).
type tokenKind int

const (
	tokEscape tokenKind = iota
	tokLongFlag
	tokNegatedLongFlag
	tokShortCluster
	tokPositional
)

// classifiedToken is the result of classifying a single raw token. name
// holds the long-flag name, the short cluster's alias characters, or the
// positional's raw value depending on kind.
type classifiedToken struct {
	kind      tokenKind
	name      string
	valueText string
	hasValue  bool
	negation  *FlagSpec // set only for tokNegatedLongFlag
}

// classifyToken applies the wire-level grammar in spec §4.3/§6. escaped
// reflects whether the scanner has already consumed the -- escape
// sequence; once true every token is a positional regardless of shape.
func classifyToken(raw string, cfg ScannerConfig, escaped bool, m *Model) classifiedToken {
	if escaped {
		return classifiedToken{kind: tokPositional, name: raw}
	}
	if raw == "--" && cfg.AllowArgumentEscapeSequence {
		return classifiedToken{kind: tokEscape}
	}
	if strings.HasPrefix(raw, "--") && len(raw) > 2 {
		rest := raw[2:]
		name, value, hasValue := strings.Cut(rest, "=")
		if flag, ok := m.negationOf[name]; ok {
			return classifiedToken{kind: tokNegatedLongFlag, name: name, valueText: value, hasValue: hasValue, negation: flag}
		}
		return classifiedToken{kind: tokLongFlag, name: name, valueText: value, hasValue: hasValue}
	}
	if strings.HasPrefix(raw, "-") && len(raw) >= 2 {
		rest := raw[1:]
		cluster, value, hasValue := strings.Cut(rest, "=")
		return classifiedToken{kind: tokShortCluster, name: cluster, valueText: value, hasValue: hasValue}
	}
	return classifiedToken{kind: tokPositional, name: raw}
}

// isFlagShaped reports whether raw starts with "-", independent of escape
// state (a lone "-" counts, though the classifier itself treats it as a
// positional). It is used
// to decide whether an incoming token interrupts a Pending flag (§4.4):
// "If the token is a positional-shaped token (does not start with -) ...
// otherwise treat the token as F's value" describes the non-interrupting
// case, so this is its negation.
func isFlagShaped(raw string) bool {
	return strings.HasPrefix(raw, "-") && raw != ""
}
