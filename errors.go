package argscan

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the nine diagnostic variants a scan can produce.
type ErrorKind int

const (
	KindAliasNotFound ErrorKind = iota
	KindFlagNotFound
	KindArgumentParse
	KindEnumValidation
	KindUnsatisfiedFlag
	KindUnexpectedFlag
	KindUnsatisfiedPositional
	KindUnexpectedPositional
	KindInvalidNegatedFlagSyntax
)

// ScanError is the common interface implemented by every diagnostic the
// scanner produces. It is a closed sum type: the nine concrete types below
// are the only implementations.
type ScanError interface {
	error
	Kind() ErrorKind
}

// ParseException carries both a rendered message and, when available, the
// original error returned by a host's ParseFunc, so a formatter can choose
// either.
type ParseException struct {
	Message string
	Cause   error
}

// AliasNotFoundError reports a short-cluster character with no alias
// registration at all.
type AliasNotFoundError struct {
	Input rune
}

func (e AliasNotFoundError) Kind() ErrorKind { return KindAliasNotFound }
func (e AliasNotFoundError) Error() string   { return defaultFormat(e) }

// FlagNotFoundError reports a long-flag name (or an alias target) with no
// corresponding entry in the flag table.
type FlagNotFoundError struct {
	Input       string
	Corrections []string
	AliasName   *rune
}

func (e FlagNotFoundError) Kind() ErrorKind { return KindFlagNotFound }
func (e FlagNotFoundError) Error() string   { return defaultFormat(e) }

// ArgumentParseError reports a host ParseFunc (or the built-in boolean or
// counter parser) rejecting a raw value.
type ArgumentParseError struct {
	ExternalFlagNameOrPlaceholder string
	Input                         string
	Exception                     ParseException
}

func (e ArgumentParseError) Kind() ErrorKind { return KindArgumentParse }
func (e ArgumentParseError) Error() string   { return defaultFormat(e) }
func (e ArgumentParseError) Unwrap() error   { return e.Exception.Cause }

// EnumValidationError reports a value outside an enum flag's declared
// values. The same shape is reused for enum-like positional validation,
// where ExternalFlagName holds the positional's placeholder instead.
type EnumValidationError struct {
	ExternalFlagName string
	Input            string
	Values           []string
}

func (e EnumValidationError) Kind() ErrorKind { return KindEnumValidation }
func (e EnumValidationError) Error() string   { return defaultFormat(e) }

// UnsatisfiedFlagError reports a flag left without a value: either still
// Pending at finalization, required and never set, or interrupted
// mid-Pending by another flag-shaped token.
type UnsatisfiedFlagError struct {
	ExternalName string
	// NextFlagName is set only when a pending-interrupt occurred and the
	// interrupting token resolved to a recognizable flag name.
	NextFlagName string
}

func (e UnsatisfiedFlagError) Kind() ErrorKind { return KindUnsatisfiedFlag }
func (e UnsatisfiedFlagError) Error() string   { return defaultFormat(e) }

// UnexpectedFlagError reports a non-variadic flag being set a second time.
type UnexpectedFlagError struct {
	ExternalName  string
	PreviousInput string
	Input         string
}

func (e UnexpectedFlagError) Kind() ErrorKind { return KindUnexpectedFlag }
func (e UnexpectedFlagError) Error() string   { return defaultFormat(e) }

// UnsatisfiedPositionalError reports a required positional slot (or an
// array positional under its configured minimum) left unfilled.
type UnsatisfiedPositionalError struct {
	Placeholder string
	// Limit, when non-nil, holds [required, actual] for array positionals.
	Limit *[2]int
}

func (e UnsatisfiedPositionalError) Kind() ErrorKind { return KindUnsatisfiedPositional }
func (e UnsatisfiedPositionalError) Error() string   { return defaultFormat(e) }

// UnexpectedPositionalError reports a positional token with nowhere left
// to go: past the end of a tuple, or past an array's configured maximum.
type UnexpectedPositionalError struct {
	ExpectedCount int
	Input         string
}

func (e UnexpectedPositionalError) Kind() ErrorKind { return KindUnexpectedPositional }
func (e UnexpectedPositionalError) Error() string   { return defaultFormat(e) }

// InvalidNegatedFlagSyntaxError reports a negated boolean flag token
// (--noFoo) carrying a non-empty inline value, which the grammar forbids.
type InvalidNegatedFlagSyntaxError struct {
	ExternalFlagName string
	ValueText        string
}

func (e InvalidNegatedFlagSyntaxError) Kind() ErrorKind { return KindInvalidNegatedFlagSyntax }
func (e InvalidNegatedFlagSyntaxError) Error() string   { return defaultFormat(e) }

// FormatOptions lets a caller override the default rendering for any error
// kind. Overrides are looked up by Kind, not by type switch, so adding a
// renderer never requires touching the others.
type FormatOptions struct {
	Overrides map[ErrorKind]func(ScanError) string
}

// Format renders a ScanError to a human-readable message, consulting
// opts.Overrides first and falling back to the built-in default for that
// kind.
func Format(err ScanError, opts FormatOptions) string {
	if opts.Overrides != nil {
		if fn, ok := opts.Overrides[err.Kind()]; ok {
			return fn(err)
		}
	}
	return defaultFormat(err)
}

func defaultFormat(err ScanError) string {
	switch e := err.(type) {
	case AliasNotFoundError:
		return fmt.Sprintf("No alias registered for -%c", e.Input)
	case FlagNotFoundError:
		if e.AliasName != nil {
			return fmt.Sprintf("No flag registered for --%s (aliased from -%c)", e.Input, *e.AliasName)
		}
		if len(e.Corrections) == 0 {
			return fmt.Sprintf("No flag registered for --%s", e.Input)
		}
		return fmt.Sprintf("No flag registered for --%s, did you mean %s?", e.Input, joinCorrections(e.Corrections))
	case ArgumentParseError:
		return fmt.Sprintf("Failed to parse %q for %s: %s", e.Input, e.ExternalFlagNameOrPlaceholder, e.Exception.Message)
	case EnumValidationError:
		msg := fmt.Sprintf("Expected %q to be one of (%s)", e.Input, strings.Join(e.Values, "|"))
		if suggestions := suggestCorrections(e.Input, e.Values, DistanceOptions{Threshold: len(e.Input), Weights: Weights{Insertion: 1, Deletion: 1, Substitution: 1}}); len(suggestions) > 0 {
			msg += fmt.Sprintf(", did you mean %s?", joinPlain(suggestions))
		}
		return msg
	case UnsatisfiedFlagError:
		msg := fmt.Sprintf("Expected input for flag --%s", e.ExternalName)
		if e.NextFlagName != "" {
			msg += fmt.Sprintf(" but encountered --%s instead", e.NextFlagName)
		}
		return msg
	case UnexpectedFlagError:
		return fmt.Sprintf("Too many arguments for --%s, encountered %q after %q", e.ExternalName, e.Input, e.PreviousInput)
	case UnsatisfiedPositionalError:
		if e.Limit == nil {
			return fmt.Sprintf("Expected argument for %s", e.Placeholder)
		}
		required, actual := e.Limit[0], e.Limit[1]
		if actual == 0 {
			return fmt.Sprintf("Expected at least %d argument(s) for %s but found none", required, e.Placeholder)
		}
		return fmt.Sprintf("Expected at least %d argument(s) for %s but only found %d", required, e.Placeholder, actual)
	case UnexpectedPositionalError:
		return fmt.Sprintf("Too many arguments, expected %d but encountered %q", e.ExpectedCount, e.Input)
	case InvalidNegatedFlagSyntaxError:
		return fmt.Sprintf("Cannot negate flag --%s and pass %q as value", e.ExternalFlagName, e.ValueText)
	default:
		return fmt.Sprintf("%v", err)
	}
}

func joinCorrections(names []string) string {
	dashed := make([]string, len(names))
	for i, n := range names {
		dashed[i] = "--" + n
	}
	return joinPlain(dashed)
}

// joinPlain joins names as-is (no flag-dash prefix), for contexts like enum
// value suggestions where the candidates aren't flag names.
func joinPlain(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
