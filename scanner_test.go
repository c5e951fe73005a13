package argscan

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, spec *Spec, cfg ScannerConfig, tokens []string) ParseOutcome {
	t.Helper()
	sc, err := NewScanner(spec, cfg)
	require.NoError(t, err)
	for _, tok := range tokens {
		sc.Next(tok)
	}
	return sc.ParseArguments()
}

func choiceParse(values ...string) ParseFunc {
	return func(raw string) (any, error) {
		for _, v := range values {
			if v == raw {
				return raw, nil
			}
		}
		return nil, errors.New("not one of " + strconv.Quote(values[0]) + " or " + strconv.Quote(values[1]))
	}
}

func numberParse(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New("expected a number")
	}
	return n, nil
}

func stringParse(raw string) (any, error) { return raw, nil }

// Tuple + choice + number (spec §8 scenario 1).
func TestScanner_tupleChoiceAndNumber(t *testing.T) {
	spec := &Spec{Positional: PositionalSpec{Tuple: []PositionalParam{
		{Placeholder: "action", Parse: choiceParse("add", "remove")},
		{Placeholder: "arg2", Parse: numberParse},
	}}}

	t.Run("both slots fill and parse", func(t *testing.T) {
		out := scan(t, spec, ScannerConfig{}, []string{"add", "100"})
		require.True(t, out.Success)
		assert.Equal(t, []any{"add", 100}, out.Positionals)
	})

	t.Run("unparseable first slot, second slot unfilled", func(t *testing.T) {
		out := scan(t, spec, ScannerConfig{}, []string{"ad"})
		require.False(t, out.Success)
		require.Len(t, out.Errors, 2)
		ape, ok := out.Errors[0].(ArgumentParseError)
		require.True(t, ok)
		assert.Equal(t, "action", ape.ExternalFlagNameOrPlaceholder)
		assert.Equal(t, "ad", ape.Input)
		assert.Equal(t, UnsatisfiedPositionalError{Placeholder: "arg2"}, out.Errors[1])
	})
}

// Boolean + negation + alias (spec §8 scenario 2).
func TestScanner_booleanNegationAlias(t *testing.T) {
	spec := &Spec{
		Flags: []FlagSpec{
			{ExternalName: "fooFlag", Kind: KindBoolean},
			{ExternalName: "bar", Kind: KindBoolean},
			{ExternalName: "baz", Kind: KindBoolean},
		},
		Aliases: []Alias{{Char: 'f', ExternalName: "fooFlag"}},
	}
	cfg := ScannerConfig{DistanceOptions: DistanceOptions{Threshold: 7, Weights: Weights{Insertion: 1, Deletion: 3, Substitution: 2, Transposition: 0}}}

	t.Run("inline bad boolean value on alias", func(t *testing.T) {
		out := scan(t, spec, cfg, []string{"-f=✅"})
		require.False(t, out.Success)
		require.Len(t, out.Errors, 1)
		ape, ok := out.Errors[0].(ArgumentParseError)
		require.True(t, ok)
		assert.Equal(t, "fooFlag", ape.ExternalFlagNameOrPlaceholder)
		assert.Equal(t, "✅", ape.Input)
	})

	t.Run("unknown wire name suggests the only close flag", func(t *testing.T) {
		out := scan(t, spec, cfg, []string{"--foo-flag"})
		require.False(t, out.Success)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, FlagNotFoundError{Input: "foo-flag", Corrections: []string{"fooFlag"}}, out.Errors[0])
	})
}

// Counter cluster (spec §8 scenario 3).
func TestScanner_counterCluster(t *testing.T) {
	spec := &Spec{
		Flags:   []FlagSpec{{ExternalName: "logLevel", Kind: KindCounter}},
		Aliases: []Alias{{Char: 'l', ExternalName: "logLevel"}},
	}

	t.Run("repeated alias characters each increment", func(t *testing.T) {
		out := scan(t, spec, ScannerConfig{}, []string{"-ll", "-ll"})
		require.True(t, out.Success)
		assert.Equal(t, 4, out.Flags["logLevel"])
	})

	t.Run("inline value sets, trailing alias still increments", func(t *testing.T) {
		out := scan(t, spec, ScannerConfig{}, []string{"--logLevel=100", "-l"})
		require.True(t, out.Success)
		assert.Equal(t, 101, out.Flags["logLevel"])
	})
}

// Variadic enum with separator (spec §8 scenario 4).
func TestScanner_variadicEnumWithSeparator(t *testing.T) {
	spec := &Spec{Flags: []FlagSpec{
		{ExternalName: "mode", Kind: KindEnum, Values: []string{"foo", "bar", "baz"}, Variadic: Variadic{Separator: ','}},
	}}

	t.Run("inline separated values plus a separate-token value accumulate in order", func(t *testing.T) {
		out := scan(t, spec, ScannerConfig{}, []string{"--mode=bar,bar", "--mode", "foo"})
		require.True(t, out.Success)
		assert.Equal(t, []any{"bar", "bar", "foo"}, out.Flags["mode"])
	})

	t.Run("value outside the enum fails validation", func(t *testing.T) {
		out := scan(t, spec, ScannerConfig{}, []string{"--mode=INVALID"})
		require.False(t, out.Success)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, EnumValidationError{ExternalFlagName: "mode", Input: "INVALID", Values: []string{"foo", "bar", "baz"}}, out.Errors[0])
	})
}

// Escape sequence + positional array (spec §8 scenario 5).
func TestScanner_escapeAndPositionalArray(t *testing.T) {
	spec := &Spec{
		Flags: []FlagSpec{
			{ExternalName: "foo", Kind: KindBoolean},
			{ExternalName: "bar", Kind: KindParsed, Parse: stringParse, Optional: true},
		},
		Positional: PositionalSpec{Array: &PositionalParam{Placeholder: "files", Parse: stringParse}},
	}
	cfg := ScannerConfig{AllowArgumentEscapeSequence: true}

	t.Run("escape forces the rest to positionals", func(t *testing.T) {
		out := scan(t, spec, cfg, []string{"--", "--foo"})
		require.True(t, out.Success)
		assert.Equal(t, false, out.Flags["foo"])
		_, hasBar := out.Flags["bar"]
		assert.False(t, hasBar)
		assert.Equal(t, []any{"--foo"}, out.Positionals)
	})

	t.Run("escape interrupts a pending flag", func(t *testing.T) {
		out := scan(t, spec, cfg, []string{"--bar", "--", "--foo"})
		require.False(t, out.Success)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, UnsatisfiedFlagError{ExternalName: "bar"}, out.Errors[0])
	})
}

// A negation never raises a duplicate-set error: it always overwrites
// whatever came before it, positive or negated.
func TestScanner_negationNeverDuplicatesAfterPositive(t *testing.T) {
	spec := &Spec{Flags: []FlagSpec{{ExternalName: "fooFlag", Kind: KindBoolean}}}

	out := scan(t, spec, ScannerConfig{}, []string{"--fooFlag", "--noFooFlag"})
	require.True(t, out.Success)
	assert.Equal(t, false, out.Flags["fooFlag"])
}

// A positive setter, by contrast, still flags a flag that was already
// explicitly set (by either a prior positive or a prior negation).
func TestScanner_positiveAfterNegationIsUnexpected(t *testing.T) {
	spec := &Spec{Flags: []FlagSpec{{ExternalName: "fooFlag", Kind: KindBoolean}}}

	out := scan(t, spec, ScannerConfig{}, []string{"--noFooFlag", "--fooFlag"})
	require.False(t, out.Success)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, UnexpectedFlagError{ExternalName: "fooFlag", PreviousInput: "true", Input: "true"}, out.Errors[0])
}

func TestScanner_defaultsApplyOnlyWhenUnset(t *testing.T) {
	spec := &Spec{Flags: []FlagSpec{
		{ExternalName: "mode", Kind: KindEnum, Values: []string{"foo", "bar"}, Default: []string{"foo"}},
	}}

	out := scan(t, spec, ScannerConfig{}, []string{})
	require.True(t, out.Success)
	assert.Equal(t, "foo", out.Flags["mode"])

	out = scan(t, spec, ScannerConfig{}, []string{"--mode=bar"})
	require.True(t, out.Success)
	assert.Equal(t, "bar", out.Flags["mode"])
}

func TestScanner_duplicateNonVariadicFlagIsUnexpected(t *testing.T) {
	spec := &Spec{Flags: []FlagSpec{{ExternalName: "name", Kind: KindParsed, Parse: stringParse}}}

	out := scan(t, spec, ScannerConfig{}, []string{"--name=a", "--name=b"})
	require.False(t, out.Success)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, UnexpectedFlagError{ExternalName: "name", PreviousInput: "a", Input: "b"}, out.Errors[0])
}
