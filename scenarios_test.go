package argscan

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// scenarioSpec is the fixture grammar every case in testdata/scenarios.yaml
// runs against: one flag of each kind, plus a positional array, kept
// deliberately small so the YAML stays readable.
func scenarioSpec() *Spec {
	return &Spec{
		Flags: []FlagSpec{
			{ExternalName: "fooFlag", Kind: KindBoolean},
			{ExternalName: "logLevel", Kind: KindCounter},
			{ExternalName: "mode", Kind: KindEnum, Values: []string{"foo", "bar", "baz"}, Default: []string{"foo"}},
			{ExternalName: "name", Kind: KindParsed, Parse: stringParse, Optional: true},
		},
		Aliases: []Alias{{Char: 'l', ExternalName: "logLevel"}},
		Positional: PositionalSpec{
			Array: &PositionalParam{Placeholder: "files", Parse: stringParse},
		},
	}
}

type scenario struct {
	Name            string            `yaml:"name"`
	Tokens          []string          `yaml:"tokens"`
	WantSuccess     bool              `yaml:"wantSuccess"`
	WantFlags       map[string]string `yaml:"wantFlags"`
	WantPositionals []string          `yaml:"wantPositionals"`
	WantErrors      []string          `yaml:"wantErrors"`
}

func TestScenarios(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	require.NotEmpty(t, scenarios)

	cfg := ScannerConfig{DistanceOptions: DistanceOptions{
		Threshold: 7,
		Weights:   Weights{Insertion: 1, Deletion: 3, Substitution: 2, Transposition: 0},
	}}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			out := scan(t, scenarioSpec(), cfg, sc.Tokens)
			require.Equal(t, sc.WantSuccess, out.Success)

			if sc.WantSuccess {
				for name, want := range sc.WantFlags {
					assert.Equal(t, want, flagAsString(t, out.Flags[name]), "flag %s", name)
				}
				assert.Equal(t, sc.WantPositionals, positionalsAsStrings(out.Positionals))
				return
			}

			require.Len(t, out.Errors, len(sc.WantErrors))
			for i, wantMsg := range sc.WantErrors {
				assert.Equal(t, wantMsg, Format(out.Errors[i], FormatOptions{}))
			}
		})
	}
}

func flagAsString(t *testing.T, v any) string {
	t.Helper()
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		t.Fatalf("unsupported flag value type %T", v)
		return ""
	}
}

func positionalsAsStrings(values []any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}
