package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple words", "--mode foo", []string{"--mode", "foo"}},
		{"quoted value with spaces", `--name "two words"`, []string{"--name", "two words"}},
		{"single quoted value", `--name 'two words'`, []string{"--name", "two words"}},
		{"escaped space outside quotes", `a\ b`, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitLine_empty(t *testing.T) {
	got, err := SplitLine("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSplitLine_unterminatedQuoteErrors(t *testing.T) {
	_, err := SplitLine(`--name "unterminated`)
	assert.Error(t, err)
}
