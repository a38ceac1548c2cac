package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectConfig_Clone(t *testing.T) {
	orig := &DialectConfig{
		Name:      "test",
		Commands:  []string{"SELECT"},
		Operators: []string{"::"},
		Quotes: []QuoteRule{
			{Open: "'", Close: "'", Prefixes: []string{"E"}},
		},
		Placeholders: PlaceholderConfig{Named: []string{":"}},
	}

	clone := orig.Clone()
	require.NotSame(t, orig, clone)
	assert.Equal(t, orig, clone)

	clone.Commands[0] = "FROM"
	clone.Quotes[0].Prefixes[0] = "N"
	clone.Placeholders.Named[0] = "@"

	assert.Equal(t, "SELECT", orig.Commands[0], "clone must not share phrase slices")
	assert.Equal(t, "E", orig.Quotes[0].Prefixes[0], "clone must not share quote prefixes")
	assert.Equal(t, ":", orig.Placeholders.Named[0], "clone must not share placeholder slices")
}

func TestDialectConfig_CloneNil(t *testing.T) {
	var cfg *DialectConfig
	assert.NotNil(t, cfg.Clone())
}

func TestQuoteKind_UnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    QuoteKind
		wantErr bool
	}{
		{"string", QuoteString, false},
		{"", QuoteString, false},
		{"Identifier", QuoteIdentifier, false},
		{"ident", QuoteIdentifier, false},
		{"bogus", QuoteString, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var k QuoteKind
			err := k.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestEscapeRule_RoundTrip(t *testing.T) {
	for _, rule := range []EscapeRule{EscapeDoubled, EscapeBackslash, EscapeBoth, EscapeNone, EscapeNested, EscapeDollarTag} {
		var got EscapeRule
		require.NoError(t, got.UnmarshalText([]byte(rule.String())))
		assert.Equal(t, rule, got)
	}

	var e EscapeRule
	assert.Error(t, e.UnmarshalText([]byte("quadruple")))
}

func TestOverlapPrecedence_UnmarshalText(t *testing.T) {
	var o OverlapPrecedence
	require.NoError(t, o.UnmarshalText([]byte("functions")))
	assert.Equal(t, FunctionsFirst, o)
	assert.Equal(t, "functions", o.String())

	require.NoError(t, o.UnmarshalText([]byte("keywords")))
	assert.Equal(t, KeywordsFirst, o)

	assert.Error(t, o.UnmarshalText([]byte("both")))
}
