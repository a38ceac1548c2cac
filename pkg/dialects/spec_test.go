package dialects

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FromScratch(t *testing.T) {
	d, err := Parse([]byte(`
name: tiny
aliases: [tiny-sql]
commands: ["SELECT [DISTINCT]", FROM, WHERE]
binary_commands: ["UNION [ALL]"]
logical_operators: [AND, OR]
functions: [COUNT]
overlap: functions
quotes:
  - {open: "'", close: "'"}
  - {open: "[", close: "]", kind: identifier, escape: none}
placeholders:
  named: ["@"]
line_comments: ["#"]
operators: [",", ";", ".", "="]
blocks:
  - {open: "(", close: ")"}
disambiguate:
  member_access: true
`), nil)
	require.NoError(t, err)

	assert.Equal(t, "tiny", d.Name())
	assert.Equal(t, []string{"tiny-sql"}, d.Aliases())
	assert.Equal(t, core.FunctionsFirst, d.Config().Overlap)
	assert.Equal(t, core.QuoteIdentifier, d.Quotes()[1].Kind)
	assert.Equal(t, core.EscapeNone, d.Quotes()[1].Escape)
	assert.NotNil(t, d.Disambiguator())

	typ, n := d.Classify(strings.Fields("SELECT DISTINCT"))
	assert.Equal(t, token.COMMAND, typ)
	assert.Equal(t, 2, n)
}

func TestParse_Extends(t *testing.T) {
	d, err := Parse([]byte(`
name: warehouse
extends: postgres
commands: [QUALIFY]
without: [RETURNING]
disambiguate:
  function_call: [WINDOW]
  between:
    - {word: ITEMS, before: COLLECTION, after: TERMINATED}
`), nil)
	require.NoError(t, err)

	typ, _ := d.Classify([]string{"QUALIFY"})
	assert.Equal(t, token.COMMAND, typ)
	typ, _ = d.Classify([]string{"RETURNING"})
	assert.Equal(t, token.WORD, typ)
	typ, _ = d.Classify([]string{"ILIKE"})
	assert.Equal(t, token.KEYWORD, typ, "postgres keywords are inherited")
	assert.True(t, d.IsDense("::"))

	got := d.Disambiguator()(
		token.Token{Type: token.COMMAND, Literal: "window", Value: "WINDOW"},
		dialect.Neighbors{Next: token.Token{Type: token.BLOCK_START, Literal: "(", Value: "("}},
	)
	assert.Equal(t, token.FUNCTION, got.Type)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		is      error
	}{
		{
			name:    "unknown base",
			yaml:    "name: x\nextends: oracle\n",
			wantErr: "unknown dialect",
			is:      ErrUnknownDialect,
		},
		{
			name:    "unknown field",
			yaml:    "name: x\nkeywordz: [A]\n",
			wantErr: "keywordz",
		},
		{
			name:    "bad escape rule",
			yaml:    "name: x\nquotes: [{open: \"'\", close: \"'\", escape: weird}]\n",
			wantErr: "unknown escape rule",
		},
		{
			name:    "invalid dialect",
			yaml:    "name: x\nextends: ansi\noperators: [\"+\"]\n",
			wantErr: `duplicate operator "+"`,
			is:      dialect.ErrInvalidConfig,
		},
		{
			name:    "empty document",
			yaml:    "",
			wantErr: "dialect has no name",
			is:      dialect.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.yaml), nil)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is))
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: custom\nextends: spark\n"), 0o600))

	d, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", d.Name())

	_, err = Load(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read dialect spec")
}
