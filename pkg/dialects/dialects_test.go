package dialects

import (
	"errors"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t,
		[]string{"ansi", "databricks", "duckdb", "postgres", "redshift", "snowflake", "spark"},
		Names(),
	)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ansi", "ansi"},
		{"SQL", "ansi"},
		{"postgresql", "postgres"},
		{" PG ", "postgres"},
		{"sparksql", "spark"},
		{"Databricks", "databricks"},
		{"duck", "duckdb"},
		{"sf", "snowflake"},
		{"redshift", "redshift"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Name())
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	d, err := Lookup("oracle")
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, ErrUnknownDialect))
	assert.Contains(t, err.Error(), "postgres", "error should list the available dialects")
}

func TestNewCatalog_DuplicateNames(t *testing.T) {
	_, err := NewCatalog(Builtin().All()...)
	require.NoError(t, err)

	clash := dialect.Extend(mustLookup(t, "ansi"), "custom").Aliases("pg").MustBuild()
	_, err = Builtin().With(clash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `name "pg" already used by "postgres"`)
}

func TestCatalog_With(t *testing.T) {
	custom := dialect.Extend(mustLookup(t, "ansi"), "warehouse").MustBuild()
	c, err := Builtin().With(custom)
	require.NoError(t, err)

	d, err := c.Lookup("WAREHOUSE")
	require.NoError(t, err)
	assert.Same(t, custom, d)

	_, err = Builtin().Lookup("warehouse")
	assert.Error(t, err, "the built-in catalog must not change")
}

// TestBuiltinClassification checks a few phrases per dialect that matter
// for layout.
func TestBuiltinClassification(t *testing.T) {
	tests := []struct {
		dialect  string
		words    string
		wantType token.TokenType
		wantN    int
	}{
		{"ansi", "SELECT DISTINCT", token.COMMAND, 2},
		{"ansi", "GROUP BY", token.COMMAND, 2},
		{"ansi", "LEFT OUTER JOIN", token.BINARY_COMMAND, 3},
		{"ansi", "LEFT", token.FUNCTION, 1},
		{"ansi", "IS NOT DISTINCT FROM", token.KEYWORD, 4},
		{"ansi", "CASE", token.BLOCK_START, 1},
		{"ansi", "END", token.BLOCK_END, 1},
		{"postgres", "RETURNING", token.COMMAND, 1},
		{"postgres", "ON CONFLICT", token.COMMAND, 2},
		{"postgres", "ILIKE", token.KEYWORD, 1},
		{"redshift", "NULL AS", token.KEYWORD, 2},
		{"redshift", "ROWS BETWEEN", token.KEYWORD, 2},
		{"redshift", "VACUUM", token.COMMAND, 1},
		{"redshift", "MINUS", token.BINARY_COMMAND, 1},
		{"redshift", "WINDOW", token.WORD, 1},
		{"spark", "WINDOW", token.COMMAND, 1},
		{"spark", "LATERAL VIEW", token.DEPENDENT_CLAUSE, 2},
		{"spark", "XOR", token.LOGICAL_OPERATOR, 1},
		{"spark", "LEFT ANTI JOIN", token.BINARY_COMMAND, 3},
		{"spark", "ITEMS", token.KEYWORD, 1},
		{"spark", "COLLECT_LIST", token.FUNCTION, 1},
		{"databricks", "QUALIFY", token.COMMAND, 1},
		{"databricks", "SORT BY", token.COMMAND, 2},
		{"snowflake", "QUALIFY", token.COMMAND, 1},
		{"snowflake", "FLATTEN", token.FUNCTION, 1},
		{"duckdb", "ASOF JOIN", token.BINARY_COMMAND, 2},
		{"duckdb", "UNION ALL BY NAME", token.BINARY_COMMAND, 4},
		{"duckdb", "PIVOT", token.COMMAND, 1},
	}

	for _, tt := range tests {
		t.Run(tt.dialect+"/"+tt.words, func(t *testing.T) {
			d := mustLookup(t, tt.dialect)
			typ, n := d.Classify(strings.Fields(tt.words))
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestBuiltinLexicon(t *testing.T) {
	pg := mustLookup(t, "postgres")
	assert.True(t, pg.IsDense("::"))
	assert.Equal(t, []string{"$"}, pg.Placeholders().Numbered)
	assert.Empty(t, pg.Placeholders().Indexed, "? is an operator in postgres")
	assert.Contains(t, pg.Operators(), "?|")

	rs := mustLookup(t, "redshift")
	assert.True(t, rs.IsWordStart('#'))
	assert.True(t, rs.IsInlineClause("VACUUM"))

	spark := mustLookup(t, "spark")
	require.NotNil(t, spark.Disambiguator())
	assert.Contains(t, spark.Operators(), "<=>")
	assert.Equal(t, []string{"$"}, spark.Placeholders().Named)

	db := mustLookup(t, "databricks")
	assert.NotNil(t, db.Disambiguator(), "databricks inherits spark disambiguation")
	assert.Contains(t, db.Operators(), "<=>")

	duck := mustLookup(t, "duckdb")
	assert.Equal(t, "]", duck.Closer("["))
	assert.Equal(t, "}", duck.Closer("{"))
}

func mustLookup(t *testing.T, name string) *dialect.Dialect {
	t.Helper()
	d, err := Lookup(name)
	require.NoError(t, err)
	return d
}
