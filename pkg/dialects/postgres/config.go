// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
)

// Config is what PostgreSQL adds on top of ANSI.
// This is pure data; the Builder in dialect.go merges it into the ANSI base.
var Config = &core.DialectConfig{
	Name:    "postgres",
	Aliases: []string{"postgresql", "pg"},

	Commands: []string{
		"RETURNING",
		"ON CONFLICT",
		"CREATE [OR REPLACE] [TEMP | TEMPORARY | UNLOGGED] TABLE [IF NOT EXISTS]",
		"CREATE [UNIQUE] INDEX [CONCURRENTLY] [IF NOT EXISTS]",
		"DROP INDEX [CONCURRENTLY] [IF EXISTS]",
		"REFRESH MATERIALIZED VIEW [CONCURRENTLY]",
		"ALTER COLUMN",
		"COPY",
		"EXPLAIN [ANALYZE] [VERBOSE]",
		"SHOW",
		"VACUUM [FULL]",
		"ANALYZE",
	},
	InlineClauses: []string{
		"DROP INDEX [CONCURRENTLY] [IF EXISTS]",
		"REFRESH MATERIALIZED VIEW [CONCURRENTLY]",
		"SHOW",
		"VACUUM [FULL]",
		"ANALYZE",
	},
	Keywords: []string{
		"ILIKE", "SIMILAR TO", "ISNULL", "NOTNULL",
		"DO UPDATE", "DO NOTHING", "CONCURRENTLY", "VARIADIC",
		"JSON", "JSONB", "TEXT", "UUID", "BYTEA", "SERIAL", "BIGSERIAL",
		"TIMESTAMPTZ", "INTERVAL",
	},

	// Function classifications
	Functions: []string{
		// PostgreSQL specific aggregates
		"STDDEV", "VARIANCE", "STRING_AGG",
		"JSONB_AGG", "JSONB_OBJECT_AGG", "JSON_AGG", "JSON_OBJECT_AGG",
		"BOOL_AND", "BOOL_OR", "BIT_AND", "BIT_OR", "BIT_XOR",
		"CORR", "COVAR_POP", "COVAR_SAMP",
		"REGR_AVGX", "REGR_AVGY", "REGR_COUNT", "REGR_INTERCEPT",
		"REGR_R2", "REGR_SLOPE", "REGR_SXX", "REGR_SXY", "REGR_SYY",
		"MODE", "XMLAGG",
		// generators
		"NOW", "STATEMENT_TIMESTAMP", "TRANSACTION_TIMESTAMP", "CLOCK_TIMESTAMP",
		"GEN_RANDOM_UUID", "RANDOM", "SETSEED", "PI",
		"CURRENT_SCHEMA", "CURRENT_SCHEMAS",
		// set returning
		"GENERATE_SERIES", "UNNEST", "JSONB_ARRAY_ELEMENTS", "JSONB_EACH", "REGEXP_MATCHES",
		// scalars
		"ARRAY", "ANY", "CONCAT", "CONCAT_WS", "DATE_PART", "DATE_TRUNC", "FORMAT",
		"INITCAP", "LENGTH", "LPAD", "RPAD", "REPLACE", "SPLIT_PART", "STRPOS",
		"TO_CHAR", "TO_DATE", "TO_TIMESTAMP", "TO_JSONB", "JSONB_BUILD_OBJECT",
		"JSONB_SET", "REGEXP_REPLACE", "AGE",
	},

	Quotes: []core.QuoteRule{
		dialect.DollarQuotedString,
		dialect.PrefixedString(core.EscapeBackslash, "E"),
		dialect.PrefixedString(core.EscapeDoubled, "B", "X", "U&"),
	},
	Placeholders: core.PlaceholderConfig{
		Numbered: []string{"$"},
	},
	Operators: []string{
		"::",
		"->", "->>", "#>", "#>>", "#-",
		"@>", "<@", "@@", "@",
		"?", "?|", "?&",
		"~", "~*", "!~", "!~*", "~~", "!~~",
		"&&", "^", "|/", "||/", "!!",
		"&", "|", "#", "<<", ">>", "-|-",
	},
	DenseOperators: []string{"::"},
	Blocks: []core.DelimiterPair{
		{Open: "[", Close: "]"},
	},
}
