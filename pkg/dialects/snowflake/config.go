// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import (
	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
)

// Config is what Snowflake adds on top of ANSI.
// This is pure data; the Builder in dialect.go merges it into the ANSI base.
var Config = &core.DialectConfig{
	Name:    "snowflake",
	Aliases: []string{"sf"},

	Commands: []string{
		"QUALIFY",
		"CREATE [OR REPLACE] [TRANSIENT | TEMPORARY | TEMP | VOLATILE] TABLE [IF NOT EXISTS]",
		"CREATE [OR REPLACE] [SECURE] [MATERIALIZED] VIEW [IF NOT EXISTS]",
		"CREATE [OR REPLACE] {STAGE | STREAM | TASK | FILE FORMAT | SEQUENCE}",
		"COPY INTO",
		"PUT",
		"GET",
		"LIST",
		"REMOVE",
		"USE [ROLE | WAREHOUSE | DATABASE | SCHEMA]",
		"SHOW",
		"DESCRIBE",
		"UNDROP {TABLE | SCHEMA | DATABASE}",
	},
	InlineClauses: []string{
		"USE [ROLE | WAREHOUSE | DATABASE | SCHEMA]",
		"SHOW",
		"DESCRIBE",
		"PUT",
		"GET",
		"LIST",
		"REMOVE",
		"UNDROP {TABLE | SCHEMA | DATABASE}",
	},
	Keywords: []string{
		"ILIKE", "RLIKE", "REGEXP", "SAMPLE", "TABLESAMPLE", "LATERAL", "CHANGES",
		"AT", "BEFORE", "CLONE", "COPY GRANTS", "CLUSTER BY", "IGNORE NULLS", "RESPECT NULLS",
		"MATCH_RECOGNIZE", "PIVOT", "UNPIVOT", "CONNECT BY", "START WITH",
		"VARIANT", "OBJECT", "NUMBER", "STRING", "TEXT", "TIMESTAMP_NTZ", "TIMESTAMP_LTZ", "TIMESTAMP_TZ",
	},

	// Function classifications
	Functions: []string{
		// aggregates
		"ANY_VALUE", "APPROX_COUNT_DISTINCT", "ARRAY_UNIQUE_AGG", "BITAND_AGG", "BOOLAND_AGG",
		"BOOLOR_AGG", "COUNT_IF", "HLL", "MEDIAN", "MODE", "OBJECT_AGG", "STDDEV", "VARIANCE",
		// generators
		"CURRENT_WAREHOUSE", "CURRENT_ROLE", "CURRENT_DATABASE", "CURRENT_SCHEMA", "GETDATE",
		"SYSDATE", "RANDOM", "SEQ4", "SEQ8", "UUID_STRING",
		// table functions
		"FLATTEN", "GENERATOR", "RESULT_SCAN", "SPLIT_TO_TABLE", "TABLE",
		// scalars
		"ARRAY_CONSTRUCT", "ARRAY_SIZE", "DATEADD", "DATEDIFF", "DATE_TRUNC", "DECODE", "DIV0",
		"IFF", "IFNULL", "LEN", "NVL", "NVL2", "OBJECT_CONSTRUCT", "PARSE_JSON", "SPLIT_PART",
		"TO_CHAR", "TO_DATE", "TO_NUMBER", "TO_TIMESTAMP", "TO_VARCHAR", "TO_VARIANT",
		"TRY_CAST", "TRY_TO_NUMBER", "TRY_TO_DATE", "ZEROIFNULL",
	},

	Quotes: []core.QuoteRule{
		dialect.DollarQuotedString,
	},
	Placeholders: core.PlaceholderConfig{
		Indexed:  []string{"?"},
		Numbered: []string{"$"},
	},
	LineComments: []string{"//"},
	Operators:    []string{"::", ":", "=>", "->", "^"},
	DenseOperators: []string{
		"::", ":",
	},
	Overlap: core.FunctionsFirst,
}
