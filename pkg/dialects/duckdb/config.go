// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import "github.com/leapstack-labs/leapfmt/pkg/core"

// Config is what DuckDB adds on top of ANSI.
// This is pure data; the Builder in dialect.go merges it into the ANSI base.
var Config = &core.DialectConfig{
	Name:    "duckdb",
	Aliases: []string{"duck"},

	Commands: []string{
		"QUALIFY",
		"RETURNING",
		"PIVOT",
		"UNPIVOT",
		"ON CONFLICT",
		"INSERT OR {REPLACE | IGNORE} INTO",
		"CREATE [OR REPLACE] [TEMP | TEMPORARY] {TABLE | MACRO | SEQUENCE | TYPE} [IF NOT EXISTS]",
		"COPY",
		"ATTACH [DATABASE] [IF NOT EXISTS]",
		"DETACH [DATABASE]",
		"INSTALL",
		"LOAD",
		"PRAGMA",
		"DESCRIBE",
		"SUMMARIZE",
		"SHOW [TABLES | ALL TABLES]",
		"EXPLAIN [ANALYZE]",
		"USE",
	},
	InlineClauses: []string{
		"ATTACH [DATABASE] [IF NOT EXISTS]",
		"DETACH [DATABASE]",
		"INSTALL",
		"LOAD",
		"PRAGMA",
		"SHOW [TABLES | ALL TABLES]",
		"USE",
	},
	BinaryCommands: []string{
		"{ASOF | POSITIONAL} [LEFT] JOIN",
		"[LEFT] {SEMI | ANTI} JOIN",
		"{UNION | UNION ALL} BY NAME",
	},
	Keywords: []string{
		"ILIKE", "GLOB", "SIMILAR TO", "EXCLUDE", "REPLACE", "COLUMNS", "STRUCT", "MAP", "LIST",
		"SAMPLE", "USING SAMPLE", "TABLESAMPLE", "LAMBDA", "PARTITION_BY", "FORMAT",
		"HUGEINT", "UBIGINT", "UINTEGER", "BLOB", "VARCHAR", "UUID", "JSON", "TEXT",
		"TIMESTAMPTZ",
	},

	// Function classifications
	Functions: []string{
		// aggregates
		"ANY_VALUE", "ARG_MAX", "ARG_MIN", "BOOL_AND", "BOOL_OR", "FIRST", "LAST", "FSUM",
		"HISTOGRAM", "LIST", "MEDIAN", "MODE", "PRODUCT", "STRING_AGG", "GROUP_CONCAT",
		// window
		"CUME_DIST", "DENSE_RANK",
		// table functions
		"READ_CSV", "READ_CSV_AUTO", "READ_PARQUET", "READ_JSON", "READ_JSON_AUTO",
		"GENERATE_SERIES", "RANGE", "UNNEST", "GLOB",
		// scalars
		"LIST_VALUE", "LIST_AGGREGATE", "LIST_TRANSFORM", "LIST_FILTER", "STRUCT_PACK",
		"STRUCT_EXTRACT", "MAP", "STRFTIME", "STRPTIME", "DATE_DIFF", "DATE_TRUNC",
		"DATE_PART", "EPOCH_MS", "NOW", "TODAY", "REGEXP_MATCHES", "REGEXP_REPLACE",
		"CONCAT", "CONCAT_WS", "LENGTH", "REPLACE", "SPLIT_PART", "STRING_SPLIT",
		"TRY_CAST", "IF", "IFNULL",
	},

	Placeholders: core.PlaceholderConfig{
		Indexed:  []string{"?"},
		Numbered: []string{"$"},
		Named:    []string{"$"},
	},
	Operators: []string{
		"::", "->", "->>", "**", "//", "^", "^@", "@>", "<@", "&&", "~~", "!~~",
		"~~*", "!~~*", "<<", ">>", "&", "|", "~", "==",
	},
	DenseOperators: []string{"::"},
	Blocks: []core.DelimiterPair{
		{Open: "[", Close: "]"},
		{Open: "{", Close: "}"},
	},
	Overlap: core.FunctionsFirst,
}
