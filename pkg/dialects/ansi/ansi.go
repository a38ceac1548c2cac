// Package ansi provides the base ANSI SQL dialect.
//
// This dialect serves as the foundation for most other SQL dialects. Dialects
// like DuckDB or PostgreSQL extend ANSI and add or replace specific lexicon
// pieces.
package ansi

import (
	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
)

// Commands start a clause and get a line of their own.
var Commands = []string{
	// queries
	"SELECT [ALL | DISTINCT]",
	"WITH [RECURSIVE]",
	"FROM",
	"WHERE",
	"GROUP BY",
	"HAVING",
	"WINDOW",
	"PARTITION BY",
	"ORDER BY",
	"LIMIT",
	"OFFSET",
	"FETCH {FIRST | NEXT}",
	// data manipulation
	"INSERT INTO",
	"VALUES",
	"UPDATE",
	"SET",
	"DELETE [FROM]",
	"MERGE INTO",
	// data definition
	"CREATE [OR REPLACE] [TEMP | TEMPORARY] TABLE [IF NOT EXISTS]",
	"CREATE [OR REPLACE] [MATERIALIZED] VIEW [IF NOT EXISTS]",
	"CREATE SCHEMA [IF NOT EXISTS]",
	"DROP {TABLE | VIEW | SCHEMA} [IF EXISTS]",
	"ALTER TABLE",
	"ADD [COLUMN]",
	"DROP COLUMN",
	"ALTER COLUMN",
	"RENAME {TO | COLUMN}",
	"TRUNCATE [TABLE]",
}

// InlineClauses keep their body on the command's line.
var InlineClauses = []string{
	"LIMIT",
	"OFFSET",
	"FETCH {FIRST | NEXT}",
	"TRUNCATE [TABLE]",
	"DROP {TABLE | VIEW | SCHEMA} [IF EXISTS]",
}

// BinaryCommands are set operations and joins.
var BinaryCommands = []string{
	"UNION [ALL | DISTINCT]",
	"EXCEPT [ALL | DISTINCT]",
	"INTERSECT [ALL | DISTINCT]",
	"JOIN",
	"{LEFT | RIGHT | FULL} [OUTER] JOIN",
	"{INNER | CROSS} JOIN",
	"NATURAL [INNER] JOIN",
	"NATURAL {LEFT | RIGHT | FULL} [OUTER] JOIN",
}

// DependentClauses attach to the clause before them.
var DependentClauses = []string{"ON", "USING", "WHEN", "THEN", "ELSE"}

// Keywords are the reserved words that are not clauses.
var Keywords = []string{
	"ALL", "ANY", "ARRAY", "AS", "ASC", "ASYMMETRIC", "AT", "AUTHORIZATION",
	"BETWEEN", "BOTH", "BY",
	"CASCADE", "CHECK", "COLLATE", "COLUMN", "CONSTRAINT", "CROSS", "CURRENT ROW",
	"DEFAULT", "DESC", "DISTINCT",
	"ESCAPE", "EXISTS",
	"FALSE", "FILTER", "FIRST", "FOLLOWING", "FOR", "FOREIGN KEY", "FULL",
	"GLOBAL", "GROUPS",
	"IF", "IN", "INNER", "INTERVAL", "INTO", "IS", "IS [NOT] DISTINCT FROM",
	"KEY",
	"LAST", "LATERAL", "LEFT", "LIKE", "LOCAL",
	"MATCHED",
	"NATURAL", "NEXT", "NO", "NOT", "NULL", "NULLS",
	"OF", "ONLY", "OUTER", "OVER",
	"PRECEDING", "PRIMARY KEY",
	"RANGE", "RECURSIVE", "REFERENCES", "RESTRICT", "RIGHT", "ROW", "ROWS",
	"SOME", "SYMMETRIC",
	"TABLE", "TEMPORARY", "TIES", "TO", "TRAILING", "TRUE",
	"UNBOUNDED", "UNIQUE", "UNKNOWN",
	"WITHIN GROUP", "WITHOUT",
	"ZONE",
	// data types
	"BIGINT", "BINARY", "BOOLEAN", "CHAR", "CHARACTER", "DATE", "DECIMAL",
	"DOUBLE PRECISION", "FLOAT", "INT", "INTEGER", "NUMERIC", "REAL", "SMALLINT",
	"TIME", "TIMESTAMP", "VARCHAR", "VARYING",
}

// Functions are reserved function names.
var Functions = []string{
	// aggregates
	"AVG", "COUNT", "MAX", "MIN", "SUM", "EVERY", "STDDEV_POP", "STDDEV_SAMP",
	"VAR_POP", "VAR_SAMP", "ARRAY_AGG", "LISTAGG", "PERCENTILE_CONT", "PERCENTILE_DISC",
	// windows
	"ROW_NUMBER", "RANK", "DENSE_RANK", "PERCENT_RANK", "CUME_DIST", "NTILE",
	"LAG", "LEAD", "FIRST_VALUE", "LAST_VALUE", "NTH_VALUE",
	// scalars
	"ABS", "CAST", "CEIL", "CEILING", "CHAR_LENGTH", "CHARACTER_LENGTH", "COALESCE",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "EXP",
	"EXTRACT", "FLOOR", "GREATEST", "LEAST", "LEFT", "LN", "LOCALTIME",
	"LOCALTIMESTAMP", "LOWER", "MOD", "NULLIF", "OCTET_LENGTH", "OVERLAY",
	"POSITION", "POWER", "RIGHT", "ROUND", "SESSION_USER", "SQRT", "SUBSTRING",
	"TRIM", "UPPER",
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.NewDialect("ansi").
	Aliases("sql", "standard").
	Commands(Commands...).
	InlineClauses(InlineClauses...).
	BinaryCommands(BinaryCommands...).
	DependentClauses(DependentClauses...).
	LogicalOperators("AND", "OR").
	Keywords(Keywords...).
	Functions(Functions...).
	Overlap(core.FunctionsFirst).
	Quotes(dialect.SingleQuotedString, dialect.DoubleQuotedIdent).
	IndexedPlaceholders("?").
	NamedPlaceholders(":").
	WithStandardLexicon().
	Disambiguate(dialect.MemberAccess).
	MustBuild()
