// Package spark provides the Spark SQL dialect definition.
package spark

import (
	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
)

var commands = []string{
	// DDL
	"ALTER COLUMN",
	"ALTER DATABASE",
	"ALTER TABLE",
	"ALTER VIEW",
	"CREATE DATABASE",
	"CREATE FUNCTION",
	"CREATE [OR REPLACE] [TEMPORARY] TABLE [IF NOT EXISTS]",
	"CREATE [OR REPLACE] [GLOBAL] [TEMPORARY] VIEW [IF NOT EXISTS]",
	"DROP {DATABASE | FUNCTION | TABLE | VIEW}",
	"REPAIR TABLE",
	"TRUNCATE TABLE",
	"USE DATABASE",
	// DML
	"INSERT INTO",
	"INSERT OVERWRITE [DIRECTORY]",
	"LOAD",
	// queries
	"SELECT [ALL | DISTINCT]",
	"WITH",
	"CLUSTER BY",
	"DISTRIBUTE BY",
	"PARTITION BY",
	"GROUP BY",
	"HAVING",
	"VALUES",
	"LIMIT",
	"OFFSET",
	"ORDER BY",
	"SORT BY",
	"TABLESAMPLE",
	"WHERE",
	"PIVOT",
	"TRANSFORM",
	"EXPLAIN",
	// auxiliary
	"ADD {FILE | JAR}",
	"ANALYZE TABLE",
	"CACHE TABLE",
	"CLEAR CACHE",
	"DESCRIBE {DATABASE | FUNCTION | QUERY | TABLE}",
	"LIST {FILE | JAR}",
	"REFRESH [TABLE | FUNCTION]",
	"RESET",
	"SET [SCHEMA]",
	"SHOW {COLUMNS | CREATE TABLE | DATABASES | FUNCTIONS | PARTITIONS | TABLE EXTENDED | TABLES | TBLPROPERTIES | VIEWS}",
	"UNCACHE TABLE",
	// other
	"FROM",
	"INSERT",
	"UPDATE",
	"WINDOW",
}

var binaryCommands = []string{
	// set operations
	"{INTERSECT | UNION | EXCEPT | MINUS} [ALL | DISTINCT]",
	// joins
	"JOIN",
	"INNER JOIN",
	"{LEFT | RIGHT | FULL} [OUTER] JOIN",
	"CROSS JOIN",
	"[LEFT | RIGHT] {SEMI | ANTI} JOIN",
	"NATURAL [INNER | OUTER | FULL OUTER | LEFT OUTER | RIGHT OUTER] JOIN",
	"NATURAL [LEFT] {SEMI | ANTI} JOIN",
	"NATURAL RIGHT SEMI JOIN",
	// apply
	"{CROSS | OUTER} APPLY",
}

// Spark is the Spark SQL dialect.
//
// Disambiguation:
//   - a reserved word after "." is a member name (window.end);
//   - WINDOW followed by "(" is the window() function, not the clause;
//   - ITEMS is only reserved in COLLECTION ITEMS TERMINATED BY.
var Spark = dialect.NewDialect("spark").
	Aliases("sparksql", "spark-sql").
	Commands(commands...).
	InlineClauses("LIMIT", "OFFSET", "TABLESAMPLE").
	BinaryCommands(binaryCommands...).
	DependentClauses("ON", "WHEN", "THEN", "ELSE", "LATERAL VIEW").
	LogicalOperators("AND", "OR", "XOR").
	Keywords(keywords...).
	Functions(functions...).
	Overlap(core.FunctionsFirst).
	Quotes(dialect.DoubleQuotedString, dialect.SingleQuotedEscapedString, dialect.BacktickIdent, dialect.BraceString).
	IndexedPlaceholders("?").
	NamedPlaceholders("$").
	WithStandardLexicon().
	Operators("<=>", "&&", "==").
	Disambiguate(
		dialect.MemberAccess,
		dialect.FunctionCall("WINDOW"),
		dialect.Between("ITEMS", "COLLECTION", "TERMINATED"),
	).
	MustBuild()
