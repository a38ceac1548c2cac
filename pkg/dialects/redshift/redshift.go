// Package redshift provides the Amazon Redshift SQL dialect definition.
package redshift

import (
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
)

var clauses = []string{
	"PARTITION BY",
	"CREATE [OR REPLACE | MATERIALIZED] VIEW",
	"CREATE [TEMPORARY | TEMP | LOCAL TEMPORARY | LOCAL TEMP] TABLE [IF NOT EXISTS]",
	"ALTER TABLE APPEND",
	"DROP [COLUMN]",
	"RENAME COLUMN",
}

// onelineClauses are statements that never spread over several lines.
var onelineClauses = []string{
	"ABORT",
	"ALTER DATABASE",
	"ALTER DATASHARE",
	"ALTER DEFAULT PRIVILEGES",
	"ALTER GROUP",
	"ALTER MATERIALIZED VIEW",
	"ALTER PROCEDURE",
	"ALTER SCHEMA",
	"ALTER USER",
	"{ANALYSE | ANALYZE} [COMPRESSION]",
	"BEGIN",
	"CALL",
	"CANCEL",
	"CLOSE",
	"COMMENT",
	"COMMIT",
	"COPY",
	"CREATE DATABASE",
	"CREATE DATASHARE",
	"CREATE EXTERNAL {FUNCTION | SCHEMA | TABLE}",
	"CREATE {FUNCTION | GROUP | LIBRARY | MODEL | PROCEDURE | USER}",
	"DEALLOCATE",
	"DECLARE",
	"DESC DATASHARE",
	"DROP {DATABASE | DATASHARE | FUNCTION | GROUP | LIBRARY | MODEL | PROCEDURE | USER}",
	"DROP MATERIALIZED VIEW",
	"DROP {SCHEMA | VIEW}",
	"EXECUTE",
	"EXPLAIN",
	"FETCH",
	"GRANT",
	"LOCK",
	"PREPARE",
	"REFRESH MATERIALIZED VIEW",
	"RESET",
	"REVOKE",
	"ROLLBACK",
	"SELECT INTO",
	"SET SESSION {AUTHORIZATION | CHARACTERISTICS}",
	"SHOW [EXTERNAL TABLE | MODEL | DATASHARES | PROCEDURE | TABLE | VIEW]",
	"START TRANSACTION",
	"TRUNCATE [TABLE]",
	"UNLOAD",
	"VACUUM",
}

var keywords = []string{
	// COPY data conversion parameters
	"NULL AS",
	// CREATE EXTERNAL SCHEMA
	"DATA CATALOG",
	"HIVE METASTORE",
	// window specifications
	"{ROWS | RANGE} BETWEEN",
	"ACCEPTANYDATE", "ACCEPTINVCHARS", "BLANKSASNULL", "DATEFORMAT", "DELIMITER",
	"DISTKEY", "DISTSTYLE", "EMPTYASNULL", "ENCODE", "FORMAT", "GZIP", "IAM_ROLE",
	"IGNOREHEADER", "MANIFEST", "PARQUET", "REGION", "SORTKEY", "COMPOUND",
	"INTERLEAVED", "TIMEFORMAT", "TRUNCATECOLUMNS", "ILIKE", "SIMILAR TO",
	"SUPER", "TEXT", "GEOMETRY", "TIMESTAMPTZ", "VARBYTE",
}

var functions = []string{
	"APPROXIMATE", "BOOL_AND", "BOOL_OR", "CONVERT_TIMEZONE", "DATEADD", "DATEDIFF",
	"DATE_PART", "DATE_TRUNC", "GETDATE", "JSON_EXTRACT_PATH_TEXT", "JSON_PARSE",
	"LEN", "LISTAGG", "MEDIAN", "NVL", "NVL2", "DECODE", "RATIO_TO_REPORT",
	"REGEXP_SUBSTR", "SPLIT_PART", "STRTOL", "SYSDATE", "TO_CHAR", "TO_DATE",
	"TRUNC",
}

// Redshift is the Amazon Redshift dialect. Clause tables follow the
// Redshift command reference, which has no WINDOW clause; # may start a
// (temporary table) name.
var Redshift = dialect.Extend(ansi.ANSI, "redshift").
	Without("WINDOW").
	Commands(clauses...).
	Commands(onelineClauses...).
	InlineClauses(onelineClauses...).
	BinaryCommands("MINUS").
	Keywords(keywords...).
	Functions(functions...).
	ResetPlaceholders().
	NumberedPlaceholders("$").
	IdentChars("#", "").
	Operators("^", "@", "|/", "||/", "&", "|", "~", "<<", ">>", "::").
	DenseOperators("::").
	MustBuild()
