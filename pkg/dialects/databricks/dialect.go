// Package databricks provides the Databricks SQL dialect definition.
// Databricks SQL is Spark SQL plus the clauses of the Databricks runtime.
package databricks

import (
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/spark"
)

// Databricks is the Databricks SQL dialect.
var Databricks = dialect.Extend(spark.Spark, "databricks").
	Commands(
		"QUALIFY",
		"MERGE INTO",
		"DELETE FROM",
		"COPY INTO",
		"OPTIMIZE",
		"ZORDER BY",
		"CREATE [OR REPLACE] [STREAMING] TABLE [IF NOT EXISTS]",
		"CREATE [OR REPLACE] MATERIALIZED VIEW [IF NOT EXISTS]",
		"VACUUM",
	).
	InlineClauses("OPTIMIZE", "VACUUM").
	DependentClauses("USING").
	Keywords("ILIKE", "TBLPROPERTIES", "DEEP CLONE", "SHALLOW CLONE", "TIMESTAMP AS OF", "VERSION AS OF", "ZORDER", "IDENTIFIER", "VARIANT").
	Functions("TRY_CAST", "TRY_TO_NUMBER", "TRY_TO_TIMESTAMP", "ARRAY_AGG", "IFF", "CURRENT_METASTORE", "READ_FILES").
	Operators("::", ":").
	DenseOperators("::", ":").
	MustBuild()
