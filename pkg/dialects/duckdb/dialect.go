package duckdb

import (
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
)

// DuckDB is the DuckDB dialect. List literals ([1, 2]) and struct literals
// ({'a': 1}) are blocks.
var DuckDB = dialect.Extend(ansi.ANSI, "duckdb").
	ResetPlaceholders().
	Operators(":").
	Merge(Config).
	MustBuild()
