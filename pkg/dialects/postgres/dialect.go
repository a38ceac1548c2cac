package postgres

import (
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
)

// Postgres is the PostgreSQL dialect: ANSI plus Config, with $1 placeholders
// replacing the ANSI ? and :name forms.
var Postgres = dialect.Extend(ansi.ANSI, "postgres").
	ResetPlaceholders().
	Merge(Config).
	MustBuild()
