package snowflake

import (
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
)

// Snowflake is the Snowflake SQL dialect. Strings accept backslash escapes
// and $$ quoting; col:path is semi-structured access.
var Snowflake = dialect.Extend(ansi.ANSI, "snowflake").
	ResetQuotes().
	Quotes(dialect.SingleQuotedEscapedString, dialect.DoubleQuotedIdent).
	ResetPlaceholders().
	Merge(Config).
	MustBuild()
