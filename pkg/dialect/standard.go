package dialect

import "github.com/leapstack-labs/leapfmt/pkg/core"

// This file is the toolbox of reusable lexicon pieces. Concrete dialects
// compose them instead of repeating the same literals.

// Standard quoting rules.
var (
	// SingleQuotedString is 'text' with '' escapes.
	SingleQuotedString = core.QuoteRule{Open: "'", Close: "'", Kind: core.QuoteString, Escape: core.EscapeDoubled}
	// SingleQuotedEscapedString is 'text' with '' or backslash escapes.
	SingleQuotedEscapedString = core.QuoteRule{Open: "'", Close: "'", Kind: core.QuoteString, Escape: core.EscapeBoth}
	// DoubleQuotedIdent is "name" with "" escapes.
	DoubleQuotedIdent = core.QuoteRule{Open: `"`, Close: `"`, Kind: core.QuoteIdentifier, Escape: core.EscapeDoubled}
	// DoubleQuotedString is "text" as a string literal (Spark, Databricks).
	DoubleQuotedString = core.QuoteRule{Open: `"`, Close: `"`, Kind: core.QuoteString, Escape: core.EscapeBoth}
	// BacktickIdent is `name` with `` escapes.
	BacktickIdent = core.QuoteRule{Open: "`", Close: "`", Kind: core.QuoteIdentifier, Escape: core.EscapeDoubled}
	// BraceString is {text} with nested braces (Spark variable substitution).
	BraceString = core.QuoteRule{Open: "{", Close: "}", Kind: core.QuoteString, Escape: core.EscapeNested}
	// DollarQuotedString is $tag$text$tag$.
	DollarQuotedString = core.QuoteRule{Open: "$", Close: "$", Kind: core.QuoteString, Escape: core.EscapeDollarTag}
)

// PrefixedString returns a single-quoted string rule that requires one of
// the given letter prefixes (E'..', X'..') and uses the given escape rule.
func PrefixedString(escape core.EscapeRule, prefixes ...string) core.QuoteRule {
	return core.QuoteRule{Open: "'", Close: "'", Kind: core.QuoteString, Escape: escape, Prefixes: prefixes}
}

// StandardOperators are the operators every dialect understands.
var StandardOperators = []string{
	",", ";", ".",
	"+", "-", "*", "/", "%",
	"=", "<", ">", "<=", ">=", "<>", "!=",
	"||",
}

// StandardLineComments are the ANSI line comment delimiters.
var StandardLineComments = []string{"--"}

// StandardBlocks are parentheses and CASE ... END.
var StandardBlocks = []core.DelimiterPair{
	{Open: "(", Close: ")"},
	{Open: "CASE", Close: "END"},
}

// WithStandardLexicon adds the standard operators, comments and blocks.
func (b *Builder) WithStandardLexicon() *Builder {
	b.Operators(StandardOperators...)
	b.LineComments(StandardLineComments...)
	b.BlockComment("/*", "*/")
	for _, pair := range StandardBlocks {
		b.Block(pair.Open, pair.Close)
	}
	return b
}
