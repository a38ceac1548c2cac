package core

import (
	"fmt"
	"slices"
	"strings"
)

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data with no functions, so it can be declared as a Go literal,
// decoded from a YAML dialect spec, or copied out of a built dialect.
//
// The compiled, lookup-ready form lives in pkg/dialect.Dialect.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "spark", "postgres")
	Name string `yaml:"name"`
	// Aliases are alternative names accepted by the dialect catalog.
	Aliases []string `yaml:"aliases"`

	// Reserved phrase lists, one per token type, in classification priority
	// order. Entries may use phrase patterns: [OPTIONAL | CHOICE] and {REQUIRED | CHOICE}.
	Commands         []string `yaml:"commands"`
	BinaryCommands   []string `yaml:"binary_commands"`
	DependentClauses []string `yaml:"dependent_clauses"`
	LogicalOperators []string `yaml:"logical_operators"`
	Keywords         []string `yaml:"keywords"`
	Functions        []string `yaml:"functions"`

	// InlineClauses are commands whose body always stays on the command's line (LIMIT 10).
	InlineClauses []string `yaml:"inline_clauses"`

	// Overlap decides the type of a word found in both Keywords and Functions.
	Overlap OverlapPrecedence `yaml:"overlap"`

	Quotes        []QuoteRule       `yaml:"quotes"`
	Placeholders  PlaceholderConfig `yaml:"placeholders"`
	LineComments  []string          `yaml:"line_comments"`
	BlockComments []DelimiterPair   `yaml:"block_comments"`

	// Operators is the operator lexicon; it is sorted longest-first when built.
	Operators []string `yaml:"operators"`
	// DenseOperators are printed without surrounding spaces (a::int).
	DenseOperators []string `yaml:"dense_operators"`

	// Blocks pairs block openers with closers: ( ), CASE END.
	Blocks []DelimiterPair `yaml:"blocks"`

	// IdentChars extends the characters allowed in words beyond letters,
	// digits and underscore.
	IdentChars IdentChars `yaml:"ident_chars"`
}

// Clone returns a deep copy of the configuration.
func (c *DialectConfig) Clone() *DialectConfig {
	if c == nil {
		return &DialectConfig{}
	}
	out := *c
	out.Aliases = slices.Clone(c.Aliases)
	out.Commands = slices.Clone(c.Commands)
	out.BinaryCommands = slices.Clone(c.BinaryCommands)
	out.DependentClauses = slices.Clone(c.DependentClauses)
	out.LogicalOperators = slices.Clone(c.LogicalOperators)
	out.Keywords = slices.Clone(c.Keywords)
	out.Functions = slices.Clone(c.Functions)
	out.InlineClauses = slices.Clone(c.InlineClauses)
	out.Quotes = make([]QuoteRule, len(c.Quotes))
	for i, q := range c.Quotes {
		q.Prefixes = slices.Clone(q.Prefixes)
		out.Quotes[i] = q
	}
	out.Placeholders = PlaceholderConfig{
		Indexed:  slices.Clone(c.Placeholders.Indexed),
		Numbered: slices.Clone(c.Placeholders.Numbered),
		Named:    slices.Clone(c.Placeholders.Named),
	}
	out.LineComments = slices.Clone(c.LineComments)
	out.BlockComments = slices.Clone(c.BlockComments)
	out.Operators = slices.Clone(c.Operators)
	out.DenseOperators = slices.Clone(c.DenseOperators)
	out.Blocks = slices.Clone(c.Blocks)
	return &out
}

// DelimiterPair is an opening and closing delimiter.
type DelimiterPair struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// IdentChars lists extra word characters.
type IdentChars struct {
	// First may start a word (e.g. "#" for Redshift temp tables).
	First string `yaml:"first"`
	// Rest may appear after the first character (e.g. "$").
	Rest string `yaml:"rest"`
}

// PlaceholderConfig lists the parameter placeholder prefixes of a dialect.
type PlaceholderConfig struct {
	// Indexed prefixes may stand alone or take digits: ?, ?1.
	Indexed []string `yaml:"indexed"`
	// Numbered prefixes require digits: $1.
	Numbered []string `yaml:"numbered"`
	// Named prefixes take a name, or a bracketed/quoted name: :id, @"id", ${id}.
	Named []string `yaml:"named"`
}

// QuoteKind says what a quoted literal produces.
type QuoteKind int

const (
	// QuoteString produces a string literal.
	QuoteString QuoteKind = iota
	// QuoteIdentifier produces a quoted identifier.
	QuoteIdentifier
)

// String returns the string representation of QuoteKind.
func (k QuoteKind) String() string {
	switch k {
	case QuoteString:
		return "string"
	case QuoteIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *QuoteKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "string", "":
		*k = QuoteString
	case "identifier", "ident":
		*k = QuoteIdentifier
	default:
		return fmt.Errorf("unknown quote kind %q", text)
	}
	return nil
}

// EscapeRule says how a closing delimiter can appear inside a quoted literal.
type EscapeRule int

const (
	// EscapeDoubled treats a doubled closer as an escaped closer: 'it''s'.
	EscapeDoubled EscapeRule = iota
	// EscapeBackslash treats a backslash as escaping the next character: 'it\'s'.
	EscapeBackslash
	// EscapeBoth accepts doubled closers and backslashes.
	EscapeBoth
	// EscapeNone has no escape: the first closer ends the literal.
	EscapeNone
	// EscapeNested pairs nested openers with closers: {a {b} c}.
	EscapeNested
	// EscapeDollarTag is PostgreSQL dollar quoting: $tag$ ... $tag$.
	EscapeDollarTag
)

var escapeNames = map[EscapeRule]string{
	EscapeDoubled:   "doubled",
	EscapeBackslash: "backslash",
	EscapeBoth:      "both",
	EscapeNone:      "none",
	EscapeNested:    "nested",
	EscapeDollarTag: "dollar",
}

// String returns the string representation of EscapeRule.
func (e EscapeRule) String() string {
	if s, ok := escapeNames[e]; ok {
		return s
	}
	return "unknown"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EscapeRule) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	if s == "" {
		*e = EscapeDoubled
		return nil
	}
	for rule, name := range escapeNames {
		if name == s {
			*e = rule
			return nil
		}
	}
	return fmt.Errorf("unknown escape rule %q", text)
}

// QuoteRule describes one kind of quoted literal.
type QuoteRule struct {
	Open   string     `yaml:"open"`
	Close  string     `yaml:"close"`
	Kind   QuoteKind  `yaml:"kind"`
	Escape EscapeRule `yaml:"escape"`
	// Prefixes are case-insensitive letters that may precede Open: E'..', N'..', X'..'.
	Prefixes []string `yaml:"prefixes"`
}

// OverlapPrecedence resolves a word listed both as keyword and as function.
type OverlapPrecedence int

const (
	// KeywordsFirst classifies overlapping words as keywords.
	KeywordsFirst OverlapPrecedence = iota
	// FunctionsFirst classifies overlapping words as functions.
	FunctionsFirst
)

// String returns the string representation of OverlapPrecedence.
func (o OverlapPrecedence) String() string {
	if o == FunctionsFirst {
		return "functions"
	}
	return "keywords"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OverlapPrecedence) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "keywords", "keyword", "":
		*o = KeywordsFirst
	case "functions", "function":
		*o = FunctionsFirst
	default:
		return fmt.Errorf("unknown overlap precedence %q", text)
	}
	return nil
}
