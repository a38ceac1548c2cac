// Package token defines the token types produced by the SQL lexer.
//
// The set of token types is closed: every piece of SQL text is classified
// into exactly one of them. Dialects only decide which words and symbols fall
// into which type.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
// Note: Named TokenType instead of Type because it reads better at call sites
// such as token.TokenType versus dialect-local Type enums.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

// Token types are listed in classification priority order: when a piece of
// text could be read as more than one reserved type, the earlier one wins.
//
//nolint:revive // TOKEN_* names are intentionally ALL_CAPS for SQL token conventions
const (
	// EOF terminates every token sequence. It is the zero value.
	EOF TokenType = iota

	// Reserved phrases
	COMMAND          // SELECT, FROM, WHERE, GROUP BY: starts a clause
	BINARY_COMMAND   // JOIN, UNION ALL: combines two relations
	DEPENDENT_CLAUSE // ON, WHEN, THEN, ELSE: attached to a preceding clause
	LOGICAL_OPERATOR // AND, OR, XOR
	KEYWORD          // reserved keyword
	FUNCTION         // reserved function name

	// Structure
	BLOCK_START // ( or CASE
	BLOCK_END   // ) or END
	OPERATOR    // , ; . = <> :: ...

	// Names and literals
	IDENT        // reserved word demoted to a plain name (a.END)
	QUOTED_IDENT // "name", `name`
	STRING       // 'hello'
	NUMBER       // 123, 45.67, 1e10, 0xFF
	PLACEHOLDER  // ?, ?1, $1, :name, @name, ${name}

	// Trivia
	LINE_COMMENT  // -- comment
	BLOCK_COMMENT // /* comment */

	// WORD is any other word run (table and column names, unknown functions).
	WORD
)

var tokenNames = map[TokenType]string{
	EOF:              "EOF",
	COMMAND:          "COMMAND",
	BINARY_COMMAND:   "BINARY_COMMAND",
	DEPENDENT_CLAUSE: "DEPENDENT_CLAUSE",
	LOGICAL_OPERATOR: "LOGICAL_OPERATOR",
	KEYWORD:          "KEYWORD",
	FUNCTION:         "FUNCTION",
	BLOCK_START:      "BLOCK_START",
	BLOCK_END:        "BLOCK_END",
	OPERATOR:         "OPERATOR",
	IDENT:            "IDENT",
	QUOTED_IDENT:     "QUOTED_IDENT",
	STRING:           "STRING",
	NUMBER:           "NUMBER",
	PLACEHOLDER:      "PLACEHOLDER",
	LINE_COMMENT:     "LINE_COMMENT",
	BLOCK_COMMENT:    "BLOCK_COMMENT",
	WORD:             "WORD",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int32(t))
}

// IsReserved reports whether t is one of the reserved phrase types.
func (t TokenType) IsReserved() bool {
	return t >= COMMAND && t <= FUNCTION
}

// IsComment reports whether t is a line or block comment.
func (t TokenType) IsComment() bool {
	return t == LINE_COMMENT || t == BLOCK_COMMENT
}

// IsName reports whether t names something (a plain, demoted or quoted word).
func (t TokenType) IsName() bool {
	return t == WORD || t == IDENT || t == QUOTED_IDENT
}

// Flag carries lexical diagnostics on a token.
type Flag uint8

const (
	// Unterminated marks a string, quoted identifier, block comment or
	// bracketed placeholder that ran to the end of input without its closer.
	Unterminated Flag = 1 << iota
)

// Token represents a lexical token with position information.
type Token struct {
	Type TokenType
	// Literal is the verbatim source text of the token.
	Literal string
	// Value is the canonical text: reserved phrases are upper-cased with
	// inner whitespace collapsed, placeholders hold their key ("1" for $1,
	// "name" for :name, "" for a bare ?). Otherwise it equals Literal.
	Value string
	Pos   Position
	Flags Flag
}

// Unterminated reports whether the lexer flagged the token as unterminated.
func (t Token) Unterminated() bool {
	return t.Flags&Unterminated != 0
}

// Is reports whether the token's canonical value matches v, ignoring case.
func (t Token) Is(v string) bool {
	return strings.EqualFold(t.Value, v)
}

// IsEOF reports whether the token ends the sequence.
func (t Token) IsEOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}
