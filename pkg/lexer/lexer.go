// Package lexer turns SQL text into the flat token sequence consumed by the
// formatter.
//
// The lexer never fails: every byte of input ends up in some token. Malformed
// input (an unterminated string, comment or bracketed placeholder) is
// flagged on the token and reported through Warnings.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/token"
)

// Warning is a lexical diagnostic.
type Warning struct {
	Pos     token.Position
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Pos, w.Message)
}

// Lexer tokenizes SQL input for one dialect.
type Lexer struct {
	input string
	pos   int // byte offset of the next unread byte
	line  int // line of pos (1-based)
	col   int // column of pos in runes (1-based)

	dialect  *dialect.Dialect
	warnings []Warning
}

// New creates a Lexer for the given input.
func New(input string, d *dialect.Dialect) *Lexer {
	return &Lexer{
		input:   input,
		line:    1,
		col:     1,
		dialect: d,
	}
}

// Tokenize scans the whole input and runs the dialect's disambiguation
// rule. The result always ends with an EOF token.
func Tokenize(input string, d *dialect.Dialect) []token.Token {
	return New(input, d).Tokenize()
}

// Tokenize scans the whole input. It can only be called once per Lexer.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return disambiguate(toks, l.dialect.Disambiguator())
}

// Warnings returns the diagnostics collected by Tokenize.
func (l *Lexer) Warnings() []Warning {
	return l.warnings
}

func (l *Lexer) warn(pos token.Position, format string, args ...any) {
	l.warnings = append(l.warnings, Warning{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// currentPos returns the position of the next unread byte.
func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// rest returns the unread input.
func (l *Lexer) rest() string {
	return l.input[l.pos:]
}

// peek returns the rune at pos+offset bytes, or utf8.RuneError at the end.
func (l *Lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.input) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+offset:])
	return r
}

// advance consumes n bytes and keeps line and column current.
func (l *Lexer) advance(n int) string {
	text := l.input[l.pos : l.pos+n]
	for _, r := range text {
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.pos += n
	return text
}

func (l *Lexer) skipWhitespace() {
	end := len(l.rest()) - len(strings.TrimLeftFunc(l.rest(), unicode.IsSpace))
	l.advance(end)
}

// next scans one token. The order of the checks is the matching priority:
// comments, quoted literals, placeholders, numbers, blocks, operators, words.
func (l *Lexer) next() token.Token {
	l.skipWhitespace()
	pos := l.currentPos()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, Pos: pos}
	}

	scanners := []func(token.Position) (token.Token, bool){
		l.scanLineComment,
		l.scanBlockComment,
		l.scanQuoted,
		l.scanPlaceholder,
		l.scanNumber,
		l.scanSymbolBlock,
		l.scanOperator,
		l.scanWords,
	}
	for _, scan := range scanners {
		if tok, ok := scan(pos); ok {
			return tok
		}
	}

	// Anything else is a one-rune operator so no input is lost.
	_, size := utf8.DecodeRuneInString(l.rest())
	lit := l.advance(size)
	return token.Token{Type: token.OPERATOR, Literal: lit, Value: lit, Pos: pos}
}
