package format

import (
	"bytes"

	"github.com/mattn/go-runewidth"
)

// WS is a whitespace directive understood by WhitespaceBuilder.
//
//nolint:revive // ALL_CAPS directive names mirror the token type constants
type WS int

// Whitespace directives.
//
//nolint:revive // ALL_CAPS directive names mirror the token type constants
const (
	// SPACE appends one space.
	SPACE WS = iota
	// NO_SPACE removes trailing spaces and tabs, but not newlines.
	NO_SPACE
	// NEWLINE removes trailing spaces and tabs, then ends the line unless the
	// output is empty or already ends with a newline.
	NEWLINE
	// NO_NEWLINE removes all trailing whitespace, newlines included.
	NO_NEWLINE
	// INDENT appends the current indentation.
	INDENT
	// SINGLE_INDENT appends one indentation unit.
	SINGLE_INDENT
)

var wsNames = [...]string{"SPACE", "NO_SPACE", "NEWLINE", "NO_NEWLINE", "INDENT", "SINGLE_INDENT"}

func (w WS) String() string {
	if w < 0 || int(w) >= len(wsNames) {
		return "WS(?)"
	}
	return wsNames[w]
}

// WhitespaceBuilder assembles formatted output from text and whitespace
// directives. It never leaves a space or tab in front of a newline.
type WhitespaceBuilder struct {
	output *bytes.Buffer
	indent *Indentation
}

// NewWhitespaceBuilder creates a builder that resolves INDENT and
// SINGLE_INDENT through indent.
func NewWhitespaceBuilder(indent *Indentation) *WhitespaceBuilder {
	return &WhitespaceBuilder{
		output: &bytes.Buffer{},
		indent: indent,
	}
}

// Add applies directives in order.
func (b *WhitespaceBuilder) Add(directives ...WS) {
	for _, d := range directives {
		switch d {
		case SPACE:
			b.output.WriteByte(' ')
		case NO_SPACE:
			b.trim(" \t")
		case NEWLINE:
			b.trim(" \t")
			if b.output.Len() > 0 && !b.endsWith('\n') {
				b.output.WriteByte('\n')
			}
		case NO_NEWLINE:
			b.trim(" \t\r\n")
		case INDENT:
			b.output.WriteString(b.indent.Indent())
		case SINGLE_INDENT:
			b.output.WriteString(b.indent.SingleIndent())
		}
	}
}

// Write appends text verbatim.
func (b *WhitespaceBuilder) Write(text string) {
	b.output.WriteString(text)
}

// AtLineStart reports whether nothing has been written on the current line.
func (b *WhitespaceBuilder) AtLineStart() bool {
	return b.output.Len() == 0 || b.endsWith('\n')
}

// Column returns the display width of the current line.
func (b *WhitespaceBuilder) Column() int {
	line := b.output.Bytes()
	if i := bytes.LastIndexByte(line, '\n'); i >= 0 {
		line = line[i+1:]
	}
	return runewidth.StringWidth(string(line))
}

// Len returns the number of bytes written so far.
func (b *WhitespaceBuilder) Len() int {
	return b.output.Len()
}

// String returns the output assembled so far.
func (b *WhitespaceBuilder) String() string {
	return b.output.String()
}

func (b *WhitespaceBuilder) endsWith(c byte) bool {
	n := b.output.Len()
	return n > 0 && b.output.Bytes()[n-1] == c
}

func (b *WhitespaceBuilder) trim(cutset string) {
	b.output.Truncate(len(bytes.TrimRight(b.output.Bytes(), cutset)))
}
