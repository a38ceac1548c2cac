package format

import (
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/leapstack-labs/leapfmt/pkg/token"
)

// span summarizes the tokens of a clause body or block, as if printed on
// one line.
type span struct {
	tokens   int
	width    int  // display width of the inline form
	items    int  // top-level comma separated items
	branches int  // top-level WHEN and ELSE
	command  bool // holds a clause outside any function call
	comment  bool // holds a line comment
}

// measure scans forward from toks[from]. With block set the scan stops at
// the closer of the block being opened; otherwise it also stops at the next
// top-level command, which ends a clause body. A statement terminator ends
// both.
func (e *engine) measure(from int, block bool) span {
	var (
		s      span
		depth  int
		calls  []bool
		commas int
		prev   token.Token
	)
	for _, tok := range e.toks[from:] {
		if tok.Type == token.EOF || (tok.Type == token.OPERATOR && tok.Value == ";") {
			break
		}
		if tok.Type == token.BLOCK_END {
			if depth == 0 {
				break
			}
			depth--
			calls = calls[:depth]
		}
		isCommand := tok.Type == token.COMMAND || tok.Type == token.BINARY_COMMAND
		if isCommand && depth == 0 && !block {
			break
		}

		switch {
		case isCommand:
			if !slices.Contains(calls, true) {
				s.command = true
			}
		case tok.Type == token.LINE_COMMENT:
			s.comment = true
		case tok.Type == token.OPERATOR && tok.Value == "," && depth == 0:
			commas++
		case tok.Type == token.DEPENDENT_CLAUSE && depth == 0 && tok.Value != "THEN":
			s.branches++
		case tok.Type == token.BLOCK_START:
			calls = append(calls, !isWordBlock(tok) && hugsOpener(prev, tok.Literal))
			depth++
		}

		if tok.Type != token.LINE_COMMENT {
			w := runewidth.StringWidth(e.text(tok))
			if s.tokens > 0 && !e.tight(prev, tok) {
				w++
			}
			s.width += w
		}
		s.tokens++
		if !tok.Type.IsComment() {
			prev = tok
		}
	}
	if s.tokens > 0 {
		s.items = commas + 1
	}
	return s
}

// tight reports whether cur is printed without a space after prev.
func (e *engine) tight(prev, cur token.Token) bool {
	switch {
	case isDot(cur):
		return prev.Type != token.NUMBER
	case isDot(prev):
		return !startsWithDigit(cur)
	case cur.Type == token.OPERATOR && (cur.Value == "," || e.isDense(cur.Value)):
		return true
	case prev.Type == token.OPERATOR && e.isDense(prev.Value):
		return true
	case cur.Type == token.BLOCK_END && !isWordBlock(cur):
		return true
	case prev.Type == token.BLOCK_START && !isWordBlock(prev):
		return true
	case cur.Type == token.BLOCK_START && !isWordBlock(cur):
		return hugsOpener(prev, cur.Literal)
	}
	return false
}

// breaks applies the newline mode to a span that would start at column col.
func (e *engine) breaks(s span, items, col int) bool {
	if s.tokens == 0 {
		return false
	}
	wide := s.comment || col+s.width > e.opts.LineWidth
	many := items > e.opts.ItemCount
	switch e.opts.NewlineMode {
	case NewlineAlways:
		return true
	case NewlineNever:
		return false
	case NewlineLineWidth:
		return wide
	case NewlineItemCount:
		return many
	}
	return wide || many
}

func isDot(tok token.Token) bool {
	return tok.Type == token.OPERATOR && tok.Value == "."
}
