package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leapfmt/pkg/token"
)

type frameKind int

const (
	frameClause frameKind = iota // opened by a command, indented body
	frameJoin                    // opened by a binary command, continuation lines
	frameParen                   // symbol block: ( ), [ ]
	frameCase                    // word block: CASE ... END
)

type frame struct {
	kind   frameKind
	closer string
	breaks bool
	// call marks a block that hugs the name in front of it (COUNT(*), a[1]).
	// Commands inside a call stay inline: EXTRACT(YEAR FROM d).
	call bool
}

// engine lays out one token sequence. It is created per Format call.
type engine struct {
	opts  *Options
	dense map[string]struct{}
	toks  []token.Token

	ind    *Indentation
	ws     *WhitespaceBuilder
	frames []frame

	prev token.Token // last non-comment token written
	last token.Token // last token written

	between      bool // a BETWEEN waits for its AND
	continuation bool // the next line gets one extra indentation unit

	upper cases.Caser
	lower cases.Caser
}

func newEngine(opts *Options, dense map[string]struct{}, toks []token.Token) *engine {
	ind := NewIndentation(opts.indentUnit())
	return &engine{
		opts:  opts,
		dense: dense,
		toks:  toks,
		ind:   ind,
		ws:    NewWhitespaceBuilder(ind),
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
	}
}

func (e *engine) run() string {
	for i, tok := range e.toks {
		if tok.Type == token.EOF {
			break
		}
		e.token(i, tok)
		e.last = tok
		if !tok.Type.IsComment() {
			e.prev = tok
		}
	}
	e.ws.Add(NO_NEWLINE)
	if e.ws.Len() == 0 {
		return ""
	}
	return e.ws.String() + "\n"
}

func (e *engine) token(i int, tok token.Token) {
	switch tok.Type {
	case token.COMMAND:
		e.command(i, tok)
	case token.BINARY_COMMAND:
		e.binaryCommand(i, tok)
	case token.DEPENDENT_CLAUSE:
		e.dependentClause(tok)
	case token.LOGICAL_OPERATOR:
		e.logicalOperator(tok)
	case token.BLOCK_START:
		e.blockStart(i, tok)
	case token.BLOCK_END:
		e.blockEnd(tok)
	case token.OPERATOR:
		e.operator(i, tok)
	case token.LINE_COMMENT:
		e.lineComment(i, tok)
	case token.BLOCK_COMMENT:
		e.blockComment(tok)
	default:
		e.word(tok)
	}
}

// write appends text, indenting first when the line is empty.
func (e *engine) write(text string) {
	if e.ws.AtLineStart() {
		e.ws.Add(INDENT)
		if e.continuation {
			e.ws.Add(SINGLE_INDENT)
			e.continuation = false
		}
	}
	e.ws.Write(text)
}

func (e *engine) breakLine(continuation bool) {
	e.ws.Add(NEWLINE)
	e.continuation = continuation
}

// text returns the printed form of tok with keyword casing applied.
func (e *engine) text(tok token.Token) string {
	if !tok.Type.IsReserved() && !isWordBlock(tok) {
		return tok.Literal
	}
	switch e.opts.KeywordCase {
	case CaseUpper:
		return e.upper.String(tok.Value)
	case CaseLower:
		return e.lower.String(tok.Value)
	}
	return strings.Join(strings.Fields(tok.Literal), " ")
}

func (e *engine) top() *frame {
	if len(e.frames) == 0 {
		return nil
	}
	return &e.frames[len(e.frames)-1]
}

func (e *engine) push(f frame) {
	e.frames = append(e.frames, f)
	if f.kind != frameJoin {
		e.ind.Push()
	}
}

func (e *engine) pop() frame {
	f := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]
	if f.kind != frameJoin {
		e.ind.Pop()
	}
	return f
}

// closeClauses ends the open clauses down to the innermost block.
func (e *engine) closeClauses() {
	for f := e.top(); f != nil && (f.kind == frameClause || f.kind == frameJoin); f = e.top() {
		e.pop()
	}
}

func (e *engine) inCall() bool {
	f := e.top()
	return f != nil && f.kind == frameParen && f.call
}

func (e *engine) word(tok token.Token) {
	e.write(e.text(tok))
	e.ws.Add(SPACE)
	if tok.Type.IsReserved() && (tok.Value == "BETWEEN" || strings.HasSuffix(tok.Value, " BETWEEN")) {
		e.between = true
	}
}

func (e *engine) command(i int, tok token.Token) {
	if e.inCall() {
		e.word(tok)
		return
	}
	e.closeClauses()
	e.breakLine(false)
	e.write(e.text(tok))

	breaks := false
	if !e.opts.Dialect.IsInlineClause(tok.Value) {
		s := e.measure(i+1, false)
		breaks = e.breaks(s, s.items, e.ws.Column()+1)
	}
	e.push(frame{kind: frameClause, breaks: breaks})
	if breaks {
		e.breakLine(false)
	} else {
		e.ws.Add(SPACE)
	}
}

func (e *engine) binaryCommand(i int, tok token.Token) {
	if e.inCall() {
		e.word(tok)
		return
	}
	e.closeClauses()
	e.breakLine(false)
	e.write(e.text(tok))
	s := e.measure(i+1, false)
	breaks := e.breaks(s, s.items, e.ws.Column()+1)
	e.push(frame{kind: frameJoin, breaks: breaks})
	e.ws.Add(SPACE)
}

func (e *engine) dependentClause(tok token.Token) {
	if f := e.top(); f != nil && f.breaks && tok.Value != "THEN" {
		e.breakLine(f.kind == frameJoin)
	}
	e.write(e.text(tok))
	e.ws.Add(SPACE)
}

func (e *engine) logicalOperator(tok token.Token) {
	if e.between && tok.Value == "AND" {
		e.between = false
	} else if f := e.top(); f != nil && f.breaks && f.kind != frameCase {
		e.breakLine(f.kind == frameJoin)
	}
	e.write(e.text(tok))
	e.ws.Add(SPACE)
}

func (e *engine) blockStart(i int, tok token.Token) {
	closer := e.opts.Dialect.Closer(tok.Value)
	s := e.measure(i+1, true)

	if isWordBlock(tok) {
		e.write(e.text(tok))
		breaks := e.breaks(s, s.branches, e.ws.Column()+1)
		e.push(frame{kind: frameCase, closer: closer, breaks: breaks})
		e.ws.Add(SPACE)
		return
	}

	call := !e.last.Type.IsComment() && hugsOpener(e.prev, tok.Literal)
	if call {
		e.ws.Add(NO_SPACE)
	}
	e.write(tok.Literal)

	var breaks bool
	switch {
	case s.command && !call:
		breaks = true
	case call && e.opts.NewlineMode == NewlineAlways:
		breaks = false
	default:
		breaks = e.breaks(s, s.items, e.ws.Column())
	}
	e.push(frame{kind: frameParen, closer: closer, breaks: breaks, call: call})
	if breaks {
		e.breakLine(false)
	}
}

func (e *engine) blockEnd(tok token.Token) {
	match := -1
	for j := len(e.frames) - 1; j >= 0; j-- {
		f := e.frames[j]
		if (f.kind == frameParen || f.kind == frameCase) && strings.EqualFold(f.closer, tok.Value) {
			match = j
			break
		}
	}

	var closed frame
	for match >= 0 && len(e.frames) > match {
		closed = e.pop()
	}
	switch {
	case match >= 0 && closed.breaks:
		e.breakLine(false)
	case !isWordBlock(tok):
		e.ws.Add(NO_SPACE)
	}
	e.write(e.text(tok))
	e.ws.Add(SPACE)
}

func (e *engine) operator(i int, tok token.Token) {
	switch op := tok.Value; {
	case op == ",":
		e.ws.Add(NO_SPACE)
		e.write(op)
		if f := e.top(); f != nil && f.breaks && f.kind != frameCase {
			e.breakLine(f.kind == frameJoin)
		} else {
			e.ws.Add(SPACE)
		}
	case op == ";":
		e.ws.Add(NO_SPACE)
		e.write(op)
		e.frames = e.frames[:0]
		e.ind.Reset()
		e.between = false
		e.continuation = false
		if e.hasMore(i) {
			e.blankLines()
		}
	case op == ".":
		// A number on either side keeps its space: "1.x" and "t.1" read
		// back as the numbers "1." and ".1".
		if e.prev.Type != token.NUMBER {
			e.ws.Add(NO_SPACE)
		}
		e.write(op)
		if startsWithDigit(e.next(i)) {
			e.ws.Add(SPACE)
		}
	case e.isDense(op):
		e.ws.Add(NO_SPACE)
		e.write(op)
	case (op == "-" || op == "+") && e.unary() && !e.nextIs(i, token.OPERATOR):
		e.write(op)
	default:
		e.write(op)
		e.ws.Add(SPACE)
	}
}

func (e *engine) blankLines() {
	e.ws.Add(NEWLINE)
	for range e.opts.BlankLinesBetweenStatements {
		e.ws.Write("\n")
	}
}

// lineComment keeps a trailing comment on the line of the token it
// followed in the source and a comment on its own line on a line of its
// own. It always ends the line after it. An own-line comment in front of a
// clause is indented like that clause.
func (e *engine) lineComment(i int, tok token.Token) {
	trailing := e.last.Pos.IsValid() && endLine(e.last) == tok.Pos.Line
	if trailing {
		e.ws.Add(NO_NEWLINE)
	} else {
		if e.startsClause(e.nextSignificant(i)) {
			e.closeClauses()
			e.continuation = false
		}
		e.ws.Add(NEWLINE)
	}
	if !e.ws.AtLineStart() {
		e.ws.Add(NO_SPACE, SPACE)
	}
	e.write(tok.Literal)
	e.ws.Add(NEWLINE)
	if trailing && e.last.Type == token.OPERATOR && e.last.Value == ";" && e.hasMore(i) {
		e.blankLines()
	}
}

func (e *engine) blockComment(tok token.Token) {
	if !e.ws.AtLineStart() {
		e.ws.Add(NO_SPACE, SPACE)
	}
	e.write(tok.Literal)
	e.ws.Add(SPACE)
}

// unary reports whether a + or - at this point applies to one operand.
func (e *engine) unary() bool {
	switch e.prev.Type {
	case token.EOF, token.OPERATOR, token.BLOCK_START,
		token.COMMAND, token.BINARY_COMMAND, token.DEPENDENT_CLAUSE,
		token.LOGICAL_OPERATOR, token.KEYWORD:
		return true
	}
	return false
}

func (e *engine) isDense(op string) bool {
	if _, ok := e.dense[op]; ok {
		return true
	}
	return e.opts.Dialect.IsDense(op)
}

// nextIs reports whether the token after toks[i] has type typ. A sign
// followed by another operator keeps its space so "- -1" never prints as
// the comment "--1".
func (e *engine) nextIs(i int, typ token.TokenType) bool {
	return i+1 < len(e.toks) && e.toks[i+1].Type == typ
}

// nextSignificant returns the first token after toks[i] that is not a
// comment, or an EOF token.
func (e *engine) nextSignificant(i int) token.Token {
	for _, tok := range e.toks[i+1:] {
		if !tok.Type.IsComment() {
			return tok
		}
	}
	return token.Token{Type: token.EOF}
}

// startsClause reports whether tok would open a clause at this point.
func (e *engine) startsClause(tok token.Token) bool {
	return (tok.Type == token.COMMAND || tok.Type == token.BINARY_COMMAND) && !e.inCall()
}

// next returns the token after toks[i], or an EOF token.
func (e *engine) next(i int) token.Token {
	if i+1 < len(e.toks) {
		return e.toks[i+1]
	}
	return token.Token{Type: token.EOF}
}

func (e *engine) hasMore(i int) bool {
	return i+1 < len(e.toks) && e.toks[i+1].Type != token.EOF
}

// hugsOpener reports whether a symbol block opener is written right after
// prev: a function call or an index.
func hugsOpener(prev token.Token, open string) bool {
	switch prev.Type {
	case token.WORD, token.IDENT, token.QUOTED_IDENT, token.FUNCTION:
		return true
	case token.KEYWORD:
		return open == "["
	case token.BLOCK_END:
		return open == "[" && !isWordBlock(prev)
	}
	return false
}

func startsWithDigit(tok token.Token) bool {
	r, _ := utf8.DecodeRuneInString(tok.Literal)
	return unicode.IsDigit(r)
}

// isWordBlock reports whether tok is a keyword block delimiter such as CASE or END.
func isWordBlock(tok token.Token) bool {
	if tok.Type != token.BLOCK_START && tok.Type != token.BLOCK_END {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok.Literal)
	return unicode.IsLetter(r)
}

func endLine(tok token.Token) int {
	return tok.Pos.Line + strings.Count(tok.Literal, "\n")
}
