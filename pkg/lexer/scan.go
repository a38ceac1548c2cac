package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/token"
)

func (l *Lexer) scanLineComment(pos token.Position) (token.Token, bool) {
	for _, delim := range l.dialect.LineComments() {
		if !strings.HasPrefix(l.rest(), delim) {
			continue
		}
		end := strings.IndexAny(l.rest(), "\r\n")
		if end < 0 {
			end = len(l.rest())
		}
		lit := strings.TrimRightFunc(l.advance(end), unicode.IsSpace)
		return token.Token{Type: token.LINE_COMMENT, Literal: lit, Value: lit, Pos: pos}, true
	}
	return token.Token{}, false
}

func (l *Lexer) scanBlockComment(pos token.Position) (token.Token, bool) {
	for _, pair := range l.dialect.BlockComments() {
		if !strings.HasPrefix(l.rest(), pair.Open) {
			continue
		}
		tok := token.Token{Type: token.BLOCK_COMMENT, Pos: pos}
		end := strings.Index(l.rest()[len(pair.Open):], pair.Close)
		if end < 0 {
			tok.Flags |= token.Unterminated
			l.warn(pos, "unterminated block comment")
			end = len(l.rest())
		} else {
			end += len(pair.Open) + len(pair.Close)
		}
		tok.Literal = l.advance(end)
		tok.Value = tok.Literal
		return tok, true
	}
	return token.Token{}, false
}

// scanQuoted reads strings and quoted identifiers. Rules are tried longest
// opener first; a rule with prefixes (E'..', X'..') only matches with one of
// them in front of the opener.
func (l *Lexer) scanQuoted(pos token.Position) (token.Token, bool) {
	for _, rule := range l.dialect.Quotes() {
		start, ok := l.matchQuoteStart(rule)
		if !ok {
			continue
		}
		var (
			n          int
			terminated bool
		)
		if rule.Escape == core.EscapeDollarTag {
			n, terminated, ok = l.dollarQuoted()
			if !ok {
				continue
			}
		} else {
			n, terminated = quotedLength(l.rest()[start:], rule)
			n += start
		}

		tok := token.Token{Type: token.STRING, Pos: pos}
		if rule.Kind == core.QuoteIdentifier {
			tok.Type = token.QUOTED_IDENT
		}
		if !terminated {
			tok.Flags |= token.Unterminated
			if tok.Type == token.QUOTED_IDENT {
				l.warn(pos, "unterminated quoted identifier")
			} else {
				l.warn(pos, "unterminated string literal")
			}
		}
		tok.Literal = l.advance(n)
		tok.Value = tok.Literal
		return tok, true
	}
	return token.Token{}, false
}

// matchQuoteStart reports whether the rule starts here and the byte length
// of its prefix.
func (l *Lexer) matchQuoteStart(rule core.QuoteRule) (int, bool) {
	rest := l.rest()
	if len(rule.Prefixes) == 0 {
		return 0, strings.HasPrefix(rest, rule.Open)
	}
	for _, p := range rule.Prefixes {
		if len(rest) > len(p) && strings.EqualFold(rest[:len(p)], p) && strings.HasPrefix(rest[len(p):], rule.Open) {
			return len(p), true
		}
	}
	return 0, false
}

// quotedLength returns the byte length of the quoted literal at the start of
// s, and whether its closer was found.
func quotedLength(s string, rule core.QuoteRule) (int, bool) {
	i := len(rule.Open)
	depth := 1
	backslash := rule.Escape == core.EscapeBackslash || rule.Escape == core.EscapeBoth
	doubled := rule.Escape == core.EscapeDoubled || rule.Escape == core.EscapeBoth
	for i < len(s) {
		switch {
		case backslash && s[i] == '\\':
			_, size := utf8.DecodeRuneInString(s[min(i+1, len(s)):])
			i += 1 + size
			continue
		case rule.Escape == core.EscapeNested && strings.HasPrefix(s[i:], rule.Open):
			depth++
			i += len(rule.Open)
			continue
		case strings.HasPrefix(s[i:], rule.Close):
			if doubled && strings.HasPrefix(s[i+len(rule.Close):], rule.Close) {
				i += 2 * len(rule.Close)
				continue
			}
			i += len(rule.Close)
			depth--
			if rule.Escape != core.EscapeNested || depth == 0 {
				return i, true
			}
			continue
		}
		i++
	}
	return len(s), false
}

// dollarQuoted reads $tag$ ... $tag$. The tag is empty or a name that does
// not start with a digit, which keeps $1 a placeholder.
func (l *Lexer) dollarQuoted() (n int, terminated bool, ok bool) {
	rest := l.rest()
	if !strings.HasPrefix(rest, "$") {
		return 0, false, false
	}
	end := strings.IndexByte(rest[1:], '$')
	if end < 0 {
		return 0, false, false
	}
	tag := rest[1 : 1+end]
	for i, r := range tag {
		if (i == 0 && !l.dialect.IsWordStart(r)) || !l.dialect.IsWordPart(r) {
			return 0, false, false
		}
	}
	delim := "$" + tag + "$"
	closeAt := strings.Index(rest[len(delim):], delim)
	if closeAt < 0 {
		return len(rest), false, true
	}
	return len(delim) + closeAt + len(delim), true, true
}

// scanPlaceholder reads numbered ($1), named (:name, ${name}, :"name") and
// indexed (?, ?2) placeholders, in that order. Value holds the key.
func (l *Lexer) scanPlaceholder(pos token.Position) (token.Token, bool) {
	ph := l.dialect.Placeholders()
	rest := l.rest()

	for _, p := range ph.Numbered {
		if !strings.HasPrefix(rest, p) {
			continue
		}
		if digits := digitRun(rest[len(p):]); digits > 0 {
			lit := l.advance(len(p) + digits)
			return token.Token{Type: token.PLACEHOLDER, Literal: lit, Value: lit[len(p):], Pos: pos}, true
		}
	}

	for _, p := range ph.Named {
		if !strings.HasPrefix(rest, p) {
			continue
		}
		if tok, ok := l.namedPlaceholder(pos, p); ok {
			return tok, true
		}
	}

	for _, p := range ph.Indexed {
		if !strings.HasPrefix(rest, p) {
			continue
		}
		digits := digitRun(rest[len(p):])
		lit := l.advance(len(p) + digits)
		return token.Token{Type: token.PLACEHOLDER, Literal: lit, Value: lit[len(p):], Pos: pos}, true
	}
	return token.Token{}, false
}

func (l *Lexer) namedPlaceholder(pos token.Position, prefix string) (token.Token, bool) {
	body := l.rest()[len(prefix):]
	r, _ := utf8.DecodeRuneInString(body)

	var closer string
	switch {
	case l.dialect.IsWordStart(r):
		n := len(prefix) + l.wordLength(body)
		lit := l.advance(n)
		return token.Token{Type: token.PLACEHOLDER, Literal: lit, Value: lit[len(prefix):], Pos: pos}, true
	case r == '{':
		closer = "}"
	case r == '"' || r == '\'' || r == '`':
		closer = string(r)
	default:
		return token.Token{}, false
	}

	tok := token.Token{Type: token.PLACEHOLDER, Pos: pos}
	end := strings.Index(body[1:], closer)
	if end < 0 {
		tok.Flags |= token.Unterminated
		l.warn(pos, "unterminated placeholder")
		tok.Literal = l.advance(len(l.rest()))
		tok.Value = strings.TrimSpace(body[1:])
		return tok, true
	}
	tok.Literal = l.advance(len(prefix) + 1 + end + len(closer))
	tok.Value = strings.TrimSpace(body[1 : 1+end])
	return tok, true
}

// scanNumber reads decimal, exponent and hexadecimal numbers.
func (l *Lexer) scanNumber(pos token.Position) (token.Token, bool) {
	rest := l.rest()
	var n int
	switch {
	case len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') && isHex(rest[2]):
		n = 2
		for n < len(rest) && isHex(rest[n]) {
			n++
		}
	case isDigit(l.peek(0)), l.peek(0) == '.' && isDigit(l.peek(1)):
		n = digitRun(rest)
		if n < len(rest) && rest[n] == '.' {
			n++
			n += digitRun(rest[n:])
		}
		if n < len(rest) && (rest[n] == 'e' || rest[n] == 'E') {
			m := n + 1
			if m < len(rest) && (rest[m] == '+' || rest[m] == '-') {
				m++
			}
			if d := digitRun(rest[m:]); d > 0 {
				n = m + d
			}
		}
	default:
		return token.Token{}, false
	}

	typ := token.NUMBER
	if w := l.wordLength(rest); w > n {
		// A word that starts with digits: 1st_place, 0xFFg.
		typ, n = token.WORD, w
	}
	lit := l.advance(n)
	return token.Token{Type: typ, Literal: lit, Value: lit, Pos: pos}, true
}

func (l *Lexer) scanSymbolBlock(pos token.Position) (token.Token, bool) {
	for _, delim := range l.dialect.SymbolBlocks() {
		if !strings.HasPrefix(l.rest(), delim) {
			continue
		}
		lit := l.advance(len(delim))
		typ := token.BLOCK_END
		if l.dialect.IsBlockStart(lit) {
			typ = token.BLOCK_START
		}
		return token.Token{Type: typ, Literal: lit, Value: lit, Pos: pos}, true
	}
	return token.Token{}, false
}

func (l *Lexer) scanOperator(pos token.Position) (token.Token, bool) {
	for _, op := range l.dialect.Operators() {
		if !strings.HasPrefix(l.rest(), op) {
			continue
		}
		lit := l.advance(len(op))
		return token.Token{Type: token.OPERATOR, Literal: lit, Value: lit, Pos: pos}, true
	}
	return token.Token{}, false
}

// scanWords reads up to MaxPhraseWords whitespace-separated words and lets
// the dialect classify the longest reserved phrase among them. Only the
// words of that phrase are consumed.
func (l *Lexer) scanWords(pos token.Position) (token.Token, bool) {
	rest := l.rest()
	if r, _ := utf8.DecodeRuneInString(rest); !l.dialect.IsWordStart(r) {
		return token.Token{}, false
	}

	var (
		words []string
		ends  []int
		i     int
	)
	for len(words) < l.dialect.MaxPhraseWords() {
		n := l.wordLength(rest[i:])
		words = append(words, strings.ToUpper(rest[i:i+n]))
		i += n
		ends = append(ends, i)

		gap := len(rest[i:]) - len(strings.TrimLeftFunc(rest[i:], unicode.IsSpace))
		if gap == 0 {
			break
		}
		next, _ := utf8.DecodeRuneInString(rest[i+gap:])
		if !l.dialect.IsWordStart(next) {
			break
		}
		i += gap
	}

	typ, count := l.dialect.Classify(words)
	lit := l.advance(ends[count-1])
	tok := token.Token{Type: typ, Literal: lit, Value: lit, Pos: pos}
	if typ != token.WORD {
		tok.Value = dialect.NormalizePhrase(lit)
	}
	return tok, true
}

// wordLength returns the byte length of the word run at the start of s.
func (l *Lexer) wordLength(s string) int {
	for i, r := range s {
		if !l.dialect.IsWordPart(r) {
			return i
		}
	}
	return len(s)
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
