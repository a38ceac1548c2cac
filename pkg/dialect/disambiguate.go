package dialect

import (
	"strings"

	"github.com/leapstack-labs/leapfmt/pkg/token"
)

// Neighbors is the bounded context handed to a Disambiguator.
// Comments are skipped on both sides; a missing neighbor is an EOF token.
type Neighbors struct {
	// Prev is the last token already emitted (after disambiguation).
	Prev token.Token
	// Next is the next raw token (before disambiguation).
	Next token.Token
}

// Disambiguator reclassifies a token that static precedence got wrong.
// It must be a pure function of its arguments and return the token
// unchanged when no rule applies.
type Disambiguator func(tok token.Token, n Neighbors) token.Token

// Chain runs disambiguators in order, feeding each the previous result.
func Chain(ds ...Disambiguator) Disambiguator {
	var active []Disambiguator
	for _, d := range ds {
		if d != nil {
			active = append(active, d)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(tok token.Token, n Neighbors) token.Token {
		for _, d := range active {
			tok = d(tok, n)
		}
		return tok
	}
}

// MemberAccess demotes a reserved word or word block delimiter that follows
// the "." operator to a plain identifier: a.END, t.from.
func MemberAccess(tok token.Token, n Neighbors) token.Token {
	if n.Prev.Type != token.OPERATOR || n.Prev.Value != "." {
		return tok
	}
	if !tok.Type.IsReserved() && !isWordBlock(tok) {
		return tok
	}
	tok.Type = token.IDENT
	tok.Value = tok.Literal
	return tok
}

func isWordBlock(tok token.Token) bool {
	if tok.Type != token.BLOCK_START && tok.Type != token.BLOCK_END {
		return false
	}
	return tok.Literal != "" && isWordRune(rune(tok.Literal[0]))
}

// FunctionCall returns a Disambiguator that reclassifies the listed reserved
// words as function names when a block start immediately follows them.
// It resolves words such as WINDOW that are both a clause and a function.
func FunctionCall(words ...string) Disambiguator {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return func(tok token.Token, n Neighbors) token.Token {
		if !tok.Type.IsReserved() || n.Next.Type != token.BLOCK_START {
			return tok
		}
		if _, ok := set[tok.Value]; !ok {
			return tok
		}
		tok.Type = token.FUNCTION
		return tok
	}
}

// Between returns a Disambiguator that keeps word reserved only when the
// previous token is before and the next token is after; anywhere else the
// word becomes a plain WORD. It handles keywords that only mean something
// inside one fixed phrase (COLLECTION ITEMS TERMINATED).
func Between(word, before, after string) Disambiguator {
	word = strings.ToUpper(word)
	return func(tok token.Token, n Neighbors) token.Token {
		if !tok.Type.IsReserved() || tok.Value != word {
			return tok
		}
		if strings.EqualFold(lastWord(n.Prev.Literal), before) && strings.EqualFold(firstWord(n.Next.Literal), after) {
			return tok
		}
		tok.Type = token.WORD
		tok.Value = tok.Literal
		return tok
	}
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

func lastWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[len(f)-1]
	}
	return ""
}
