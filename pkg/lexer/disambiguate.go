package lexer

import (
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/token"
)

// disambiguate runs rule over every token. Prev is the last token already
// rewritten and Next the next raw token; comments are invisible to both.
func disambiguate(toks []token.Token, rule dialect.Disambiguator) []token.Token {
	if rule == nil {
		return toks
	}

	// nextCode[i] is the index of the first non-comment token after i.
	nextCode := make([]int, len(toks))
	following := len(toks) - 1 // the EOF token
	for i := len(toks) - 1; i >= 0; i-- {
		nextCode[i] = following
		if !toks[i].Type.IsComment() {
			following = i
		}
	}

	var prev token.Token
	for i, tok := range toks {
		if tok.Type == token.EOF || tok.Type.IsComment() {
			continue
		}
		var next token.Token
		if j := nextCode[i]; j > i {
			next = toks[j]
		}
		toks[i] = rule(tok, dialect.Neighbors{Prev: prev, Next: next})
		prev = toks[i]
	}
	return toks
}
