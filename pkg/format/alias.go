package format

import (
	"strings"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/token"
)

type aliasContext int

const (
	contextOther aliasContext = iota
	contextSelect
	contextFrom
)

// normalizeAliases inserts or drops the AS keyword in front of aliases.
//
// An alias is a name that follows the end of an expression and is followed
// by the end of a list item. Only select lists, and with AliasAlways or
// AliasNever the table references of FROM and JOIN, are considered. Dialects
// that do not reserve AS are left alone.
func normalizeAliases(toks []token.Token, mode AliasMode, d *dialect.Dialect) []token.Token {
	if typ, _ := d.Classify([]string{"AS"}); typ != token.KEYWORD {
		return toks
	}

	code := make([]int, 0, len(toks))
	for i, tok := range toks {
		if !tok.Type.IsComment() && tok.Type != token.EOF {
			code = append(code, i)
		}
	}
	at := func(k int) token.Token {
		if k < 0 || k >= len(code) {
			return token.Token{Type: token.EOF}
		}
		return toks[code[k]]
	}

	var (
		levels = []aliasContext{contextOther}
		insert = map[int]bool{}
		drop   = map[int]bool{}
	)
	for k, idx := range code {
		tok := toks[idx]
		switch tok.Type {
		case token.COMMAND:
			levels[len(levels)-1] = commandContext(tok)
		case token.BINARY_COMMAND:
			levels[len(levels)-1] = contextOther
			if strings.HasSuffix(tok.Value, "JOIN") || strings.HasSuffix(tok.Value, "APPLY") {
				levels[len(levels)-1] = contextFrom
			}
		case token.BLOCK_START:
			levels = append(levels, contextOther)
			continue
		case token.BLOCK_END:
			if len(levels) > 1 {
				levels = levels[:len(levels)-1]
			}
			continue
		case token.OPERATOR:
			if tok.Value == ";" {
				levels = levels[:1]
				levels[0] = contextOther
			}
			continue
		}

		ctx := levels[len(levels)-1]
		if !aliasApplies(mode, ctx) || !endsExpression(at(k-1)) {
			continue
		}
		switch {
		case mode == AliasNever && tok.Type == token.KEYWORD && tok.Value == "AS":
			if at(k+1).Type.IsName() && endsAliasedItem(at(k+2), ctx) {
				drop[idx] = true
			}
		case mode != AliasNever && tok.Type.IsName():
			if endsAliasedItem(at(k+1), ctx) {
				insert[idx] = true
			}
		}
	}

	if len(insert) == 0 && len(drop) == 0 {
		return toks
	}
	out := make([]token.Token, 0, len(toks)+len(insert))
	for i, tok := range toks {
		if drop[i] {
			continue
		}
		if insert[i] {
			out = append(out, token.Token{Type: token.KEYWORD, Literal: "AS", Value: "AS", Pos: tok.Pos})
		}
		out = append(out, tok)
	}
	return out
}

func commandContext(tok token.Token) aliasContext {
	switch {
	case strings.HasPrefix(tok.Value, "SELECT"):
		return contextSelect
	case tok.Value == "FROM":
		return contextFrom
	}
	return contextOther
}

func aliasApplies(mode AliasMode, ctx aliasContext) bool {
	switch ctx {
	case contextSelect:
		return true
	case contextFrom:
		return mode != AliasSelect
	}
	return false
}

// endsExpression reports whether an alias may follow tok.
func endsExpression(tok token.Token) bool {
	switch tok.Type {
	case token.WORD, token.IDENT, token.QUOTED_IDENT,
		token.STRING, token.NUMBER, token.PLACEHOLDER, token.BLOCK_END:
		return true
	}
	return false
}

// endsAliasedItem reports whether tok can follow an alias in ctx.
func endsAliasedItem(tok token.Token, ctx aliasContext) bool {
	switch tok.Type {
	case token.EOF, token.COMMAND, token.BINARY_COMMAND, token.BLOCK_END:
		return true
	case token.OPERATOR:
		return tok.Value == "," || tok.Value == ";"
	case token.DEPENDENT_CLAUSE:
		return ctx == contextFrom
	}
	return false
}
