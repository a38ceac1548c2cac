package dialect

import (
	"testing"

	"github.com/leapstack-labs/leapfmt/pkg/token"
	"github.com/stretchr/testify/assert"
)

func tok(typ token.TokenType, lit string) token.Token {
	value := lit
	if typ.IsReserved() || typ == token.BLOCK_START || typ == token.BLOCK_END {
		value = NormalizePhrase(lit)
	}
	return token.Token{Type: typ, Literal: lit, Value: value}
}

func TestMemberAccess(t *testing.T) {
	dot := tok(token.OPERATOR, ".")

	tests := []struct {
		name     string
		tok      token.Token
		prev     token.Token
		wantType token.TokenType
	}{
		{"END after dot", tok(token.BLOCK_END, "end"), dot, token.IDENT},
		{"command after dot", tok(token.COMMAND, "from"), dot, token.IDENT},
		{"END without dot", tok(token.BLOCK_END, "END"), tok(token.WORD, "x"), token.BLOCK_END},
		{"paren after dot untouched", tok(token.BLOCK_START, "("), dot, token.BLOCK_START},
		{"word after dot untouched", tok(token.WORD, "col"), dot, token.WORD},
		{"keyword after comma", tok(token.KEYWORD, "AS"), tok(token.OPERATOR, ","), token.KEYWORD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MemberAccess(tt.tok, Neighbors{Prev: tt.prev})
			assert.Equal(t, tt.wantType, got.Type)
			if tt.wantType == token.IDENT {
				assert.Equal(t, tt.tok.Literal, got.Value, "demoted tokens keep their source text")
			}
		})
	}
}

func TestFunctionCall(t *testing.T) {
	window := FunctionCall("WINDOW")
	paren := tok(token.BLOCK_START, "(")

	got := window(tok(token.COMMAND, "window"), Neighbors{Next: paren})
	assert.Equal(t, token.FUNCTION, got.Type)
	assert.Equal(t, "WINDOW", got.Value)

	got = window(tok(token.COMMAND, "WINDOW"), Neighbors{Next: tok(token.WORD, "w")})
	assert.Equal(t, token.COMMAND, got.Type, "WINDOW w AS (...) stays a clause")

	got = window(tok(token.COMMAND, "SELECT"), Neighbors{Next: paren})
	assert.Equal(t, token.COMMAND, got.Type, "unlisted words are untouched")
}

func TestBetween(t *testing.T) {
	items := Between("ITEMS", "COLLECTION", "TERMINATED")
	kw := tok(token.KEYWORD, "items")

	got := items(kw, Neighbors{
		Prev: tok(token.KEYWORD, "COLLECTION"),
		Next: tok(token.KEYWORD, "TERMINATED BY"),
	})
	assert.Equal(t, token.KEYWORD, got.Type)

	got = items(kw, Neighbors{Prev: tok(token.COMMAND, "SELECT"), Next: tok(token.OPERATOR, ",")})
	assert.Equal(t, token.WORD, got.Type)
	assert.Equal(t, "items", got.Value)
}

func TestChain(t *testing.T) {
	assert.Nil(t, Chain())
	assert.Nil(t, Chain(nil, nil))

	single := Chain(nil, MemberAccess)
	assert.NotNil(t, single)

	both := Chain(MemberAccess, FunctionCall("WINDOW"))
	got := both(tok(token.COMMAND, "WINDOW"), Neighbors{
		Prev: tok(token.OPERATOR, "."),
		Next: tok(token.BLOCK_START, "("),
	})
	assert.Equal(t, token.IDENT, got.Type, "first rule demotes, second no longer matches")
}
