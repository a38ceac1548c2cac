package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{EOF, "EOF"},
		{COMMAND, "COMMAND"},
		{BINARY_COMMAND, "BINARY_COMMAND"},
		{BLOCK_END, "BLOCK_END"},
		{WORD, "WORD"},
		{TokenType(999), "TokenType(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestTokenType_Classes(t *testing.T) {
	for _, typ := range []TokenType{COMMAND, BINARY_COMMAND, DEPENDENT_CLAUSE, LOGICAL_OPERATOR, KEYWORD, FUNCTION} {
		assert.True(t, typ.IsReserved(), typ.String())
	}
	for _, typ := range []TokenType{EOF, BLOCK_START, OPERATOR, IDENT, WORD, STRING} {
		assert.False(t, typ.IsReserved(), typ.String())
	}

	assert.True(t, LINE_COMMENT.IsComment())
	assert.True(t, BLOCK_COMMENT.IsComment())
	assert.False(t, STRING.IsComment())

	assert.True(t, WORD.IsName())
	assert.True(t, IDENT.IsName())
	assert.True(t, QUOTED_IDENT.IsName())
	assert.False(t, KEYWORD.IsName())
}

func TestToken_Helpers(t *testing.T) {
	var zero Token
	assert.True(t, zero.IsEOF(), "zero token should be EOF")

	tok := Token{Type: COMMAND, Literal: "group  by", Value: "GROUP BY"}
	assert.True(t, tok.Is("group by"))
	assert.False(t, tok.Is("group"))
	assert.False(t, tok.Unterminated())

	tok.Flags |= Unterminated
	assert.True(t, tok.Unterminated())
	assert.Equal(t, `COMMAND("group  by")`, tok.String())
}

func TestPosition(t *testing.T) {
	assert.False(t, Position{}.IsValid())
	assert.Equal(t, "-", Position{}.String())

	p := Position{Line: 3, Column: 7, Offset: 20}
	assert.True(t, p.IsValid())
	assert.Equal(t, "3:7", p.String())
}
