package format

import (
	"strconv"

	"github.com/leapstack-labs/leapfmt/pkg/token"
)

// substituteParams replaces placeholders whose key has a value in params.
// Bare positional placeholders (?) are keyed "1", "2", ... in order of
// appearance.
func substituteParams(toks []token.Token, params map[string]string) []token.Token {
	if len(params) == 0 {
		return toks
	}
	positional := 0
	for i, tok := range toks {
		if tok.Type != token.PLACEHOLDER {
			continue
		}
		key := tok.Value
		if key == "" {
			positional++
			key = strconv.Itoa(positional)
		}
		value, ok := params[key]
		if !ok {
			continue
		}
		toks[i] = token.Token{Type: token.STRING, Literal: value, Value: value, Pos: tok.Pos}
	}
	return toks
}
