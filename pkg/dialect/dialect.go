// Package dialect provides compiled SQL dialect definitions for the lexer and
// the layout engine.
//
// A Dialect is built once from pure data (core.DialectConfig) through the
// fluent Builder and is immutable afterwards, so a single value can be shared
// by any number of concurrent formatting calls. Concrete dialects live in
// pkg/dialects/*/ packages.
package dialect

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/token"
)

// reservedOrder is the classification priority of the reserved phrase types.
// KEYWORD and FUNCTION share the last tier; Overlap decides between them.
var reservedOrder = []token.TokenType{
	token.COMMAND,
	token.BINARY_COMMAND,
	token.DEPENDENT_CLAUSE,
	token.LOGICAL_OPERATOR,
}

// phraseTable is the case-normalized lookup for one reserved type.
type phraseTable struct {
	phrases  map[string]struct{}
	maxWords int
}

func (t *phraseTable) add(phrase string) {
	if t.phrases == nil {
		t.phrases = make(map[string]struct{})
	}
	t.phrases[phrase] = struct{}{}
	if n := strings.Count(phrase, " ") + 1; n > t.maxWords {
		t.maxWords = n
	}
}

func (t *phraseTable) has(phrase string) bool {
	_, ok := t.phrases[phrase]
	return ok
}

// Dialect is a compiled, read-only SQL dialect.
type Dialect struct {
	name    string
	aliases []string
	config  *core.DialectConfig

	reserved map[token.TokenType]*phraseTable
	// tier holds the keyword/function tier after overlap resolution.
	tier        map[string]token.TokenType
	tierMax     int
	maxWords    int
	inline      map[string]struct{}
	dense       map[string]struct{}
	operators   []string
	quotes      []core.QuoteRule
	lineComment []string
	blockCmt    []core.DelimiterPair

	// Block delimiters, split into symbol and word forms.
	symbolBlocks []string
	wordOpen     map[string]struct{}
	wordClose    map[string]struct{}
	closers      map[string]string

	identFirst string
	identRest  string

	disambiguate Disambiguator
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// Aliases returns the alternative names of the dialect.
func (d *Dialect) Aliases() []string {
	return append([]string(nil), d.aliases...)
}

// Config returns a copy of the pure data configuration the dialect was built from.
func (d *Dialect) Config() *core.DialectConfig {
	return d.config.Clone()
}

// MaxPhraseWords is the longest reserved phrase, in words, across all types.
func (d *Dialect) MaxPhraseWords() int {
	return d.maxWords
}

// Classify returns the token type of the longest reserved phrase that
// starts the given words, trying the reserved types in priority order, and
// how many words it spans. Words must already be upper-cased. When no
// phrase matches, the word-block delimiters (CASE, END) are tried, and
// finally (WORD, 1) is returned.
func (d *Dialect) Classify(words []string) (token.TokenType, int) {
	if len(words) == 0 {
		return token.EOF, 0
	}
	for _, typ := range reservedOrder {
		table := d.reserved[typ]
		if table == nil {
			continue
		}
		for n := min(table.maxWords, len(words)); n > 0; n-- {
			if table.has(strings.Join(words[:n], " ")) {
				return typ, n
			}
		}
	}
	for n := min(d.tierMax, len(words)); n > 0; n-- {
		if typ, ok := d.tier[strings.Join(words[:n], " ")]; ok {
			return typ, n
		}
	}
	if _, ok := d.wordOpen[words[0]]; ok {
		return token.BLOCK_START, 1
	}
	if _, ok := d.wordClose[words[0]]; ok {
		return token.BLOCK_END, 1
	}
	return token.WORD, 1
}

// IsInlineClause reports whether the command's body stays on its line.
func (d *Dialect) IsInlineClause(command string) bool {
	_, ok := d.inline[strings.ToUpper(command)]
	return ok
}

// IsDense reports whether the operator is always printed without spaces.
func (d *Dialect) IsDense(op string) bool {
	_, ok := d.dense[op]
	return ok
}

// Operators returns the operator lexicon, longest first.
func (d *Dialect) Operators() []string {
	return d.operators
}

// Quotes returns the quoting rules, longest opener first.
func (d *Dialect) Quotes() []core.QuoteRule {
	return d.quotes
}

// Placeholders returns the placeholder prefixes.
func (d *Dialect) Placeholders() core.PlaceholderConfig {
	return d.config.Placeholders
}

// LineComments returns the line comment delimiters.
func (d *Dialect) LineComments() []string {
	return d.lineComment
}

// BlockComments returns the block comment delimiter pairs.
func (d *Dialect) BlockComments() []core.DelimiterPair {
	return d.blockCmt
}

// SymbolBlocks returns the non-word block delimiters, openers and closers
// alike, longest first.
func (d *Dialect) SymbolBlocks() []string {
	return d.symbolBlocks
}

// IsBlockStart reports whether the delimiter opens a block.
func (d *Dialect) IsBlockStart(delim string) bool {
	_, ok := d.closers[strings.ToUpper(delim)]
	return ok
}

// Closer returns the closing delimiter paired with the opener.
func (d *Dialect) Closer(open string) string {
	return d.closers[strings.ToUpper(open)]
}

// IsWordStart reports whether r can begin a word.
func (d *Dialect) IsWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || strings.ContainsRune(d.identFirst, r)
}

// IsWordPart reports whether r can continue a word.
func (d *Dialect) IsWordPart(r rune) bool {
	return isWordRune(r) || strings.ContainsRune(d.identFirst, r) || strings.ContainsRune(d.identRest, r)
}

// Disambiguator returns the dialect's disambiguation rule, or nil.
func (d *Dialect) Disambiguator() Disambiguator {
	return d.disambiguate
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// NormalizePhrase upper-cases a phrase and collapses its inner whitespace.
func NormalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}
