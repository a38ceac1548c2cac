package dialect

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/token"
)

// ErrInvalidConfig is wrapped by every dialect configuration error.
var ErrInvalidConfig = errors.New("invalid dialect configuration")

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	config       *core.DialectConfig
	without      []string
	disambiguate []Disambiguator
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{config: &core.DialectConfig{Name: name}}
}

// New creates a dialect builder from a DialectConfig.
// The config is copied; later changes to cfg do not affect the builder.
func New(cfg *core.DialectConfig) *Builder {
	return &Builder{config: cfg.Clone()}
}

// Extend creates a builder seeded with everything base defines, including
// its disambiguation rule, under a new name. Aliases are not inherited.
func Extend(base *Dialect, name string) *Builder {
	cfg := base.Config()
	cfg.Name = name
	cfg.Aliases = nil
	b := &Builder{config: cfg}
	if base.disambiguate != nil {
		b.disambiguate = append(b.disambiguate, base.disambiguate)
	}
	return b
}

// Merge appends every list of cfg to the builder's lists. Scalar settings
// (Overlap, IdentChars) are taken from cfg only when set there; the name
// is never changed.
func (b *Builder) Merge(cfg *core.DialectConfig) *Builder {
	if cfg == nil {
		return b
	}
	b.Aliases(cfg.Aliases...)
	b.Commands(cfg.Commands...)
	b.BinaryCommands(cfg.BinaryCommands...)
	b.DependentClauses(cfg.DependentClauses...)
	b.LogicalOperators(cfg.LogicalOperators...)
	b.Keywords(cfg.Keywords...)
	b.Functions(cfg.Functions...)
	b.InlineClauses(cfg.InlineClauses...)
	if cfg.Overlap != core.KeywordsFirst {
		b.Overlap(cfg.Overlap)
	}
	b.Quotes(cfg.Quotes...)
	b.IndexedPlaceholders(cfg.Placeholders.Indexed...)
	b.NumberedPlaceholders(cfg.Placeholders.Numbered...)
	b.NamedPlaceholders(cfg.Placeholders.Named...)
	b.LineComments(cfg.LineComments...)
	for _, c := range cfg.BlockComments {
		b.BlockComment(c.Open, c.Close)
	}
	b.Operators(cfg.Operators...)
	b.DenseOperators(cfg.DenseOperators...)
	for _, pair := range cfg.Blocks {
		b.Block(pair.Open, pair.Close)
	}
	if cfg.IdentChars != (core.IdentChars{}) {
		b.IdentChars(cfg.IdentChars.First, cfg.IdentChars.Rest)
	}
	return b
}

// Aliases adds alternative catalog names.
func (b *Builder) Aliases(names ...string) *Builder {
	b.config.Aliases = append(b.config.Aliases, names...)
	return b
}

// Commands adds reserved commands (phrases that start a clause).
func (b *Builder) Commands(phrases ...string) *Builder {
	b.config.Commands = append(b.config.Commands, phrases...)
	return b
}

// BinaryCommands adds joins and set operations.
func (b *Builder) BinaryCommands(phrases ...string) *Builder {
	b.config.BinaryCommands = append(b.config.BinaryCommands, phrases...)
	return b
}

// DependentClauses adds phrases attached to a preceding clause (ON, WHEN).
func (b *Builder) DependentClauses(phrases ...string) *Builder {
	b.config.DependentClauses = append(b.config.DependentClauses, phrases...)
	return b
}

// LogicalOperators adds AND/OR style operators.
func (b *Builder) LogicalOperators(phrases ...string) *Builder {
	b.config.LogicalOperators = append(b.config.LogicalOperators, phrases...)
	return b
}

// Keywords adds reserved keywords.
func (b *Builder) Keywords(phrases ...string) *Builder {
	b.config.Keywords = append(b.config.Keywords, phrases...)
	return b
}

// Functions adds reserved function names.
func (b *Builder) Functions(names ...string) *Builder {
	b.config.Functions = append(b.config.Functions, names...)
	return b
}

// InlineClauses marks commands whose body stays on the command's line.
func (b *Builder) InlineClauses(phrases ...string) *Builder {
	b.config.InlineClauses = append(b.config.InlineClauses, phrases...)
	return b
}

// Without removes expanded phrases from every reserved list. It applies at
// Build time, after all additions, so it also removes inherited phrases.
func (b *Builder) Without(phrases ...string) *Builder {
	b.without = append(b.without, phrases...)
	return b
}

// Overlap sets which of keyword or function wins for words in both lists.
func (b *Builder) Overlap(p core.OverlapPrecedence) *Builder {
	b.config.Overlap = p
	return b
}

// Quotes adds quoting rules.
func (b *Builder) Quotes(rules ...core.QuoteRule) *Builder {
	b.config.Quotes = append(b.config.Quotes, rules...)
	return b
}

// ResetQuotes drops every quoting rule collected so far, typically the ones
// inherited through Extend.
func (b *Builder) ResetQuotes() *Builder {
	b.config.Quotes = nil
	return b
}

// ResetPlaceholders drops every placeholder prefix collected so far.
func (b *Builder) ResetPlaceholders() *Builder {
	b.config.Placeholders = core.PlaceholderConfig{}
	return b
}

// IndexedPlaceholders adds prefixes such as ? that may stand alone or take digits.
func (b *Builder) IndexedPlaceholders(prefixes ...string) *Builder {
	b.config.Placeholders.Indexed = append(b.config.Placeholders.Indexed, prefixes...)
	return b
}

// NumberedPlaceholders adds prefixes such as $ that require digits.
func (b *Builder) NumberedPlaceholders(prefixes ...string) *Builder {
	b.config.Placeholders.Numbered = append(b.config.Placeholders.Numbered, prefixes...)
	return b
}

// NamedPlaceholders adds prefixes such as : or @ that take a name.
func (b *Builder) NamedPlaceholders(prefixes ...string) *Builder {
	b.config.Placeholders.Named = append(b.config.Placeholders.Named, prefixes...)
	return b
}

// LineComments adds line comment delimiters.
func (b *Builder) LineComments(delims ...string) *Builder {
	b.config.LineComments = append(b.config.LineComments, delims...)
	return b
}

// BlockComment adds a block comment delimiter pair.
func (b *Builder) BlockComment(open, close string) *Builder {
	b.config.BlockComments = append(b.config.BlockComments, core.DelimiterPair{Open: open, Close: close})
	return b
}

// Operators adds operators to the lexicon.
func (b *Builder) Operators(ops ...string) *Builder {
	b.config.Operators = append(b.config.Operators, ops...)
	return b
}

// DenseOperators marks operators that are printed without spaces.
func (b *Builder) DenseOperators(ops ...string) *Builder {
	b.config.DenseOperators = append(b.config.DenseOperators, ops...)
	return b
}

// Block adds a block delimiter pair.
func (b *Builder) Block(open, close string) *Builder {
	b.config.Blocks = append(b.config.Blocks, core.DelimiterPair{Open: open, Close: close})
	return b
}

// IdentChars sets extra word characters: first may start a word, rest may follow.
func (b *Builder) IdentChars(first, rest string) *Builder {
	b.config.IdentChars = core.IdentChars{First: first, Rest: rest}
	return b
}

// Disambiguate appends disambiguation rules. Rules run in the order added,
// after any rule inherited through Extend.
func (b *Builder) Disambiguate(ds ...Disambiguator) *Builder {
	b.disambiguate = append(b.disambiguate, ds...)
	return b
}

// MustBuild is Build for dialect tables declared in code; it panics on a
// configuration error.
func (b *Builder) MustBuild() *Dialect {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// Build validates the configuration and returns the compiled dialect.
// All problems are reported together, each wrapping ErrInvalidConfig.
func (b *Builder) Build() (*Dialect, error) {
	cfg := b.config.Clone()
	v := &validator{}

	d := &Dialect{
		name:         cfg.Name,
		aliases:      slices.Clone(cfg.Aliases),
		config:       cfg,
		reserved:     make(map[token.TokenType]*phraseTable),
		tier:         make(map[string]token.TokenType),
		inline:       make(map[string]struct{}),
		dense:        make(map[string]struct{}),
		wordOpen:     make(map[string]struct{}),
		wordClose:    make(map[string]struct{}),
		closers:      make(map[string]string),
		identFirst:   cfg.IdentChars.First,
		identRest:    cfg.IdentChars.Rest,
		disambiguate: Chain(b.disambiguate...),
	}

	if cfg.Name == "" {
		v.add("dialect has no name")
	}

	b.compileBlocks(d, cfg, v)

	removed := make(map[string]struct{})
	for _, p := range v.expand("without", b.without) {
		removed[p] = struct{}{}
	}
	keep := func(phrases []string) []string {
		out := phrases[:0]
		for _, p := range phrases {
			if _, drop := removed[p]; drop {
				continue
			}
			// Word block delimiters always classify as blocks.
			if _, isBlock := d.wordOpen[p]; isBlock {
				continue
			}
			if _, isBlock := d.wordClose[p]; isBlock {
				continue
			}
			out = append(out, p)
		}
		return out
	}

	lists := map[token.TokenType][]string{
		token.COMMAND:          cfg.Commands,
		token.BINARY_COMMAND:   cfg.BinaryCommands,
		token.DEPENDENT_CLAUSE: cfg.DependentClauses,
		token.LOGICAL_OPERATOR: cfg.LogicalOperators,
	}
	for _, typ := range reservedOrder {
		phrases := keep(v.expand(typ.String(), lists[typ]))
		table := &phraseTable{}
		for _, p := range phrases {
			v.checkPhrase(d, p)
			table.add(p)
		}
		d.reserved[typ] = table
		d.maxWords = max(d.maxWords, table.maxWords)
	}
	if len(d.reserved[token.COMMAND].phrases) == 0 {
		v.add("no reserved commands")
	}

	keywords := keep(v.expand("KEYWORD", cfg.Keywords))
	functions := keep(v.expand("FUNCTION", cfg.Functions))
	first, second := keywords, functions
	firstType, secondType := token.KEYWORD, token.FUNCTION
	if cfg.Overlap == core.FunctionsFirst {
		first, second = functions, keywords
		firstType, secondType = token.FUNCTION, token.KEYWORD
	}
	for _, p := range second {
		v.checkPhrase(d, p)
		d.tier[p] = secondType
	}
	for _, p := range first {
		v.checkPhrase(d, p)
		d.tier[p] = firstType
	}
	for p := range d.tier {
		d.tierMax = max(d.tierMax, strings.Count(p, " ")+1)
	}
	d.maxWords = max(d.maxWords, d.tierMax, 1)

	for _, p := range v.expand("inline clause", cfg.InlineClauses) {
		d.inline[p] = struct{}{}
	}

	b.compileLexicon(d, cfg, v)

	if err := v.err(cfg.Name); err != nil {
		return nil, err
	}
	return d, nil
}

func (b *Builder) compileBlocks(d *Dialect, cfg *core.DialectConfig, v *validator) {
	if len(cfg.Blocks) == 0 {
		v.add("no block delimiters")
	}
	for _, pair := range cfg.Blocks {
		if pair.Open == "" || pair.Close == "" {
			v.add("block pair %q/%q has an empty delimiter", pair.Open, pair.Close)
			continue
		}
		open, closeDelim := NormalizePhrase(pair.Open), NormalizePhrase(pair.Close)
		d.closers[open] = closeDelim
		for _, delim := range []string{open, closeDelim} {
			word := isWordRune([]rune(delim)[0])
			switch {
			case word && delim == open:
				d.wordOpen[delim] = struct{}{}
			case word:
				d.wordClose[delim] = struct{}{}
			case !slices.Contains(d.symbolBlocks, delim):
				d.symbolBlocks = append(d.symbolBlocks, delim)
			}
		}
	}
	sortLongestFirst(d.symbolBlocks)
}

func (b *Builder) compileLexicon(d *Dialect, cfg *core.DialectConfig, v *validator) {
	if len(cfg.Quotes) == 0 {
		v.add("no quote rules")
	}
	for _, q := range cfg.Quotes {
		if q.Open == "" || q.Close == "" {
			v.add("quote rule %q/%q has an empty delimiter", q.Open, q.Close)
		}
	}
	d.quotes = slices.Clone(cfg.Quotes)
	slices.SortStableFunc(d.quotes, func(a, b core.QuoteRule) int {
		return len(b.Open) - len(a.Open)
	})

	d.lineComment = slices.Clone(cfg.LineComments)
	sortLongestFirst(d.lineComment)
	d.blockCmt = slices.Clone(cfg.BlockComments)
	var commentOpeners []string
	commentOpeners = append(commentOpeners, d.lineComment...)
	for _, c := range d.blockCmt {
		if c.Open == "" || c.Close == "" {
			v.add("block comment %q/%q has an empty delimiter", c.Open, c.Close)
			continue
		}
		commentOpeners = append(commentOpeners, c.Open)
	}

	seen := make(map[string]struct{})
	for _, op := range cfg.Operators {
		switch {
		case op == "":
			v.add("empty operator")
			continue
		case strings.IndexFunc(op, unicode.IsSpace) >= 0:
			v.add("operator %q contains whitespace", op)
		case strings.IndexFunc(op, d.IsWordPart) >= 0:
			v.add("operator %q contains word characters", op)
		}
		if _, dup := seen[op]; dup {
			v.add("duplicate operator %q", op)
			continue
		}
		seen[op] = struct{}{}
		for _, c := range commentOpeners {
			if strings.HasPrefix(op, c) {
				v.add("operator %q collides with comment delimiter %q", op, c)
			}
		}
		for _, p := range cfg.Placeholders.Indexed {
			if strings.HasPrefix(op, p) {
				v.add("operator %q collides with placeholder prefix %q", op, p)
			}
		}
		d.operators = append(d.operators, op)
	}
	sortLongestFirst(d.operators)

	for _, op := range cfg.DenseOperators {
		d.dense[op] = struct{}{}
	}
}

func sortLongestFirst(s []string) {
	slices.SortStableFunc(s, func(a, b string) int {
		return len(b) - len(a)
	})
}

// validator collects configuration problems.
type validator struct {
	problems []string
}

func (v *validator) add(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

// expand runs phrase expansion and normalizes the results.
func (v *validator) expand(what string, patterns []string) []string {
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			v.add("%s: empty phrase", strings.ToLower(what))
		}
	}
	phrases, err := ExpandPhrases(patterns...)
	if err != nil {
		v.add("%s: %v", strings.ToLower(what), err)
		return nil
	}
	for i, p := range phrases {
		phrases[i] = NormalizePhrase(p)
	}
	return phrases
}

func (v *validator) checkPhrase(d *Dialect, phrase string) {
	for _, word := range strings.Fields(phrase) {
		runes := []rune(word)
		if !d.IsWordStart(runes[0]) && !isWordRune(runes[0]) {
			v.add("phrase %q contains non-word characters", phrase)
			return
		}
		for _, r := range runes[1:] {
			if !d.IsWordPart(r) {
				v.add("phrase %q contains non-word characters", phrase)
				return
			}
		}
	}
}

func (v *validator) err(name string) error {
	if len(v.problems) == 0 {
		return nil
	}
	errs := make([]error, len(v.problems))
	for i, p := range v.problems {
		errs[i] = fmt.Errorf("%w: %s: %s", ErrInvalidConfig, name, p)
	}
	return errors.Join(errs...)
}
