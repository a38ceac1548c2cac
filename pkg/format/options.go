package format

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
)

// ErrInvalidOptions is returned by New when the options cannot be used.
var ErrInvalidOptions = errors.New("invalid format options")

// KeywordCase controls how reserved words are printed.
type KeywordCase int

// Keyword casing policies.
const (
	CaseUpper KeywordCase = iota
	CaseLower
	CasePreserve
)

var keywordCaseNames = []string{"upper", "lower", "preserve"}

func (c KeywordCase) String() string {
	return enumName(keywordCaseNames, int(c), "KeywordCase")
}

// ParseKeywordCase parses "upper", "lower" or "preserve".
func ParseKeywordCase(s string) (KeywordCase, error) {
	i, err := parseEnum(keywordCaseNames, s, "keyword case")
	return KeywordCase(i), err
}

// MarshalText implements encoding.TextMarshaler.
func (c KeywordCase) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *KeywordCase) UnmarshalText(text []byte) error {
	v, err := ParseKeywordCase(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// NewlineMode decides when a clause, block or list is spread over lines.
type NewlineMode int

// Newline modes.
const (
	// NewlineAlways breaks every clause body and CASE block.
	NewlineAlways NewlineMode = iota
	// NewlineNever keeps bodies on the line of their keyword.
	NewlineNever
	// NewlineLineWidth breaks when the inline form would exceed LineWidth.
	NewlineLineWidth
	// NewlineItemCount breaks when a list holds more than ItemCount items.
	NewlineItemCount
	// NewlineHybrid breaks when either threshold is exceeded.
	NewlineHybrid
)

var newlineModeNames = []string{"always", "never", "lineWidth", "itemCount", "hybrid"}

func (m NewlineMode) String() string {
	return enumName(newlineModeNames, int(m), "NewlineMode")
}

// ParseNewlineMode parses a newline mode name, ignoring case.
func ParseNewlineMode(s string) (NewlineMode, error) {
	i, err := parseEnum(newlineModeNames, s, "newline mode")
	return NewlineMode(i), err
}

// MarshalText implements encoding.TextMarshaler.
func (m NewlineMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *NewlineMode) UnmarshalText(text []byte) error {
	v, err := ParseNewlineMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// AliasMode controls the AS keyword in front of aliases.
type AliasMode int

// Alias modes.
const (
	// AliasSelect adds AS to implicit aliases in select lists only.
	AliasSelect AliasMode = iota
	// AliasAlways adds AS to implicit aliases in select lists and table references.
	AliasAlways
	// AliasNever removes AS from aliases in select lists and table references.
	AliasNever
)

var aliasModeNames = []string{"select", "always", "never"}

func (m AliasMode) String() string {
	return enumName(aliasModeNames, int(m), "AliasMode")
}

// ParseAliasMode parses "always", "never" or "select".
func ParseAliasMode(s string) (AliasMode, error) {
	i, err := parseEnum(aliasModeNames, s, "alias mode")
	return AliasMode(i), err
}

// MarshalText implements encoding.TextMarshaler.
func (m AliasMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *AliasMode) UnmarshalText(text []byte) error {
	v, err := ParseAliasMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func enumName(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func parseEnum(names []string, s, what string) (int, error) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q (want one of %s)", ErrInvalidOptions, what, s, strings.Join(names, ", "))
}

// Options configures a Formatter.
type Options struct {
	// Dialect drives tokenization. Nil means ANSI.
	Dialect *dialect.Dialect

	// IndentWidth is the number of spaces per indentation level.
	IndentWidth int
	// UseTabs indents with one tab per level instead of spaces.
	UseTabs bool

	KeywordCase KeywordCase
	NewlineMode NewlineMode
	// LineWidth is the column budget for NewlineLineWidth and NewlineHybrid.
	LineWidth int
	// ItemCount is the list size threshold for NewlineItemCount and NewlineHybrid.
	ItemCount int
	AliasMode AliasMode

	// BlankLinesBetweenStatements is the number of empty lines after each ';'.
	BlankLinesBetweenStatements int

	// DenseOperators are printed without surrounding spaces, on top of the
	// dialect's own dense operators. New adds the ones the dialect does not
	// lex to its operator lexicon.
	DenseOperators []string

	// Params maps placeholder keys to replacement text. A bare "?" is keyed
	// by its 1-based position among bare placeholders.
	Params map[string]string

	// Logger receives lexical warnings. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the default formatting options.
func DefaultOptions() Options {
	return Options{
		Dialect:                     ansi.ANSI,
		IndentWidth:                 2,
		KeywordCase:                 CaseUpper,
		NewlineMode:                 NewlineAlways,
		LineWidth:                   80,
		ItemCount:                   3,
		AliasMode:                   AliasSelect,
		BlankLinesBetweenStatements: 1,
	}
}

// Validate reports every problem with the options.
func (o *Options) Validate() error {
	var errs []error
	if o.IndentWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: indent width must not be negative, got %d", ErrInvalidOptions, o.IndentWidth))
	}
	if o.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w: line width must be positive, got %d", ErrInvalidOptions, o.LineWidth))
	}
	if o.ItemCount < 0 {
		errs = append(errs, fmt.Errorf("%w: item count must not be negative, got %d", ErrInvalidOptions, o.ItemCount))
	}
	if o.BlankLinesBetweenStatements < 0 {
		errs = append(errs, fmt.Errorf("%w: blank lines must not be negative, got %d", ErrInvalidOptions, o.BlankLinesBetweenStatements))
	}
	if o.KeywordCase < CaseUpper || o.KeywordCase > CasePreserve {
		errs = append(errs, fmt.Errorf("%w: unknown keyword case %d", ErrInvalidOptions, o.KeywordCase))
	}
	if o.NewlineMode < NewlineAlways || o.NewlineMode > NewlineHybrid {
		errs = append(errs, fmt.Errorf("%w: unknown newline mode %d", ErrInvalidOptions, o.NewlineMode))
	}
	if o.AliasMode < AliasSelect || o.AliasMode > AliasNever {
		errs = append(errs, fmt.Errorf("%w: unknown alias mode %d", ErrInvalidOptions, o.AliasMode))
	}
	for _, op := range o.DenseOperators {
		if strings.TrimSpace(op) == "" {
			errs = append(errs, fmt.Errorf("%w: empty dense operator", ErrInvalidOptions))
		}
	}
	return errors.Join(errs...)
}

// indentUnit returns the text of one indentation level.
func (o *Options) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.IndentWidth)
}
