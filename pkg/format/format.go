// Package format lays out SQL text according to Options.
//
// Formatting works on the token stream produced by pkg/lexer, never on a
// syntax tree, so any input can be formatted: malformed SQL comes out with
// the same tokens it went in with.
package format

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
	"github.com/leapstack-labs/leapfmt/pkg/lexer"
)

// Formatter formats SQL text. It holds only read-only configuration and is
// safe for concurrent use.
type Formatter struct {
	opts   Options
	dense  map[string]struct{}
	logger *slog.Logger
}

// New validates opts and creates a Formatter. Dense operators the dialect
// does not lex are added to its operator lexicon.
func New(opts Options) (*Formatter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Dialect == nil {
		opts.Dialect = ansi.ANSI
	}
	d, err := withOperators(opts.Dialect, opts.DenseOperators)
	if err != nil {
		return nil, fmt.Errorf("%w: dense operators: %w", ErrInvalidOptions, err)
	}
	opts.Dialect = d
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dense := make(map[string]struct{}, len(opts.DenseOperators))
	for _, op := range opts.DenseOperators {
		dense[op] = struct{}{}
	}
	params := make(map[string]string, len(opts.Params))
	for k, v := range opts.Params {
		params[k] = v
	}
	opts.Params = params
	opts.DenseOperators = append([]string(nil), opts.DenseOperators...)

	return &Formatter{opts: opts, dense: dense, logger: logger}, nil
}

// withOperators returns d, extended with the operators of ops it lacks.
func withOperators(d *dialect.Dialect, ops []string) (*dialect.Dialect, error) {
	known := d.Operators()
	var missing []string
	for _, op := range ops {
		if !slices.Contains(known, op) && !slices.Contains(missing, op) {
			missing = append(missing, op)
		}
	}
	if len(missing) == 0 {
		return d, nil
	}
	return dialect.Extend(d, d.Name()).Operators(missing...).Build()
}

// Format formats sql. It never fails: lexical problems are logged as
// warnings and the affected text is kept as it was.
func (f *Formatter) Format(sql string) string {
	lx := lexer.New(sql, f.opts.Dialect)
	toks := lx.Tokenize()
	for _, w := range lx.Warnings() {
		f.logger.Warn("lexical problem", "dialect", f.opts.Dialect.Name(), "pos", w.Pos.String(), "message", w.Message)
	}

	toks = substituteParams(toks, f.opts.Params)
	toks = normalizeAliases(toks, f.opts.AliasMode, f.opts.Dialect)
	return newEngine(&f.opts, f.dense, toks).run()
}

// Options returns a copy of the formatter's options.
func (f *Formatter) Options() Options {
	return f.opts
}

// SQL formats sql with opts in one call.
func SQL(sql string, opts Options) (string, error) {
	f, err := New(opts)
	if err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return f.Format(sql), nil
}
