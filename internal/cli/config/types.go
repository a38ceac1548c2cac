// Package config loads leapfmt CLI configuration.
//
// Values come from built-in defaults, a .leapfmt.yaml file, LEAPFMT_*
// environment variables and command-line flags, in increasing order of
// precedence. Config.Options turns the result into format.Options.
package config

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects"
	"github.com/leapstack-labs/leapfmt/pkg/format"
)

// Default values.
const (
	DefaultIndent     = 2
	DefaultLineWidth  = 80
	DefaultItemCount  = 3
	DefaultBlankLines = 1
)

// Config holds all CLI configuration options.
type Config struct {
	Dialect     string             `koanf:"dialect"`
	DialectFile string             `koanf:"dialect_file"`
	Indent      int                `koanf:"indent"`
	Tabs        bool               `koanf:"tabs"`
	KeywordCase format.KeywordCase `koanf:"keyword_case"`
	NewlineMode format.NewlineMode `koanf:"newline_mode"`
	LineWidth   int                `koanf:"line_width"`
	ItemCount   int                `koanf:"item_count"`
	AliasMode   format.AliasMode   `koanf:"alias_mode"`
	BlankLines  int                `koanf:"blank_lines"`
	Dense       []string           `koanf:"dense"`
	Params      map[string]string  `koanf:"params"`
	Jobs        int                `koanf:"jobs"`
	Verbose     bool               `koanf:"verbose"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Dialect:     dialects.DefaultDialect,
		Indent:      DefaultIndent,
		KeywordCase: format.CaseUpper,
		NewlineMode: format.NewlineAlways,
		LineWidth:   DefaultLineWidth,
		ItemCount:   DefaultItemCount,
		AliasMode:   format.AliasSelect,
		BlankLines:  DefaultBlankLines,
		Jobs:        runtime.NumCPU(),
	}
}

// Options resolves the dialect and returns validated formatting options.
func (c *Config) Options() (format.Options, error) {
	d, err := c.ResolveDialect()
	if err != nil {
		return format.Options{}, err
	}

	opts := format.DefaultOptions()
	opts.Dialect = d
	opts.IndentWidth = c.Indent
	opts.UseTabs = c.Tabs
	opts.KeywordCase = c.KeywordCase
	opts.NewlineMode = c.NewlineMode
	opts.LineWidth = c.LineWidth
	opts.ItemCount = c.ItemCount
	opts.AliasMode = c.AliasMode
	opts.BlankLinesBetweenStatements = c.BlankLines
	opts.DenseOperators = c.Dense
	opts.Params = c.Params

	if err := opts.Validate(); err != nil {
		return format.Options{}, err
	}
	return opts, nil
}

// ResolveDialect returns the dialect named by the configuration. A dialect
// file wins over a dialect name.
func (c *Config) ResolveDialect() (*dialect.Dialect, error) {
	if c.DialectFile != "" {
		d, err := dialects.Load(c.DialectFile, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid dialect file: %w", err)
		}
		return d, nil
	}
	name := c.Dialect
	if name == "" {
		name = dialects.DefaultDialect
	}
	return dialects.Lookup(name)
}
