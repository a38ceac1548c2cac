package dialects

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapfmt/pkg/core"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
)

// Spec is the YAML form of a custom dialect. Without Extends it describes a
// dialect from scratch; with Extends its lists are appended to the base
// dialect's.
//
//	name: warehouse
//	extends: postgres
//	commands: ["QUALIFY"]
//	disambiguate:
//	  function_call: [WINDOW]
type Spec struct {
	core.DialectConfig `yaml:",inline"`

	Extends           string           `yaml:"extends"`
	ResetQuotes       bool             `yaml:"reset_quotes"`
	ResetPlaceholders bool             `yaml:"reset_placeholders"`
	Without           []string         `yaml:"without"`
	Disambiguate      DisambiguateSpec `yaml:"disambiguate"`
}

// DisambiguateSpec selects the built-in disambiguation rules.
type DisambiguateSpec struct {
	MemberAccess bool          `yaml:"member_access"`
	FunctionCall []string      `yaml:"function_call"`
	Between      []BetweenSpec `yaml:"between"`
}

// BetweenSpec keeps Word reserved only between Before and After.
type BetweenSpec struct {
	Word   string `yaml:"word"`
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// Load reads a dialect spec file. Extends is resolved against c, or the
// built-in catalog when c is nil.
func Load(path string, c *Catalog) (*dialect.Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect spec: %w", err)
	}
	d, err := Parse(data, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and builds a dialect spec. Unknown fields are rejected.
func Parse(data []byte, c *Catalog) (*dialect.Dialect, error) {
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse dialect spec: %w", err)
	}
	return spec.Build(c)
}

// Build compiles the spec.
func (s *Spec) Build(c *Catalog) (*dialect.Dialect, error) {
	if c == nil {
		c = Builtin()
	}

	var b *dialect.Builder
	if s.Extends != "" {
		base, err := c.Lookup(s.Extends)
		if err != nil {
			return nil, fmt.Errorf("dialect %q extends: %w", s.Name, err)
		}
		b = dialect.Extend(base, s.Name)
	} else {
		b = dialect.NewDialect(s.Name)
	}

	if s.ResetQuotes {
		b.ResetQuotes()
	}
	if s.ResetPlaceholders {
		b.ResetPlaceholders()
	}
	b.Merge(&s.DialectConfig).Without(s.Without...)

	if s.Disambiguate.MemberAccess {
		b.Disambiguate(dialect.MemberAccess)
	}
	if len(s.Disambiguate.FunctionCall) > 0 {
		b.Disambiguate(dialect.FunctionCall(s.Disambiguate.FunctionCall...))
	}
	for _, r := range s.Disambiguate.Between {
		b.Disambiguate(dialect.Between(r.Word, r.Before, r.After))
	}
	return b.Build()
}
