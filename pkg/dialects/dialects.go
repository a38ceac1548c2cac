// Package dialects is the catalog of built-in SQL dialects.
//
// The catalog is an immutable value: it is built once from the dialect
// packages and never changes afterwards. Custom dialects loaded from YAML
// specs go into a new catalog derived with With.
package dialects

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/databricks"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/duckdb"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/postgres"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/redshift"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/snowflake"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/spark"
)

// ErrUnknownDialect is returned when a name matches no dialect or alias.
var ErrUnknownDialect = errors.New("unknown dialect")

// DefaultDialect is the dialect used when none is configured.
const DefaultDialect = "ansi"

// Catalog maps dialect names and aliases to dialects.
type Catalog struct {
	byName    map[string]*dialect.Dialect
	canonical []*dialect.Dialect
}

// NewCatalog creates a catalog. Names and aliases are case-insensitive and
// must be unique across all dialects.
func NewCatalog(ds ...*dialect.Dialect) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*dialect.Dialect)}
	for _, d := range ds {
		if err := c.add(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(d *dialect.Dialect) error {
	if d == nil {
		return errors.New("nil dialect")
	}
	for _, name := range append([]string{d.Name()}, d.Aliases()...) {
		key := normalize(name)
		if key == "" {
			return fmt.Errorf("dialect %q: empty name or alias", d.Name())
		}
		if other, dup := c.byName[key]; dup {
			return fmt.Errorf("dialect %q: name %q already used by %q", d.Name(), name, other.Name())
		}
		c.byName[key] = d
	}
	c.canonical = append(c.canonical, d)
	slices.SortFunc(c.canonical, func(a, b *dialect.Dialect) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return nil
}

// With returns a new catalog holding c's dialects plus ds.
func (c *Catalog) With(ds ...*dialect.Dialect) (*Catalog, error) {
	return NewCatalog(append(slices.Clone(c.canonical), ds...)...)
}

// Lookup returns the dialect registered under name or alias.
func (c *Catalog) Lookup(name string) (*dialect.Dialect, error) {
	if d, ok := c.byName[normalize(name)]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownDialect, name, strings.Join(c.Names(), ", "))
}

// Names returns the canonical dialect names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.canonical))
	for i, d := range c.canonical {
		names[i] = d.Name()
	}
	return names
}

// All returns the dialects sorted by name.
func (c *Catalog) All() []*dialect.Dialect {
	return slices.Clone(c.canonical)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var builtin = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(
		ansi.ANSI,
		postgres.Postgres,
		redshift.Redshift,
		spark.Spark,
		databricks.Databricks,
		snowflake.Snowflake,
		duckdb.DuckDB,
	)
	if err != nil {
		panic(err)
	}
	return c
})

// Builtin returns the catalog of built-in dialects.
func Builtin() *Catalog {
	return builtin()
}

// Lookup finds a built-in dialect by name or alias.
func Lookup(name string) (*dialect.Dialect, error) {
	return Builtin().Lookup(name)
}

// Names returns the names of the built-in dialects.
func Names() []string {
	return Builtin().Names()
}
