package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the available SQL dialects",
		Long: `List the built-in SQL dialects with their aliases, comment syntax,
placeholders and dense operators. A dialect loaded with --dialect-file is
listed with them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := dialects.Builtin()
			cfg := config.GetConfig(cmd.Context())
			if cfg.DialectFile != "" {
				d, err := cfg.ResolveDialect()
				if err != nil {
					return err
				}
				if catalog, err = catalog.With(d); err != nil {
					return err
				}
			}
			renderDialects(cmd.OutOrStdout(), catalog.All())
			return nil
		},
	}
}

func renderDialects(w io.Writer, ds []*dialect.Dialect) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Dialect", "Aliases", "Comments", "Placeholders", "Dense"})

	for _, d := range ds {
		comments := append([]string(nil), d.LineComments()...)
		for _, bc := range d.BlockComments() {
			comments = append(comments, bc.Open+" "+bc.Close)
		}
		ph := d.Placeholders()
		var placeholders []string
		placeholders = append(placeholders, ph.Indexed...)
		for _, p := range ph.Numbered {
			placeholders = append(placeholders, p+"1")
		}
		for _, p := range ph.Named {
			placeholders = append(placeholders, p+"name")
		}
		t.AppendRow(table.Row{
			d.Name(),
			list(d.Aliases()),
			list(comments),
			list(placeholders),
			list(d.Config().DenseOperators),
		})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d dialects)\n", len(ds))
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, " ")
}
