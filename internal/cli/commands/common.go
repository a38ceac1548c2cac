// Package commands implements the leapfmt subcommands.
package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/pkg/format"
)

// newFormatter builds a formatter from the configuration in the command context.
func newFormatter(cmd *cobra.Command) (*format.Formatter, error) {
	cfg := config.GetConfig(cmd.Context())
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = config.GetLogger(cmd.Context())
	return format.New(opts)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isSQLFile reports whether path names a SQL source file.
func isSQLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sql")
}

// skipDir reports whether a directory is left out of recursive walks.
func skipDir(name string) bool {
	return name == "node_modules" || (len(name) > 1 && name[0] == '.')
}

// collectFiles expands paths into SQL files. Files named explicitly are kept
// whatever their extension; directories contribute their *.sql files.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if isSQLFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// formatFile formats one file. With write set a changed file is rewritten
// in place, keeping its permissions.
func formatFile(f *format.Formatter, path string, write bool) (formatted string, changed bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	formatted = f.Format(string(src))
	changed = formatted != string(src)
	if write && changed {
		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return "", false, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return formatted, changed, nil
}

// styles colours command output. The renderer drops colour when w is not a terminal.
type styles struct {
	ok      lipgloss.Style
	changed lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		changed: r.NewStyle().Foreground(lipgloss.Color("3")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		bold:    r.NewStyle().Bold(true),
	}
}
