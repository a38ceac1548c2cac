package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/pkg/format"
)

// ErrUnformatted is returned by format --check when some input would change.
var ErrUnformatted = errors.New("input is not formatted")

// stdinName is how standard input is reported.
const stdinName = "<stdin>"

// FormatOptions holds options for the format command.
type FormatOptions struct {
	Write bool
	Check bool
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:     "format [paths...]",
		Aliases: []string{"fmt"},
		Short:   "Format SQL files or standard input",
		Long: `Format SQL text.

Arguments may be files or directories; directories are searched recursively
for *.sql files. With no arguments, or with "-", SQL is read from standard
input and the result is written to standard output.`,
		Example: `  # Format a query from a pipe
  echo "select a,b from t" | leapfmt format

  # Rewrite every SQL file under models/
  leapfmt format -w models/

  # Fail in CI when a file is not formatted
  leapfmt format --check --dialect postgres .

  # Substitute placeholders while formatting
  leapfmt format --param id=42 query.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Write the result back to the source files")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Report inputs that are not formatted and fail")
	cmd.Flags().StringToString("param", nil, "Placeholder substitution, key=value (repeatable)")
	cmd.Flags().IntP("jobs", "j", 0, "Files formatted in parallel (default: number of CPUs)")
	cmd.MarkFlagsMutuallyExclusive("write", "check")

	return cmd
}

type fileResult struct {
	path      string
	formatted string
	changed   bool
}

func runFormat(cmd *cobra.Command, args []string, opts *FormatOptions) error {
	f, err := newFormatter(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if len(args) == 0 && isTerminal(cmd.InOrStdin()) {
			return errors.New("no input: pass files or directories, or pipe SQL on standard input")
		}
		return formatStdin(cmd, f, opts)
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	results, err := formatFiles(cmd, f, files, opts.Write)
	if err != nil {
		return err
	}

	switch {
	case opts.Check:
		return reportCheck(cmd.OutOrStdout(), results)
	case opts.Write:
		reportWrite(cmd.OutOrStdout(), results)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		if len(results) > 1 {
			_, _ = fmt.Fprintf(out, "==> %s <==\n", r.path)
		}
		_, _ = io.WriteString(out, r.formatted)
	}
	return nil
}

func formatStdin(cmd *cobra.Command, f *format.Formatter, opts *FormatOptions) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}
	formatted := f.Format(string(src))
	if opts.Check {
		return reportCheck(cmd.OutOrStdout(), []fileResult{{
			path:    stdinName,
			changed: formatted != string(src),
		}})
	}
	_, err = io.WriteString(cmd.OutOrStdout(), formatted)
	return err
}

// formatFiles formats files in parallel. Results keep the order of files.
func formatFiles(cmd *cobra.Command, f *format.Formatter, files []string, write bool) ([]fileResult, error) {
	logger := config.GetLogger(cmd.Context())
	jobs := config.GetConfig(cmd.Context()).Jobs

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			formatted, changed, err := formatFile(f, path, write)
			if err != nil {
				return err
			}
			logger.Debug("formatted file", "path", path, "changed", changed)
			results[i] = fileResult{path: path, formatted: formatted, changed: changed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func reportCheck(w io.Writer, results []fileResult) error {
	s := newStyles(w)
	var changed []string
	for _, r := range results {
		if r.changed {
			changed = append(changed, r.path)
			_, _ = fmt.Fprintf(w, "%s %s\n", s.changed.Render("would reformat"), r.path)
		}
	}
	if len(changed) == 0 {
		_, _ = fmt.Fprintln(w, s.ok.Render(fmt.Sprintf("%s already formatted", plural(len(results), "input"))))
		return nil
	}
	_, _ = fmt.Fprintln(w, s.bold.Render(fmt.Sprintf("%s of %d would be reformatted", plural(len(changed), "input"), len(results))))
	return fmt.Errorf("%w: %s", ErrUnformatted, strings.Join(changed, ", "))
}

func reportWrite(w io.Writer, results []fileResult) {
	s := newStyles(w)
	n := 0
	for _, r := range results {
		if r.changed {
			n++
			_, _ = fmt.Fprintf(w, "%s %s\n", s.changed.Render("reformatted"), r.path)
		}
	}
	_, _ = fmt.Fprintln(w, s.muted.Render(fmt.Sprintf("%s reformatted, %d unchanged", plural(n, "file"), len(results)-n)))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
