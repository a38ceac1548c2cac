package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/pkg/dialects"
	"github.com/leapstack-labs/leapfmt/pkg/format"
)

const (
	replPrompt     = "leapfmt> "
	replContPrompt = "     ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Format SQL interactively",
		Long: `Start an interactive shell that formats each statement as soon as it
is terminated with a semicolon. Type .help for the shell commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cfg := config.GetConfig(cmd.Context())
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = config.GetLogger(cmd.Context())
	session, err := newREPLSession(opts)
	if err != nil {
		return err
	}

	var historyFile string
	if dir, err := os.UserCacheDir(); err == nil {
		historyFile = filepath.Join(dir, "leapfmt", "history")
		_ = os.MkdirAll(filepath.Dir(historyFile), 0o750)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "leapfmt REPL (dialect: %s)\n", opts.Dialect.Name())
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			session.reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if session.handle(line, out) {
			break
		}
		if session.pending() {
			rl.SetPrompt(replContPrompt)
		} else {
			rl.SetPrompt(replPrompt)
		}
	}
	return nil
}

// replSession holds the statement being typed and the active formatter.
type replSession struct {
	opts      format.Options
	formatter *format.Formatter
	buf       strings.Builder
}

func newREPLSession(opts format.Options) (*replSession, error) {
	f, err := format.New(opts)
	if err != nil {
		return nil, err
	}
	return &replSession{opts: opts, formatter: f}, nil
}

func (s *replSession) reset() {
	s.buf.Reset()
}

func (s *replSession) pending() bool {
	return s.buf.Len() > 0
}

// handle processes one input line and reports whether the session ends.
func (s *replSession) handle(line string, out io.Writer) bool {
	trimmed := strings.TrimSpace(line)
	if !s.pending() {
		if trimmed == "" {
			return false
		}
		if strings.HasPrefix(trimmed, ".") {
			return s.dotCommand(trimmed, out)
		}
	}

	s.buf.WriteString(line)
	s.buf.WriteString("\n")
	if !strings.HasSuffix(trimmed, ";") {
		return false
	}

	_, _ = io.WriteString(out, s.formatter.Format(s.buf.String()))
	_, _ = fmt.Fprintln(out)
	s.buf.Reset()
	return false
}

func (s *replSession) dotCommand(line string, out io.Writer) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)

	case ".dialect":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(out, "dialect: %s\n", s.opts.Dialect.Name())
			return false
		}
		d, err := dialects.Lookup(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		opts := s.opts
		opts.Dialect = d
		f, err := format.New(opts)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		s.opts, s.formatter = opts, f
		_, _ = fmt.Fprintf(out, "dialect: %s\n", d.Name())

	default:
		_, _ = fmt.Fprintf(out, "Unknown command: %s (type .help for commands)\n", parts[0])
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .dialect [name]  Show or switch the dialect
  .quit / .exit    Exit the REPL

Tips:
  - Statements are formatted when a line ends with a semicolon (;)
  - Ctrl+C discards the statement being typed
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	names := dialects.Names()
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name)
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".dialect", items...),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
