package commands

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/pkg/format"
)

// DefaultDebounce is how long a file must be quiet before it is formatted.
const DefaultDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Format SQL files as they change",
		Long: `Watch a directory tree and rewrite *.sql files in place whenever they
are created or saved. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newFormatter(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := &Watcher{
				Dir:       args[0],
				Formatter: f,
				Debounce:  debounce,
				Out:       cmd.OutOrStdout(),
				Logger:    config.GetLogger(cmd.Context()),
			}
			return w.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", DefaultDebounce, "Quiet period before a changed file is formatted")
	return cmd
}

// Watcher reformats SQL files under Dir when they change.
type Watcher struct {
	Dir       string
	Formatter *format.Formatter
	Debounce  time.Duration
	Out       io.Writer
	Logger    *slog.Logger

	// ready, if set, is closed once the directory tree is being watched.
	ready chan struct{}

	mu     sync.Mutex
	timers map[string]*time.Timer
	outMu  sync.Mutex
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Logger == nil {
		w.Logger = slog.New(slog.DiscardHandler)
	}
	if w.Out == nil {
		w.Out = io.Discard
	}
	w.timers = make(map[string]*time.Timer)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := w.watchDir(watcher, w.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Dir, err)
	}
	s := newStyles(w.Out)
	w.print(s.muted.Render(fmt.Sprintf("Watching %s for *.sql changes (Ctrl+C to stop)", w.Dir)))
	if w.ready != nil {
		close(w.ready)
	}

	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handle(watcher, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watcher error", "error", err)
		}
	}
}

// watchDir recursively adds a directory to the watcher.
func (w *Watcher) watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func (w *Watcher) handle(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !skipDir(info.Name()) {
				if err := w.watchDir(watcher, event.Name); err != nil {
					w.Logger.Warn("failed to watch directory", "path", event.Name, "error", err)
				}
			}
			return
		}
	}
	if !isSQLFile(event.Name) {
		return
	}

	path := event.Name
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.Debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.reformat(path)
	})
}

func (w *Watcher) reformat(path string) {
	_, changed, err := formatFile(w.Formatter, path, true)
	if err != nil {
		w.Logger.Warn("format failed", "path", path, "error", err)
		return
	}
	w.Logger.Debug("formatted file", "path", path, "changed", changed)
	if changed {
		s := newStyles(w.Out)
		w.print(fmt.Sprintf("%s %s", s.changed.Render("reformatted"), path))
	}
}

func (w *Watcher) print(line string) {
	w.outMu.Lock()
	defer w.outMu.Unlock()
	_, _ = fmt.Fprintln(w.Out, line)
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}
