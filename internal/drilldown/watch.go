package drilldown

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/logviews/pkg/core"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// LoadFunc reads the resolution inputs from a view document.
type LoadFunc func(path string) (Input, error)

// Watcher re-resolves a view document every time it changes on disk.
type Watcher struct {
	path     string
	load     LoadFunc
	logger   *slog.Logger
	Debounce time.Duration
}

// NewWatcher creates a watcher for the document at path.
// A nil logger discards log output.
func NewWatcher(path string, load LoadFunc, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		path:     filepath.Clean(path),
		load:     load,
		logger:   logger,
		Debounce: DefaultDebounce,
	}
}

// Run resolves the document once, then again after every change, passing each
// result to onChange. A document that fails to load is reported through the
// error argument and does not stop the watcher. onChange is always called from
// the goroutine running Run. Run returns when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func(*core.Drilldown, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace files instead of writing them.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.resolve(onChange)

	trigger := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.Debug("view document changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.Debounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			w.resolve(onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) resolve(onChange func(*core.Drilldown, error)) {
	in, err := w.load(w.path)
	if err != nil {
		w.logger.Warn("failed to load view document", slog.String("path", w.path), slog.String("error", err.Error()))
		onChange(nil, err)
		return
	}
	onChange(Resolve(in), nil)
}
