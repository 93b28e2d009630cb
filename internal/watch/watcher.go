// Package watch reloads the style configuration whenever its document changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/barisgit/fluxstyle/config"
	"github.com/barisgit/fluxstyle/internal/logging"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-runs the load operation when the document changes. onChange
// receives the result of every load, including the initial one, and is
// called from the Run goroutine only.
type Watcher struct {
	options  config.ConfigLoadOptions
	onChange func(*config.StyleConfig, error)
	debounce time.Duration
}

// New creates a watcher for the document options would load.
func New(options config.ConfigLoadOptions, onChange func(*config.StyleConfig, error)) *Watcher {
	if options.Dir == "" {
		options.Dir = "."
	}
	return &Watcher{
		options:  options,
		onChange: onChange,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides the quiet period before a reload.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	if w.options.Path != "" {
		return filepath.Dir(w.options.Path)
	}
	return w.options.Dir
}

// Run loads once, then reloads after every relevant change until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.Dir()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Dir(), err)
	}
	logger.Debug("watching for configuration changes", "dir", w.Dir())

	w.reload()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("configuration file event", "file", event.Name, "op", event.Op.String())
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := config.NewConfigManager(w.options).LoadConfig()
	w.onChange(cfg, err)
}

// relevant reports whether event touches a file the loader would read.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)
	if w.options.Path != "" {
		return name == filepath.Base(w.options.Path)
	}
	for _, candidate := range config.CandidateFiles {
		if name == candidate {
			return true
		}
	}
	return false
}
