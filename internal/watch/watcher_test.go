package watch

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/barisgit/fluxstyle/config"
	"github.com/barisgit/fluxstyle/internal/logging"
	"github.com/barisgit/fluxstyle/internal/testutil"
)

type result struct {
	cfg *config.StyleConfig
	err error
}

func next(t *testing.T, results <-chan result) result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for a reload")
		return result{}
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := testutil.ProjectDir(t, map[string]string{"style.yaml": testutil.MinimalDocument})

	results := make(chan result, 8)
	w := New(config.ConfigLoadOptions{Dir: dir, ValidateStructure: true, ApplyDefaults: true, Quiet: true},
		func(cfg *config.StyleConfig, err error) { results <- result{cfg, err} })
	w.SetDebounce(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(logging.WithLogger(context.Background(), logging.New(io.Discard, true)))
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	initial := next(t, results)
	if initial.err != nil {
		t.Fatalf("Expected initial load to succeed, got %v", initial.err)
	}
	if len(initial.cfg.DaisyUI.Themes) != 2 {
		t.Errorf("Expected 2 themes initially, got %v", initial.cfg.DaisyUI.Themes)
	}

	testutil.WriteFile(t, dir, "style.yaml", "content: [\"index.html\"]\nplugins: [daisyui]\ndaisyui:\n  themes: [pastel]\n  darkTheme: business\n")
	broken := next(t, results)
	if !errors.Is(broken.err, config.ErrMalformedConfig) {
		t.Fatalf("Expected malformed reload, got %v", broken.err)
	}

	testutil.WriteFile(t, dir, "style.yaml", "content: [\"index.html\"]\nplugins: [daisyui]\ndaisyui:\n  themes: [pastel, business]\n  darkTheme: business\n")
	fixed := next(t, results)
	if fixed.err != nil {
		t.Fatalf("Expected fixed document to load, got %v", fixed.err)
	}
	if fixed.cfg.DaisyUI.DarkTheme != "business" {
		t.Errorf("Expected dark theme 'business', got '%s'", fixed.cfg.DaisyUI.DarkTheme)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the watcher to stop")
	}
}

func TestWatcherRelevant(t *testing.T) {
	dir := t.TempDir()

	byDir := New(config.ConfigLoadOptions{Dir: dir}, nil)
	byPath := New(config.ConfigLoadOptions{Path: filepath.Join(dir, "theme.yaml")}, nil)

	tests := []struct {
		name    string
		watcher *Watcher
		event   fsnotify.Event
		want    bool
	}{
		{"candidate write", byDir, fsnotify.Event{Name: filepath.Join(dir, "style.hcl"), Op: fsnotify.Write}, true},
		{"candidate removed", byDir, fsnotify.Event{Name: filepath.Join(dir, "style.yaml"), Op: fsnotify.Remove}, true},
		{"other file", byDir, fsnotify.Event{Name: filepath.Join(dir, "index.html"), Op: fsnotify.Write}, false},
		{"chmod only", byDir, fsnotify.Event{Name: filepath.Join(dir, "style.yaml"), Op: fsnotify.Chmod}, false},
		{"explicit path", byPath, fsnotify.Event{Name: filepath.Join(dir, "theme.yaml"), Op: fsnotify.Write}, true},
		{"candidate ignored with explicit path", byPath, fsnotify.Event{Name: filepath.Join(dir, "style.yaml"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.watcher.relevant(tt.event); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if byPath.Dir() != dir {
		t.Errorf("Expected watched dir %s, got %s", dir, byPath.Dir())
	}
}
