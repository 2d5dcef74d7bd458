package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// ReloadFunc receives the outcome of each reload triggered by a file change.
type ReloadFunc func(cfg *SiteConfiguration, err error)

// Watcher monitors configuration files and reloads them after changes settle.
type Watcher struct {
	paths        []string
	files        map[string]struct{}
	onReload     ReloadFunc
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	reloadMu     sync.Mutex
	stopOnce     sync.Once
	stopChan     chan struct{}
	reloadChan   chan struct{}
	debounceTime time.Duration
}

// NewWatcher creates a watcher for the given configuration sources.
func NewWatcher(paths []string, onReload ReloadFunc) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no configuration files to watch")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs := make([]string, 0, len(paths))
	files := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		abs = append(abs, a)
		files[a] = struct{}{}
	}

	return &Watcher{
		paths:        abs,
		files:        files,
		onReload:     onReload,
		watcher:      watcher,
		stopChan:     make(chan struct{}),
		reloadChan:   make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}, nil
}

// SetDebounce changes the quiet period before a reload. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounceTime = d
}

// Start watches the directories holding the configuration files (more
// reliable than watching files that editors replace on save).
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	seen := map[string]bool{}
	for _, p := range w.paths {
		dir := filepath.Dir(p)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
		}
	}

	slog.Info("Starting configuration watcher", logfields.Count(len(w.paths)))

	go w.watchLoop(ctx)
	go w.reloadLoop(ctx, w.debounceTime)
	return nil
}

// Stop ends watching and waits for an in-flight reload to finish, so the
// ReloadFunc is never called after Stop returns. It is safe to call more than
// once but must not be called from the ReloadFunc.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		slog.Info("Stopping configuration watcher")
		close(w.stopChan)
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	})
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()
}

func (w *Watcher) stopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if _, watched := w.files[filepath.Clean(event.Name)]; !watched {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.Path(event.Name), logfields.Event(event.Op.String()))
				w.triggerReload()
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context, debounce time.Duration) {
	var reloadTimer *time.Timer
	stopTimer := func() {
		if reloadTimer != nil {
			reloadTimer.Stop()
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-w.stopChan:
			stopTimer()
			return
		case <-w.reloadChan:
			stopTimer()
			reloadTimer = time.AfterFunc(debounce, w.reload)
		}
	}
}

func (w *Watcher) triggerReload() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
		// Reload already pending
	}
}

func (w *Watcher) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()
	if w.stopped() {
		return
	}
	slog.Info("Reloading configuration", logfields.Count(len(w.paths)))
	cfg, err := LoadFiles(w.paths...)
	if err != nil {
		slog.Error("Failed to reload configuration", logfields.Error(err))
	}
	if w.onReload != nil {
		w.onReload(cfg, err)
	}
}
