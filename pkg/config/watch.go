package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a configuration file for changes and reloads it.
// Reloads are debounced to prevent reload storms when editors perform
// multiple writes per save.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration
	onReload func(*Config)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// DefaultDebounceInterval is the delay between the last observed file event
// and the reload it triggers.
const DefaultDebounceInterval = 100 * time.Millisecond

// NewWatcher creates a watcher for the configuration file at path.
// onReload is invoked with each successfully loaded configuration;
// load failures are logged and the previous configuration stays active.
func NewWatcher(path string, logger *slog.Logger, onReload func(*Config)) (*Watcher, error) {
	if onReload == nil {
		return nil, fmt.Errorf("onReload callback is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     path,
		watcher:  fsw,
		logger:   logger,
		debounce: DefaultDebounceInterval,
		onReload: onReload,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching the configuration file. It watches the containing
// directory so that atomic rename-based saves are observed.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher is already running")
	}

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w.running = true
	go w.loop()

	w.logger.Info("watching configuration file", "path", w.path)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	w.running = false

	close(w.stopCh)
	<-w.doneCh
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.doneCh)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("configuration watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		w.logger.Error("configuration reload failed, keeping previous configuration",
			"path", w.path,
			"error", err,
		)
		return
	}

	w.logger.Info("configuration reloaded", "path", w.path)
	w.onReload(cfg)
}
