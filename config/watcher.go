package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/resthook/logging"
)

// ChangeHandler is called with the freshly parsed configuration after the
// watched file changes. A nil config means the file was removed.
type ChangeHandler func(cfg *Config)

// Watcher reloads chain configuration when the file changes on disk.
//
// The parent directory is watched rather than the file itself, so editors
// and deploy tools that replace the file (write to temp, rename over) are
// still observed. Already-built chains are never mutated; callers build new
// chains from the config passed to the change handler.
type Watcher struct {
	mu sync.Mutex

	path     string
	watcher  *fsnotify.Watcher
	onChange ChangeHandler
	logger   *logging.Logger

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the logger for watch events and reload failures.
// Defaults to the null logger.
func WithWatcherLogger(l *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watch starts watching a configuration file. The handler fires once per
// observed change with the re-parsed configuration; parse failures are
// logged and skipped so a half-written file cannot tear down a running host.
func Watch(path string, onChange ChangeHandler, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		watcher:  fsw,
		onChange: onChange,
		logger:   logging.Null,
		closeCh:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	log := w.logger.WithComponent("config-watcher")

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, log)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// handleEvent reloads the config when the watched file is touched.
func (w *Watcher) handleEvent(event fsnotify.Event, log *logging.Logger) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create):
		cfg, err := Load(w.path)
		if err != nil {
			log.Warn("reload of %s failed: %v", w.path, err)
			return
		}
		log.Debug("configuration reloaded from %s", w.path)
		w.onChange(cfg)

	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		log.Debug("configuration file %s removed", w.path)
		w.onChange(nil)
	}
}
