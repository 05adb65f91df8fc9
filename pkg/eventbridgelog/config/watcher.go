package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/observability"
)

const sourceFile = "file"

// Watcher holds the Settings loaded from a file and reloads them when the
// file changes. Every load yields a fresh Settings value; readers never see
// a partially applied file. A file that fails to load leaves the previous
// Settings in place.
type Watcher struct {
	path    string
	logger  *slog.Logger
	metrics observability.MetricsRecorder

	mu       sync.RWMutex
	current  Settings
	onChange []func(Settings)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the logger for loads and rejected reloads.
func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithMetrics sets the recorder for settings loads.
func WithMetrics(m observability.MetricsRecorder) WatcherOption {
	return func(w *Watcher) {
		w.metrics = m
	}
}

// NewWatcher creates a Watcher and performs the initial load.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		path:    filepath.Clean(path),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.metrics == nil {
		w.metrics = observability.NoopMetrics{}
	}

	s, err := w.load(context.Background())
	if err != nil {
		return nil, err
	}
	w.current = s
	return w, nil
}

// Settings returns the current (latest) settings.
func (w *Watcher) Settings() Settings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a callback invoked whenever the settings reload.
func (w *Watcher) OnChange(fn func(Settings)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Reload forces an immediate re-read of the settings file.
func (w *Watcher) Reload() (Settings, error) {
	s, err := w.load(context.Background())
	if err != nil {
		return Settings{}, err
	}
	w.apply(s)
	return s, nil
}

// Watch starts a background goroutine that reloads the settings on file
// changes. The parent directory is watched so editors that replace the file
// are picked up. Call the returned stop function to clean up; it waits for
// the goroutine to exit.
func (w *Watcher) Watch() (stop func(), err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("settings watcher add %s: %w", dir, err)
	}

	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		defer fw.Close()
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != w.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				s, err := w.load(context.Background())
				if err != nil {
					observability.LogSettingsReloadFailed(w.logger, w.path, err)
					continue
				}
				w.apply(s)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				observability.LogSettingsReloadFailed(w.logger, w.path, err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}, nil
}

func (w *Watcher) apply(s Settings) {
	w.mu.Lock()
	w.current = s
	callbacks := make([]func(Settings), len(w.onChange))
	copy(callbacks, w.onChange)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn(s)
	}
}

func (w *Watcher) load(ctx context.Context) (Settings, error) {
	s, err := LoadSettingsFile(w.path)
	w.metrics.RecordSettingsLoad(ctx, sourceFile, err)
	if err != nil {
		return Settings{}, err
	}
	observability.LogSettingsLoaded(w.logger, w.path, s.App.Environment)
	return s, nil
}
