package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ReloadEvent describes one manifest reload performed by the watcher.
type ReloadEvent struct {
	// Path is the absolute path of the reloaded manifest.
	Path string

	// Count is the number of descriptors the manifest now contributes.
	Count int

	// Removed is true when the manifest file was deleted and its
	// descriptors unregistered.
	Removed bool

	// Err holds the reload error, if any. Descriptors from the
	// previous successful load stay registered on error.
	Err error
}

// ReloadHandler is called after the watcher reloads a manifest.
type ReloadHandler func(event ReloadEvent)

// Watcher polls manifest files for changes and reloads them into a
// catalog. JSON (.json) and Lua (.lua) manifests are both supported.
type Watcher struct {
	mu       sync.RWMutex
	catalog  *Catalog
	files    map[string]time.Time
	handlers []ReloadHandler
	interval time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// NewWatcher creates a manifest watcher bound to a catalog.
func NewWatcher(c *Catalog, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		catalog:  c,
		files:    make(map[string]time.Time),
		interval: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch adds a manifest file to the watch list. The file does not
// need to exist yet; a later creation triggers its first load.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			w.files[absPath] = time.Time{}
			return nil
		}
		return err
	}

	w.files[absPath] = info.ModTime()
	return nil
}

// OnReload registers a handler for reload events.
func (w *Watcher) OnReload(handler ReloadHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins polling. It is a no-op if the watcher is running.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.pollLoop()
}

// Stop stops polling and waits for the poll goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

func (w *Watcher) pollLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.checkFiles()
		}
	}
}

func (w *Watcher) checkFiles() {
	w.mu.RLock()
	files := make(map[string]time.Time, len(w.files))
	for path, modTime := range w.files {
		files[path] = modTime
	}
	w.mu.RUnlock()

	for path, lastMod := range files {
		w.checkFile(path, lastMod)
	}
}

func (w *Watcher) checkFile(path string, lastMod time.Time) {
	info, err := os.Stat(path)

	if os.IsNotExist(err) {
		if lastMod.IsZero() {
			return
		}
		// Manifest deleted: unregister its descriptors.
		w.setModTime(path, time.Time{})
		w.catalog.UnregisterBySource(sourceFor(path))
		w.emit(ReloadEvent{Path: path, Removed: true})
		return
	}
	if err != nil {
		return
	}

	currentMod := info.ModTime()
	if currentMod.Equal(lastMod) {
		return
	}

	w.setModTime(path, currentMod)
	count, loadErr := w.reload(path)
	w.emit(ReloadEvent{Path: path, Count: count, Err: loadErr})
}

// Reload forces an immediate reload of a watched manifest, outside
// the polling cycle.
func (w *Watcher) Reload(path string) ReloadEvent {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ReloadEvent{Path: path, Err: err}
	}
	count, loadErr := w.reload(absPath)
	event := ReloadEvent{Path: absPath, Count: count, Err: loadErr}
	w.emit(event)
	return event
}

func (w *Watcher) reload(path string) (int, error) {
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		return LoadLuaManifestInto(w.catalog, path)
	}
	return LoadManifestInto(w.catalog, path)
}

func sourceFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		return "lua:" + path
	}
	return "manifest:" + path
}

func (w *Watcher) setModTime(path string, t time.Time) {
	w.mu.Lock()
	w.files[path] = t
	w.mu.Unlock()
}

// emit calls all handlers with panic recovery so a misbehaving
// handler cannot crash the poll goroutine.
func (w *Watcher) emit(event ReloadEvent) {
	w.mu.RLock()
	handlers := make([]ReloadHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() { _ = recover() }()
			handler(event)
		}()
	}
}
