package plugin

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/kwonoj/tauri-specta/app"
	"github.com/kwonoj/tauri-specta/event"
)

// ManifestChanged is emitted through the bridge when a watched plugin
// manifest is modified. It is owned by the host application, so its
// wire-name is the logical name unprefixed.
type ManifestChanged struct {
	// Path is the manifest file that changed.
	Path string `json:"path"`
}

// EventName implements event.Event.
func (ManifestChanged) EventName() string { return "manifest-changed" }

// Watcher watches plugin manifest files and re-signals changes as
// ManifestChanged events. Development aid: lets tooling react to manifest
// edits without polling.
type Watcher struct {
	manager app.Manager
	fsw     *fsnotify.Watcher
	errs    chan error

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching the given manifest paths, emitting
// ManifestChanged for each write. The ManifestChanged event is registered
// to the host namespace on first use if no one has registered it yet.
func NewWatcher(m app.Manager, paths ...string) (*Watcher, error) {
	ensureHostEvents(m)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		manager: m,
		fsw:     fsw,
		errs:    make(chan error, 16),
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Errors returns watcher and emit errors. The channel is buffered; errors
// are dropped when nobody drains it.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

// run pumps filesystem events until closed.
func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := event.EmitAll(w.manager, ManifestChanged{Path: ev.Name}); err != nil {
				w.report(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

// report forwards an error without blocking the pump.
func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}

// ensureHostEvents idempotently registers the watcher's host-owned events.
func ensureHostEvents(m app.Manager) {
	registry := event.GetOrManage(m)
	if _, ok := registry.Owner(event.TypeIDOf[ManifestChanged]()); ok {
		return
	}

	collection := event.NewCollection()
	event.Register[ManifestChanged](collection)
	registry.Merge(collection, event.Host)
}
