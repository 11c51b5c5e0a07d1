package app

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kwonoj/tauri-specta/codec"
)

// Sentinel errors for the in-process transport.
var (
	// ErrNoSuchTarget is returned when emitting to a window label that
	// has no handle.
	ErrNoSuchTarget = errors.New("no such emit target")
)

// Local is an in-process Manager: a name-addressed pub/sub transport that
// delivers encoded envelopes to listeners on the emitter's goroutine.
// It exists so the bridge is usable and testable without a real
// window/webview framework underneath.
type Local struct {
	mu      sync.RWMutex
	state   *StateContainer
	byName  map[string][]*listener
	byID    map[ListenerID]*listener
	windows map[string]*localWindow

	eventsEmitted atomic.Uint64
	deliveries    atomic.Uint64
}

// listener is a single raw subscription.
type listener struct {
	id      ListenerID
	name    string
	scope   string // window label, or "" for unscoped
	once    bool
	fired   atomic.Bool
	handler RawHandler
}

// NewLocal creates an empty in-process transport.
func NewLocal() *Local {
	return &Local{
		state:   NewStateContainer(),
		byName:  make(map[string][]*listener),
		byID:    make(map[ListenerID]*listener),
		windows: make(map[string]*localWindow),
	}
}

// State implements Manager.
func (l *Local) State() *StateContainer {
	return l.state
}

// EmitAll implements Manager.
func (l *Local) EmitAll(name string, payload []byte) error {
	return l.emit(name, payload, "", true)
}

// EmitTo implements Manager.
func (l *Local) EmitTo(target, name string, payload []byte) error {
	l.mu.RLock()
	_, known := l.windows[target]
	l.mu.RUnlock()
	if !known {
		return fmt.Errorf("%w: %s", ErrNoSuchTarget, target)
	}

	return l.emit(name, payload, target, false)
}

// ListenAny implements Manager.
func (l *Local) ListenAny(name string, handler RawHandler) ListenerID {
	return l.listen(name, "", false, handler)
}

// OnceAny implements Manager.
func (l *Local) OnceAny(name string, handler RawHandler) ListenerID {
	return l.listen(name, "", true, handler)
}

// Unlisten implements Manager.
func (l *Local) Unlisten(id ListenerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.removeLocked(id)
}

// Window returns the handle for a window label, creating it on first use.
func (l *Local) Window(label string) Window {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w, ok := l.windows[label]; ok {
		return w
	}
	w := &localWindow{parent: l, label: label}
	l.windows[label] = w
	return w
}

// Stats reports transport counters.
func (l *Local) Stats() Stats {
	l.mu.RLock()
	active := len(l.byID)
	l.mu.RUnlock()

	return Stats{
		EventsEmitted:   l.eventsEmitted.Load(),
		Deliveries:      l.deliveries.Load(),
		ActiveListeners: active,
	}
}

// Stats contains transport counters.
type Stats struct {
	// EventsEmitted is the number of emissions accepted.
	EventsEmitted uint64

	// Deliveries is the number of handler invocations performed.
	Deliveries uint64

	// ActiveListeners is the current number of registered listeners.
	ActiveListeners int
}

// emit packs an envelope and delivers it to matching listeners.
// broadcast reaches every listener of the name; otherwise unscoped
// listeners plus listeners scoped to target.
func (l *Local) emit(name string, payload []byte, target string, broadcast bool) error {
	env := codec.Envelope{
		Name:    name,
		ID:      uuid.NewString(),
		Payload: payload,
	}
	raw, err := env.Encode()
	if err != nil {
		return err
	}

	// Snapshot matching listeners so handlers run without the lock held.
	l.mu.RLock()
	var matched []*listener
	for _, lis := range l.byName[name] {
		if broadcast || lis.scope == "" || lis.scope == target {
			matched = append(matched, lis)
		}
	}
	l.mu.RUnlock()

	l.eventsEmitted.Add(1)

	var spent []*listener
	for _, lis := range matched {
		if lis.once {
			// CAS guarantees at-most-once even with concurrent emits.
			if !lis.fired.CompareAndSwap(false, true) {
				continue
			}
			spent = append(spent, lis)
		}
		lis.handler(raw)
		l.deliveries.Add(1)
	}

	if len(spent) > 0 {
		l.mu.Lock()
		for _, lis := range spent {
			l.removeLocked(lis.id)
		}
		l.mu.Unlock()
	}

	return nil
}

// listen registers a listener for a wire-name.
func (l *Local) listen(name, scope string, once bool, handler RawHandler) ListenerID {
	if handler == nil {
		panic("app: nil listener handler for " + name)
	}

	lis := &listener{
		id:      ListenerID(uuid.NewString()),
		name:    name,
		scope:   scope,
		once:    once,
		handler: handler,
	}

	l.mu.Lock()
	l.byName[name] = append(l.byName[name], lis)
	l.byID[lis.id] = lis
	l.mu.Unlock()

	return lis.id
}

// removeLocked removes a listener by id. Caller holds the write lock.
func (l *Local) removeLocked(id ListenerID) bool {
	lis, ok := l.byID[id]
	if !ok {
		return false
	}

	listeners := l.byName[lis.name]
	for i, candidate := range listeners {
		if candidate.id == id {
			l.byName[lis.name] = append(listeners[:i], listeners[i+1:]...)
			break
		}
	}
	if len(l.byName[lis.name]) == 0 {
		delete(l.byName, lis.name)
	}

	delete(l.byID, id)
	return true
}

// localWindow is a window-scoped handle over a Local transport.
type localWindow struct {
	parent *Local
	label  string
}

// Label implements Window.
func (w *localWindow) Label() string {
	return w.label
}

// Emit implements Window.
func (w *localWindow) Emit(name string, payload []byte) error {
	return w.parent.emit(name, payload, w.label, false)
}

// Listen implements Window.
func (w *localWindow) Listen(name string, handler RawHandler) ListenerID {
	return w.parent.listen(name, w.label, false, handler)
}

// Once implements Window.
func (w *localWindow) Once(name string, handler RawHandler) ListenerID {
	return w.parent.listen(name, w.label, true, handler)
}

// EmitAll implements Manager.
func (w *localWindow) EmitAll(name string, payload []byte) error {
	return w.parent.EmitAll(name, payload)
}

// EmitTo implements Manager.
func (w *localWindow) EmitTo(target, name string, payload []byte) error {
	return w.parent.EmitTo(target, name, payload)
}

// ListenAny implements Manager.
func (w *localWindow) ListenAny(name string, handler RawHandler) ListenerID {
	return w.parent.ListenAny(name, handler)
}

// OnceAny implements Manager.
func (w *localWindow) OnceAny(name string, handler RawHandler) ListenerID {
	return w.parent.OnceAny(name, handler)
}

// Unlisten implements Manager.
func (w *localWindow) Unlisten(id ListenerID) bool {
	return w.parent.Unlisten(id)
}

// State implements Manager. Windows share the process-wide container.
func (w *localWindow) State() *StateContainer {
	return w.parent.State()
}
