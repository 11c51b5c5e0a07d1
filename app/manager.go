package app

// ListenerID identifies a registered listener for later removal.
type ListenerID string

// RawHandler receives raw deliveries for a wire-name. The bytes are an
// encoded codec.Envelope. Handlers may be invoked concurrently from the
// host's delivery threads and must not assume single-threaded execution.
type RawHandler func(raw []byte)

// Manager is the host-framework handle the bridge dispatches through.
// Implementations must be safe for concurrent use.
type Manager interface {
	// EmitAll delivers a payload to every listener of the wire-name,
	// across all windows.
	EmitAll(name string, payload []byte) error

	// EmitTo delivers a payload to one named target. Unscoped listeners
	// of the wire-name also observe the delivery. Returns an error if the
	// target does not exist.
	EmitTo(target, name string, payload []byte) error

	// ListenAny subscribes to every delivery of the wire-name regardless
	// of target.
	ListenAny(name string, handler RawHandler) ListenerID

	// OnceAny subscribes like ListenAny but the handler is invoked at
	// most once; the listener removes itself after the first delivery.
	OnceAny(name string, handler RawHandler) ListenerID

	// Unlisten removes a listener by id. Returns false if the listener
	// was not registered.
	Unlisten(id ListenerID) bool

	// State returns the process-wide typed state container.
	State() *StateContainer
}

// Window is a handle to a single window of the host application. Windows
// are Managers in their own right: registry lookups and broadcast
// operations work through either handle.
type Window interface {
	Manager

	// Label returns the window's unique label.
	Label() string

	// Emit delivers a payload targeted at this window.
	Emit(name string, payload []byte) error

	// Listen subscribes to deliveries of the wire-name scoped to this
	// window: broadcasts and emissions targeted here.
	Listen(name string, handler RawHandler) ListenerID

	// Once subscribes like Listen with at-most-once delivery.
	Once(name string, handler RawHandler) ListenerID
}
