package event

import (
	"fmt"

	"github.com/kwonoj/tauri-specta/app"
	"github.com/kwonoj/tauri-specta/codec"
)

// ListenOption configures a listen operation.
type ListenOption func(*listenConfig)

// listenConfig contains per-listener configuration.
type listenConfig struct {
	// onDecodeError is invoked when a delivery cannot be decoded.
	onDecodeError func(*DecodeError)
}

// defaultListenConfig panics on decode failure: a payload that does not
// match its declared type means the two sides of the boundary disagree
// about the schema, which is a programming error, not a runtime condition.
func defaultListenConfig() listenConfig {
	return listenConfig{
		onDecodeError: func(err *DecodeError) { panic(err) },
	}
}

// WithOnDecodeError installs a handler for deliveries that cannot be
// decoded for this listener. The event is dropped for this listener; it is
// never delivered with a substituted payload. Without this option, decode
// failures panic.
func WithOnDecodeError(fn func(*DecodeError)) ListenOption {
	return func(c *listenConfig) {
		if fn != nil {
			c.onDecodeError = fn
		}
	}
}

// EmitAll emits the event to every listener across all windows.
// Transport failures are returned to the caller.
func EmitAll[E Event](m app.Manager, ev E) error {
	name := ev.EventName()
	plugin := resolveOwner(m, TypeIDOf[E](), name)

	payload, err := codec.JSON.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", name, err)
	}
	return m.EmitAll(WireName(plugin, name), payload)
}

// EmitTo emits the event to one named target.
func EmitTo[E Event](m app.Manager, target string, ev E) error {
	name := ev.EventName()
	plugin := resolveOwner(m, TypeIDOf[E](), name)

	payload, err := codec.JSON.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", name, err)
	}
	return m.EmitTo(target, WireName(plugin, name), payload)
}

// Emit emits the event targeted at the given window.
func Emit[E Event](w app.Window, ev E) error {
	name := ev.EventName()
	plugin := resolveOwner(w, TypeIDOf[E](), name)

	payload, err := codec.JSON.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", name, err)
	}
	return w.Emit(WireName(plugin, name), payload)
}

// ListenAny subscribes to every delivery of the event, regardless of
// target. The handler may be invoked concurrently from the host's delivery
// threads.
func ListenAny[E Event](m app.Manager, handler func(TypedEvent[E]), opts ...ListenOption) app.ListenerID {
	name := nameOf[E]()
	plugin := resolveOwner(m, TypeIDOf[E](), name)

	return m.ListenAny(WireName(plugin, name), adapt(name, handler, opts))
}

// OnceAny subscribes like ListenAny with at-most-once delivery; the
// guarantee is provided by the underlying transport.
func OnceAny[E Event](m app.Manager, handler func(TypedEvent[E]), opts ...ListenOption) {
	name := nameOf[E]()
	plugin := resolveOwner(m, TypeIDOf[E](), name)

	m.OnceAny(WireName(plugin, name), adapt(name, handler, opts))
}

// Listen subscribes to deliveries of the event scoped to one window.
func Listen[E Event](w app.Window, handler func(TypedEvent[E]), opts ...ListenOption) app.ListenerID {
	name := nameOf[E]()
	plugin := resolveOwner(w, TypeIDOf[E](), name)

	return w.Listen(WireName(plugin, name), adapt(name, handler, opts))
}

// Once subscribes like Listen with at-most-once delivery.
func Once[E Event](w app.Window, handler func(TypedEvent[E]), opts ...ListenOption) {
	name := nameOf[E]()
	plugin := resolveOwner(w, TypeIDOf[E](), name)

	w.Once(WireName(plugin, name), adapt(name, handler, opts))
}

// adapt wraps a typed handler as a raw transport handler: split the
// delivery into an envelope, decode the structured payload back into the
// declared type, then invoke the handler with the typed envelope.
func adapt[E Event](name string, handler func(TypedEvent[E]), opts []ListenOption) app.RawHandler {
	cfg := defaultListenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(raw []byte) {
		env, err := codec.Decode(raw)
		if err != nil {
			cfg.onDecodeError(&DecodeError{Event: name, Stage: StageEnvelope, Err: err})
			return
		}

		var payload E
		if err := codec.JSON.Unmarshal(env.Payload, &payload); err != nil {
			cfg.onDecodeError(&DecodeError{Event: name, Stage: StagePayload, Err: err})
			return
		}

		handler(TypedEvent[E]{ID: env.ID, Payload: payload})
	}
}
