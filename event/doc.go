// Package event is the typed event bridge's core: strongly-typed events
// with process-wide ownership, namespaced wire-names, and a generic dispatch
// facade over the host framework's untyped pub/sub primitive.
//
// # Model
//
// An event is a value type implementing Event: a fixed logical name plus a
// payload schema. Its structural type identity (the declared Go type, not a
// runtime value) is the key the rest of the system hangs off.
//
// At setup time each plugin builds a Collection of its event types and
// merges it into the process-wide Registry, which stamps every type with the
// attaching plugin's identifier. From then on, dispatch on an event type
// resolves its owner, derives the wire-name (plugin-prefixed unless owned by
// the host), and hands the codec-serialized payload to the underlying
// transport.
//
// # Usage
//
//	type Greeting struct {
//	    Message string `json:"message"`
//	}
//
//	func (Greeting) EventName() string { return "greeting" }
//
//	collection, dataTypes, types := event.Collect(event.For[Greeting]())
//	event.GetOrManage(manager).Merge(collection, event.Host)
//	_ = dataTypes // handed to binding generation, along with types
//
//	event.ListenAny(manager, func(ev event.TypedEvent[Greeting]) {
//	    fmt.Println(ev.Payload.Message)
//	})
//	_ = event.EmitAll(manager, Greeting{Message: "hello"})
//
// # Failure policy
//
// Duplicate registrations, re-merged collections and dispatch on an event
// whose plugin never attached are setup-time contract violations: they panic
// immediately with a diagnostic naming the event. Emit-time transport
// failures (no such window, codec refusal) are ordinary errors returned to
// the caller. Payload decode failures during delivery go through a
// per-listener hook; see WithOnDecodeError.
package event
