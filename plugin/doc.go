// Package plugin handles attaching a namespace of events to the bridge:
// building a plugin's event collection, producing the schema data handed to
// binding generation, and merging ownership into the process-wide registry.
//
// A plugin is constructed with New, which validates the name against the
// reserved wire-name separator, then attached once:
//
//	p, err := plugin.New("demo")
//	if err != nil { ... }
//	bindings := p.Attach(manager, event.For[Progress](), event.For[Done]())
//
// The host application attaches its own events the same way through
// AttachHost. Bindings carries the per-event schemas and the shared type
// map for downstream binding generation.
//
// Plugin metadata may also come from a TOML manifest (LoadManifest), and a
// Watcher can re-signal manifest changes during development.
package plugin
