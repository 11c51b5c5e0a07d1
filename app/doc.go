// Package app defines the surface the typed event bridge consumes from its
// host application framework: a Manager capable of name-addressed emit and
// listen, per-window handles, and a typed state container with get-or-create
// semantics.
//
// Hosts embedding the bridge into a real window/webview framework implement
// Manager and Window over their own transport. Local is a complete in-process
// implementation used by tests, examples and single-process hosts.
//
// # Delivery scoping
//
// Listeners are either unscoped (ListenAny/OnceAny) or scoped to a window
// (Window.Listen/Window.Once). A broadcast reaches every listener of the
// wire-name. A targeted emission reaches unscoped listeners plus listeners
// scoped to the matching window label. Window-scoped listeners never observe
// emissions targeted at another window.
package app
