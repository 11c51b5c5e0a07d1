package event

// PluginID identifies the plugin namespace that owns a set of events.
// The zero value is the host application itself. Assigned once, at
// collection-merge time, and never reassigned.
type PluginID string

// Host is the host application's namespace: events it owns keep their
// logical name unchanged on the wire.
const Host PluginID = ""

// Separator joins a plugin identifier and a logical name into a wire-name.
// It is reserved: plugin names and logical names must not contain it.
const Separator = ":"

// IsHost reports whether the identifier is the host application.
func (p PluginID) IsHost() bool {
	return p == Host
}

// WireName derives the transport key for an event. Host-owned events pass
// through unchanged; plugin-owned events are namespaced with the reserved
// separator, so two plugins may reuse a logical name without colliding.
// Pure and total; name validation happens at registration time.
func WireName(plugin PluginID, name string) string {
	if plugin.IsHost() {
		return name
	}
	return string(plugin) + Separator + name
}
