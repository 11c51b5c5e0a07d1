package event

import (
	"fmt"
	"sync"

	"github.com/kwonoj/tauri-specta/app"
)

// Registry is the process-wide mapping from structural type id to owning
// plugin identifier. It is created lazily through the host's state
// container, lives for the process's lifetime, and has no removal
// operation.
//
// Writes happen only during plugin setup; every dispatch call reads.
// Correctness does not depend on that phasing: readers share the lock,
// writers exclude all other access.
type Registry struct {
	mu     sync.RWMutex
	owners map[TypeID]registration
}

// registration is a registry entry's value.
type registration struct {
	plugin PluginID
}

// GetOrManage returns the process-wide registry from the Manager's state
// container, constructing it empty on first access. Idempotent; safe to
// call from the host and every plugin in any order.
func GetOrManage(m app.Manager) *Registry {
	return app.GetOrManage(m, func() *Registry {
		return &Registry{owners: make(map[TypeID]registration)}
	})
}

// Merge consumes a collection, stamping every type id in it with the given
// plugin identifier. It panics if the collection was already merged or if
// any id is already owned: the same event type declared in two collections
// is a setup-time contract violation, and the first entry stays intact.
func (r *Registry) Merge(c *Collection, plugin PluginID) {
	if c.merged {
		panic("event: collection merged twice")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range c.entries {
		if owned, dup := r.owners[entry.id]; dup {
			panic(fmt.Sprintf(
				"event: %s already registered to %s",
				entry.name, ownerLabel(owned.plugin),
			))
		}
	}
	for _, entry := range c.entries {
		r.owners[entry.id] = registration{plugin: plugin}
	}

	c.merged = true
}

// Owner returns the plugin identifier owning a structural type id.
func (r *Registry) Owner(id TypeID) (PluginID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.owners[id]
	return reg.plugin, ok
}

// Len returns the number of registered event types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.owners)
}

// resolveOwner looks up an event type's owner for a dispatch call. Missing
// registry or missing entry both mean the owning plugin never merged its
// collection, a setup-ordering bug: panic with a diagnostic naming the
// event rather than dispatching under a wrong name.
func resolveOwner(m app.Manager, id TypeID, name string) PluginID {
	registry, ok := app.State[Registry](m)
	if !ok {
		panic(fmt.Sprintf(
			"event: registry not managed while dispatching %s - did you forget to merge your event collection?",
			name,
		))
	}

	plugin, ok := registry.Owner(id)
	if !ok {
		panic(fmt.Sprintf("event: %s not found in registry", name))
	}
	return plugin
}

// ownerLabel renders a plugin identifier for diagnostics.
func ownerLabel(p PluginID) string {
	if p.IsHost() {
		return "the host application"
	}
	return fmt.Sprintf("plugin %q", string(p))
}
