package app

import (
	"reflect"
	"sync"
)

// StateContainer holds process-wide values keyed by their type, mirroring
// the host framework's managed-state facility. Values are set once and live
// for the process's lifetime. Safe for concurrent use.
type StateContainer struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

// NewStateContainer creates an empty state container.
func NewStateContainer() *StateContainer {
	return &StateContainer{values: make(map[reflect.Type]any)}
}

// Manage stores a value keyed by its concrete type.
// Returns false if a value of that type is already managed.
func (c *StateContainer) Manage(v any) bool {
	key := reflect.TypeOf(v)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.values == nil {
		c.values = make(map[reflect.Type]any)
	}
	if _, exists := c.values[key]; exists {
		return false
	}
	c.values[key] = v
	return true
}

// Get returns the managed value for a type, if any.
func (c *StateContainer) Get(key reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[key]
	return v, ok
}

// GetOrInit returns the managed value for a type, constructing and storing
// it on first access. Initialization is serialized against concurrent
// callers; init runs at most once per key.
func (c *StateContainer) GetOrInit(key reflect.Type, init func() any) any {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.values == nil {
		c.values = make(map[reflect.Type]any)
	}
	// Re-check under the write lock; another caller may have won.
	if v, ok := c.values[key]; ok {
		return v
	}
	v = init()
	c.values[key] = v
	return v
}

// State returns the managed value of type *T from a Manager's container.
func State[T any](m Manager) (*T, bool) {
	v, ok := m.State().Get(reflect.TypeOf((*T)(nil)))
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// GetOrManage returns the managed *T, constructing it on first access.
// Get-or-create rather than a conventional singleton: no construction-order
// dependency between the host and the bridge.
func GetOrManage[T any](m Manager, init func() *T) *T {
	v := m.State().GetOrInit(reflect.TypeOf((*T)(nil)), func() any { return init() })
	return v.(*T)
}
