// Package schema assembles the type information handed to UI-side binding
// generation: for every registered event, its logical name and a structural
// schema of its payload type. The package only collects this data; rendering
// it into another language's declarations is a downstream concern.
package schema

import (
	"fmt"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
)

// EventDataType pairs an event's logical name with its payload schema.
// One is produced per registered event at collection-build time.
type EventDataType struct {
	// Name is the event's logical name.
	Name string

	// Type is the structural schema of the event's payload.
	Type *jsonschema.Schema
}

// For infers the structural schema of an event payload type.
func For[E any]() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[E](nil)
	if err != nil {
		var zero E
		return nil, fmt.Errorf("inferring schema for %T: %w", zero, err)
	}
	return s, nil
}

// TypeMap accumulates the schemas of every type seen during collection
// building, keyed by structural type identity and preserving insertion
// order. It is built during single-threaded setup and read-only afterwards;
// it is not safe for concurrent mutation.
type TypeMap struct {
	entries map[reflect.Type]*jsonschema.Schema
	names   map[reflect.Type]string
	order   []reflect.Type
}

// NewTypeMap creates an empty type map.
func NewTypeMap() *TypeMap {
	return &TypeMap{
		entries: make(map[reflect.Type]*jsonschema.Schema),
		names:   make(map[reflect.Type]string),
	}
}

// Add records a type's name and schema. Re-adding the same type is a no-op;
// the first registration wins.
func (m *TypeMap) Add(t reflect.Type, name string, s *jsonschema.Schema) {
	if _, exists := m.entries[t]; exists {
		return
	}
	m.entries[t] = s
	m.names[t] = name
	m.order = append(m.order, t)
}

// Get returns the schema recorded for a type.
func (m *TypeMap) Get(t reflect.Type) (*jsonschema.Schema, bool) {
	s, ok := m.entries[t]
	return s, ok
}

// Name returns the logical name recorded for a type.
func (m *TypeMap) Name(t reflect.Type) (string, bool) {
	n, ok := m.names[t]
	return n, ok
}

// Len returns the number of recorded types.
func (m *TypeMap) Len() int {
	return len(m.order)
}

// Each visits every recorded type in insertion order.
func (m *TypeMap) Each(fn func(t reflect.Type, name string, s *jsonschema.Schema)) {
	for _, t := range m.order {
		fn(t, m.names[t], m.entries[t])
	}
}
