package event

import (
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kwonoj/tauri-specta/schema"
)

// Collection is a transient batch of event registrations built once during
// plugin setup, before any plugin identifier is known. It is consumed
// exactly once by Registry.Merge and has no existence afterwards.
//
// Collections are not safe for concurrent mutation; they belong to the
// single-threaded setup phase.
type Collection struct {
	ids    map[TypeID]struct{}
	names  map[string]struct{}
	entries []collectionEntry
	merged bool
}

// collectionEntry pairs a structural type id with its logical name so merge
// failures can name the offending event.
type collectionEntry struct {
	id   TypeID
	name string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		ids:   make(map[TypeID]struct{}),
		names: make(map[string]struct{}),
	}
}

// Register adds an event type's structural id and logical name to the
// collection. It panics if the type was already registered, if another type
// already claimed the name, or if the name is empty or contains the
// reserved separator. All of these are setup-time contract violations.
func Register[E Event](c *Collection) {
	id := TypeIDOf[E]()
	name := nameOf[E]()

	if name == "" {
		panic(fmt.Sprintf("event: type %v has an empty event name", id))
	}
	if strings.Contains(name, Separator) {
		panic(fmt.Sprintf("event: name %q contains reserved separator %q", name, Separator))
	}

	if _, dup := c.ids[id]; dup {
		panic(fmt.Sprintf("event: %s registered twice", name))
	}
	if _, dup := c.names[name]; dup {
		panic(fmt.Sprintf("event: another event with name %s is already registered", name))
	}

	c.ids[id] = struct{}{}
	c.names[name] = struct{}{}
	c.entries = append(c.entries, collectionEntry{id: id, name: name})
}

// Len returns the number of registered event types.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Contains reports whether a structural type id is in the collection.
func (c *Collection) Contains(id TypeID) bool {
	_, ok := c.ids[id]
	return ok
}

// Registrant is one event type's contribution to Collect: its registration
// into a collection plus its exported schema. Built by For.
type Registrant struct {
	id       TypeID
	name     string
	register func(*Collection)
	describe func() (*jsonschema.Schema, error)
}

// For captures an event type for bulk collection via Collect.
func For[E Event]() Registrant {
	return Registrant{
		id:       TypeIDOf[E](),
		name:     nameOf[E](),
		register: Register[E],
		describe: schema.For[E],
	}
}

// Collect builds a collection from a fixed list of event types and
// simultaneously produces, for each event, its logical name plus exported
// payload schema, accumulated into a shared type map. The returned triple
// is the unit handed to binding generation and to Registry.Merge.
//
// Collect panics on duplicate types or names (via Register) and on schema
// inference failure; all are setup-time errors.
func Collect(registrants ...Registrant) (*Collection, []schema.EventDataType, *schema.TypeMap) {
	collection := NewCollection()
	types := schema.NewTypeMap()
	dataTypes := make([]schema.EventDataType, 0, len(registrants))

	for _, r := range registrants {
		r.register(collection)

		s, err := r.describe()
		if err != nil {
			panic(fmt.Sprintf("event: %s: %v", r.name, err))
		}

		types.Add(r.id, r.name, s)
		dataTypes = append(dataTypes, schema.EventDataType{Name: r.name, Type: s})
	}

	return collection, dataTypes, types
}
