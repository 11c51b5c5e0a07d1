package event

import "reflect"

// Event is implemented by every registrable event payload type.
//
// Event types must be value types whose EventName is callable on the zero
// value and constant across all instances: the name and the declared type
// together form the event's identity. Payload contents are never inspected
// by the bridge; they only need to survive the structured-data codec.
type Event interface {
	// EventName returns the event's logical name, unique within the
	// owning plugin's collection.
	EventName() string
}

// TypeID is the structural identity of an event's declared type. Two
// distinct declarations never collide; the same declaration always yields
// the same id. It is the registry key.
type TypeID = reflect.Type

// TypeIDOf returns the structural type id of an event type.
func TypeIDOf[E Event]() TypeID {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// nameOf returns the logical name of an event type.
func nameOf[E Event]() string {
	var zero E
	return zero.EventName()
}

// TypedEvent is the envelope handed to listeners: the delivery's identifier
// plus the payload decoded back into its declared type.
type TypedEvent[E Event] struct {
	// ID identifies the delivery, as assigned by the transport.
	ID string

	// Payload is the typed event payload.
	Payload E
}
