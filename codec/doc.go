// Package codec converts typed event payloads to and from the structured
// representation carried on the wire.
//
// The transport underneath the bridge only understands name-addressed byte
// payloads. Every emission is packed into an Envelope (event wire-name,
// delivery id, raw payload); every delivery is split back apart before the
// payload is decoded into the subscriber's event type. The Codec interface
// covers the typed leg of that trip; Envelope covers the structural leg.
package codec
