package codec

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Sentinel errors for envelope packing and splitting.
var (
	// ErrMalformedEnvelope is returned when a delivery is not a valid envelope.
	ErrMalformedEnvelope = errors.New("malformed event envelope")

	// ErrMissingEventName is returned when an envelope has no event name.
	ErrMissingEventName = errors.New("envelope missing event name")
)

// Envelope is the unit carried on the transport: a wire-name, a delivery
// identifier and the raw structured payload. The payload is opaque to the
// envelope; only the dispatch layer's codec interprets it.
type Envelope struct {
	// Name is the globally unique wire-name of the event.
	Name string

	// ID identifies this delivery. Assigned by the transport at emit time.
	ID string

	// Payload is the structured payload, already in wire form.
	Payload []byte
}

// Encode packs the envelope into a single structured message.
func (e Envelope) Encode() ([]byte, error) {
	if e.Name == "" {
		return nil, ErrMissingEventName
	}

	out, err := sjson.SetBytes([]byte(`{}`), "event", e.Name)
	if err != nil {
		return nil, fmt.Errorf("packing envelope for %s: %w", e.Name, err)
	}
	out, err = sjson.SetBytes(out, "id", e.ID)
	if err != nil {
		return nil, fmt.Errorf("packing envelope for %s: %w", e.Name, err)
	}

	payload := e.Payload
	if len(payload) == 0 {
		payload = []byte("null")
	}
	out, err = sjson.SetRawBytes(out, "payload", payload)
	if err != nil {
		return nil, fmt.Errorf("packing envelope for %s: %w", e.Name, err)
	}

	return out, nil
}

// Decode splits a raw delivery back into an envelope.
// The returned payload is the raw structured value, not yet typed.
func Decode(raw []byte) (Envelope, error) {
	if !gjson.ValidBytes(raw) {
		return Envelope{}, ErrMalformedEnvelope
	}

	parsed := gjson.ParseBytes(raw)
	name := parsed.Get("event")
	if !name.Exists() || name.String() == "" {
		return Envelope{}, ErrMissingEventName
	}

	env := Envelope{
		Name: name.String(),
		ID:   parsed.Get("id").String(),
	}

	if payload := parsed.Get("payload"); payload.Exists() {
		env.Payload = []byte(payload.Raw)
	} else {
		env.Payload = []byte("null")
	}

	return env, nil
}
