package event

// DecodeStage identifies where in the delivery pipeline a decode failed.
type DecodeStage int

const (
	// StageEnvelope means the raw delivery could not be split into an
	// envelope (malformed transport message).
	StageEnvelope DecodeStage = iota

	// StagePayload means the structured payload could not be decoded
	// into the event's declared type.
	StagePayload
)

// String returns a human-readable stage name.
func (s DecodeStage) String() string {
	switch s {
	case StageEnvelope:
		return "envelope"
	case StagePayload:
		return "payload"
	default:
		return "unknown"
	}
}

// DecodeError reports a delivery that could not be decoded for a listener.
// The event is dropped for that listener only; other listeners and the
// registry are unaffected.
type DecodeError struct {
	// Event is the logical name of the event being listened for.
	Event string

	// Stage is where decoding failed.
	Stage DecodeStage

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return "decoding " + e.Stage.String() + " for event " + e.Event + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
