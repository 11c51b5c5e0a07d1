package codec

import "encoding/json"

// Codec converts typed values to and from their wire representation.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Marshal converts a typed value into its structured wire form.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes a structured wire form into the given typed value.
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default Codec, backed by encoding/json.
type JSONCodec struct{}

// Marshal implements Codec.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements Codec.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// JSON is the codec used by the dispatch layer unless a host supplies its own.
var JSON Codec = JSONCodec{}
