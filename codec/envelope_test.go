package codec

import (
	"errors"
	"testing"
)

func TestEnvelope_EncodeDecode(t *testing.T) {
	env := Envelope{
		Name:    "demo:progress",
		ID:      "delivery-1",
		Payload: []byte(`{"percent":40}`),
	}

	raw, err := env.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Name != env.Name {
		t.Errorf("expected name %q, got %q", env.Name, got.Name)
	}
	if got.ID != env.ID {
		t.Errorf("expected id %q, got %q", env.ID, got.ID)
	}
	if string(got.Payload) != string(env.Payload) {
		t.Errorf("expected payload %s, got %s", env.Payload, got.Payload)
	}
}

func TestEnvelope_Encode_MissingName(t *testing.T) {
	_, err := Envelope{ID: "x"}.Encode()
	if !errors.Is(err, ErrMissingEventName) {
		t.Errorf("expected ErrMissingEventName, got %v", err)
	}
}

func TestEnvelope_Encode_EmptyPayload(t *testing.T) {
	raw, err := Envelope{Name: "tick", ID: "1"}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got.Payload) != "null" {
		t.Errorf("expected null payload, got %s", got.Payload)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", `{"event":`, ErrMalformedEnvelope},
		{"no event name", `{"id":"1","payload":{}}`, ErrMissingEventName},
		{"empty event name", `{"event":"","payload":{}}`, ErrMissingEventName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	type payload struct {
		Message string `json:"message"`
		Count   int    `json:"count"`
	}

	in := payload{Message: "hello", Count: 3}

	data, err := JSON.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out payload
	if err := JSON.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}
