package codec

import (
	"encoding/json"
	"fmt"

	"github.com/prefkit/prefkit/lib/store"
)

// jsonEntry is the wire form of one stored value. The kind tag is required
// to restore the exact dynamic type (JSON numbers alone cannot distinguish
// e.g. int32 from int64).
type jsonEntry struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

type jsonImpl struct{}

// NewJSONCodec creates a snapshot codec producing human-readable JSON.
// Byte slices are encoded as base64 strings (encoding/json default).
func NewJSONCodec() Codec {
	return &jsonImpl{}
}

func (c *jsonImpl) Name() string {
	return "json"
}

func (c *jsonImpl) Encode(s Snapshot) ([]byte, error) {
	out := make(map[string]jsonEntry, len(s))
	for key, v := range s {
		raw, err := json.Marshal(v.Any())
		if err != nil {
			return nil, fmt.Errorf("codec: encode key %q: %w", key, err)
		}
		out[key] = jsonEntry{Kind: v.Kind().String(), Value: raw}
	}
	return json.Marshal(out)
}

func (c *jsonImpl) Decode(b []byte) (Snapshot, error) {
	var in map[string]jsonEntry
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("codec: decode snapshot: %w", err)
	}

	snap := make(Snapshot, len(in))
	for key, e := range in {
		v, err := decodeJSONEntry(e)
		if err != nil {
			return nil, fmt.Errorf("codec: decode key %q: %w", key, err)
		}
		snap[key] = v
	}
	return snap, nil
}

// decodeJSONEntry restores the exact dynamic type named by the kind tag.
func decodeJSONEntry(e jsonEntry) (store.Value, error) {
	switch e.Kind {
	case "int":
		return unmarshalAs[int](e.Value)
	case "int8":
		return unmarshalAs[int8](e.Value)
	case "int16":
		return unmarshalAs[int16](e.Value)
	case "int32":
		return unmarshalAs[int32](e.Value)
	case "int64":
		return unmarshalAs[int64](e.Value)
	case "uint":
		return unmarshalAs[uint](e.Value)
	case "uint8":
		return unmarshalAs[uint8](e.Value)
	case "uint16":
		return unmarshalAs[uint16](e.Value)
	case "uint32":
		return unmarshalAs[uint32](e.Value)
	case "uint64":
		return unmarshalAs[uint64](e.Value)
	case "float32":
		return unmarshalAs[float32](e.Value)
	case "float64":
		return unmarshalAs[float64](e.Value)
	case "bool":
		return unmarshalAs[bool](e.Value)
	case "string":
		return unmarshalAs[string](e.Value)
	case "bytes":
		return unmarshalAs[[]byte](e.Value)
	case "[]string":
		return unmarshalAs[[]string](e.Value)
	case "[]int64":
		return unmarshalAs[[]int64](e.Value)
	default:
		return store.Value{}, fmt.Errorf("unknown kind %q", e.Kind)
	}
}

func unmarshalAs[T any](raw json.RawMessage) (store.Value, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return store.Value{}, err
	}
	return store.MustValue(v), nil
}
