package codec

import (
	"fmt"

	"github.com/prefkit/prefkit/lib/store"
)

// Snapshot is the full key-value state of a store at one point in time.
type Snapshot map[string]store.Value

// Codec is the interface for all snapshot codecs.
type Codec interface {
	// Name returns the codec identifier ("json", "gob").
	Name() string
	// Encode serializes a snapshot into a byte array.
	Encode(s Snapshot) ([]byte, error)
	// Decode deserializes a byte array into a snapshot.
	Decode(b []byte) (Snapshot, error)
}

// New returns the codec for the given identifier.
func New(name string) (Codec, error) {
	switch name {
	case "json":
		return NewJSONCodec(), nil
	case "gob":
		return NewGOBCodec(), nil
	default:
		return nil, fmt.Errorf("codec: unknown codec %q (must be json or gob)", name)
	}
}
