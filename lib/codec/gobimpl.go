package codec

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/prefkit/prefkit/lib/store"
)

func init() {
	// Register every supported concrete type so gob can transmit the
	// snapshot's interface-typed values with their exact dynamic type.
	gob.Register(int(0))
	gob.Register(int8(0))
	gob.Register(int16(0))
	gob.Register(int32(0))
	gob.Register(int64(0))
	gob.Register(uint(0))
	gob.Register(uint8(0))
	gob.Register(uint16(0))
	gob.Register(uint32(0))
	gob.Register(uint64(0))
	gob.Register(float32(0))
	gob.Register(float64(0))
	gob.Register(false)
	gob.Register("")
	gob.Register([]byte(nil))
	gob.Register([]string(nil))
	gob.Register([]int64(nil))
}

type gobImpl struct{}

// NewGOBCodec creates a snapshot codec using Go's gob encoding. It is more
// compact than JSON but not readable or usable outside Go.
func NewGOBCodec() Codec {
	return &gobImpl{}
}

func (c *gobImpl) Name() string {
	return "gob"
}

func (c *gobImpl) Encode(s Snapshot) ([]byte, error) {
	raw := make(map[string]any, len(s))
	for key, v := range s {
		raw[key] = v.Any()
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(raw); err != nil {
		return nil, fmt.Errorf("codec: gob encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *gobImpl) Decode(b []byte) (Snapshot, error) {
	var raw map[string]any
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("codec: gob decode: %w", err)
	}

	snap := make(Snapshot, len(raw))
	for key, v := range raw {
		val, ok := store.NewValue(v)
		if !ok {
			return nil, fmt.Errorf("codec: gob decode key %q: unsupported type %T", key, v)
		}
		snap[key] = val
	}
	return snap, nil
}
