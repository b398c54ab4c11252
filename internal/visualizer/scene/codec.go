package scene

import (
	"bytes"

	"plan-visualizer/internal/visualizer/models"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack encodes a scene with the same field names as its JSON form.
func EncodeMsgpack(s models.Scene) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeMsgpack(data []byte) (models.Scene, error) {
	var s models.Scene
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	err := dec.Decode(&s)
	return s, err
}
