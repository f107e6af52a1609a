package codec

import "encoding/json"

// JSON is the default Codec: entries are stored as UTF-8 JSON text, so a
// cached snapshot deep-equals the materialized value it was built from.
// The zero value is ready to use.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
