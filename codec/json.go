package codec

import "encoding/json"

// JSON is a Codec that serializes values using the standard library's
// encoding/json. The zero value is ready to use and respects `json` struct
// tags.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
