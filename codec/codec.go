// Package codec provides pluggable serializers for the payload carried by a
// Binary Ingredient. The marshal hint stored alongside a Binary's raw bytes
// (see the root package's Binary type) selects which Codec produced them.
package codec

// Codec encodes and decodes a value of type V to and from a byte slice.
// Implementations should return an error on malformed input. Encode/Decode
// should be pure (no side effects).
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
