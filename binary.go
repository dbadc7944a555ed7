package watsonspec

import (
	"encoding/binary"

	"github.com/ibd1279/watsonspec/codec"
	"github.com/ibd1279/watsonspec/wire"
)

// Binary is an opaque byte blob prefixed by a 32-bit marshal hint, an
// application-defined subtype tag interpreted only by the caller — see the
// codec package for a concrete registry of hint values.
type Binary struct {
	Hint uint32
	Data []byte
}

// NewBinaryValue builds a Binary holding a copy of data.
func NewBinaryValue(hint uint32, data []byte) Binary {
	return Binary{Hint: hint, Data: append([]byte(nil), data...)}
}

// Encode writes [u32 hint LE][raw bytes].
func (b Binary) Encode() Ingredient {
	return newComposite(wire.KindBinary, 4+len(b.Data), func(dst []byte) {
		binary.LittleEndian.PutUint32(dst[:4], b.Hint)
		copy(dst[4:], b.Data)
	})
}

// DecodeBinary reads the marshal hint and the raw data that follows it.
func DecodeBinary(i Ingredient) (Binary, error) {
	if i.Kind() != wire.KindBinary {
		return Binary{}, decodeErr(i.Kind(), 0, ErrStructuralMismatch)
	}
	p := i.Payload()
	if len(p) < 4 {
		return Binary{}, decodeErr(i.Kind(), 0, wire.ErrTruncated)
	}
	data := append([]byte(nil), p[4:]...)
	return Binary{Hint: binary.LittleEndian.Uint32(p[:4]), Data: data}, nil
}

// EncodeBinaryValue serializes v with reg under hint and wraps the result in
// a Binary whose Hint field records which codec can decode it.
func EncodeBinaryValue[V any](reg codec.Registry[V], hint codec.Hint, v V) (Binary, error) {
	data, err := reg.Encode(hint, v)
	if err != nil {
		return Binary{}, err
	}
	return NewBinaryValue(uint32(hint), data), nil
}

// DecodeBinaryValue decodes b.Data with reg, dispatching on b.Hint.
func DecodeBinaryValue[V any](reg codec.Registry[V], b Binary) (V, error) {
	return reg.Decode(codec.Hint(b.Hint), b.Data)
}
