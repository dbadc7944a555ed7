package watsonspec

import (
	"github.com/golang/snappy"

	"github.com/ibd1279/watsonspec/wire"
)

// Compressed (Zip) wraps one Ingredient's full byte image as Snappy-
// compressed payload of another Ingredient.
type Compressed struct {
	inner Ingredient
}

// NewCompressed wraps inner for later compression via Encode.
func NewCompressed(inner Ingredient) Compressed {
	return Compressed{inner: inner}
}

// Inner returns the wrapped value.
func (c Compressed) Inner() Ingredient { return c.inner }

// Encode compresses the inner Ingredient's full byte image with Snappy and
// frames it as a Zip record. Allocation uses snappy's MaxEncodedLen upper
// bound and is shrunk to the actual compressed size before framing.
func (c Compressed) Encode() Ingredient {
	raw := c.inner.Bytes()
	dst := make([]byte, snappy.MaxEncodedLen(len(raw)))
	compressed := snappy.Encode(dst, raw)
	return newScalar(wire.KindZip, compressed)
}

// DecodeCompressed decompresses i's payload with Snappy and adopts the
// result as the inner Ingredient. It fails if the Snappy payload doesn't
// decompress, or if what decompresses isn't itself a complete, valid
// record image (spec §4.7).
func DecodeCompressed(i Ingredient) (Compressed, error) {
	if i.Kind() != wire.KindZip {
		return Compressed{}, decodeErr(i.Kind(), 0, ErrStructuralMismatch)
	}
	raw, err := snappy.Decode(nil, i.Payload())
	if err != nil {
		return Compressed{}, decodeErr(i.Kind(), 0, err)
	}
	sz, err := wire.ReadSize(raw)
	if err != nil {
		return Compressed{}, decodeErr(i.Kind(), 0, err)
	}
	if int(sz) != len(raw) {
		return Compressed{}, decodeErr(i.Kind(), 0, ErrStructuralMismatch)
	}
	if wire.KindOf(raw[0]) == wire.KindUnknown {
		return Compressed{}, decodeErr(i.Kind(), 0, wire.ErrUnknownKind)
	}
	return Compressed{inner: Adopt(raw)}, nil
}
