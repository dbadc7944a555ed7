package watsonspec

import "github.com/ibd1279/watsonspec/wire"

type storageMode int

const (
	modeBorrowed storageMode = iota
	modeOwned
)

// Ingredient is a single wire record: a type-marker byte, an optional
// inline length, and a payload. It is the primitive carrier for every
// value in the format — scalars and composites alike decode to, and
// encode from, an Ingredient.
//
// An Ingredient is either borrowed (a zero-copy view into a caller-owned
// buffer, valid only for that buffer's lifetime) or owned (a
// heap-allocated buffer the Ingredient itself holds). Borrow never
// allocates; CloneFrom and Adopt always produce an owned value. Copying a
// borrowed Ingredient (via Clone) produces an owned one — sharing across
// buffer lifetimes is always explicit.
type Ingredient struct {
	buf  []byte
	mode storageMode
}

// Borrow wraps b without copying. b must contain at least one complete
// record starting at offset 0; trailing bytes beyond the record are
// ignored by Size/Payload/Bytes. The returned Ingredient is valid only as
// long as b is not mutated or discarded.
func Borrow(b []byte) Ingredient {
	return Ingredient{buf: b, mode: modeBorrowed}
}

// CloneFrom copies exactly Size() bytes of b into a new owned buffer. b
// must start at a record's marker byte.
func CloneFrom(b []byte) Ingredient {
	sz, err := wire.ReadSize(b)
	if err != nil || int(sz) > len(b) {
		// Malformed input: fall back to copying what's there so callers
		// performing their own bounds checks still see a stable value.
		out := make([]byte, len(b))
		copy(out, b)
		return Ingredient{buf: out, mode: modeOwned}
	}
	out := make([]byte, sz)
	copy(out, b[:sz])
	return Ingredient{buf: out, mode: modeOwned}
}

// Adopt takes ownership of b, which must already contain exactly one
// valid record (no trailing bytes).
func Adopt(b []byte) Ingredient {
	return Ingredient{buf: b, mode: modeOwned}
}

// Null returns the 1-byte Null value.
func Null() Ingredient {
	return Adopt([]byte{wire.MakeMarker(wire.Zero, wire.KindNull)})
}

// Clone returns a deep, owned copy of i.
func (i Ingredient) Clone() Ingredient {
	return CloneFrom(i.Bytes())
}

// IsOwned reports whether i holds a heap-allocated buffer it owns, as
// opposed to a zero-copy view into a caller-owned buffer.
func (i Ingredient) IsOwned() bool { return i.mode == modeOwned }

// Marker returns the raw marker byte.
func (i Ingredient) Marker() byte {
	if len(i.buf) == 0 {
		return 0
	}
	return i.buf[0]
}

// Kind returns the record's semantic type.
func (i Ingredient) Kind() wire.Kind {
	return wire.KindOf(i.Marker())
}

// Size returns the full record length, including the header.
func (i Ingredient) Size() int {
	sz, err := wire.ReadSize(i.buf)
	if err != nil {
		return 0
	}
	return int(sz)
}

// Payload returns the slice after the header, up to Size().
func (i Ingredient) Payload() []byte {
	if len(i.buf) == 0 {
		return nil
	}
	w := wire.HeaderWidth(wire.SizeClassOf(i.buf[0]))
	sz := i.Size()
	if sz < w || sz > len(i.buf) {
		return nil
	}
	return i.buf[w:sz]
}

// Bytes returns the full record image (marker + length + payload).
func (i Ingredient) Bytes() []byte {
	sz := i.Size()
	if sz > len(i.buf) {
		return i.buf
	}
	return i.buf[:sz]
}

// newScalar builds an owned Ingredient of kind k whose payload is exactly
// payload.
func newScalar(k wire.Kind, payload []byte) Ingredient {
	return newComposite(k, len(payload), func(dst []byte) { copy(dst, payload) })
}

// newComposite builds an owned Ingredient of kind k with a payload of
// payloadLen bytes, filled in by fill. Shared by scalar encoders and every
// composite type's Encode.
func newComposite(k wire.Kind, payloadLen int, fill func(dst []byte)) Ingredient {
	sc := wire.MinSizeClass(uint64(payloadLen))
	w := wire.HeaderWidth(sc)
	total := w + payloadLen
	buf := make([]byte, total)
	buf[0] = wire.MakeMarker(sc, wire.Kind(k))
	if lw := w - 1; lw > 0 {
		wire.PutLength(buf[1:w], sc, uint64(total))
	}
	fill(buf[w:])
	return Ingredient{buf: buf, mode: modeOwned}
}
