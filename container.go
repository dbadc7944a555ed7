package watsonspec

import "github.com/ibd1279/watsonspec/wire"

// Container is an ordered sequence of arbitrary Ingredients.
type Container struct {
	children []Ingredient
}

// NewContainer builds a Container holding a copy of children, in order.
func NewContainer(children ...Ingredient) Container {
	return Container{children: append([]Ingredient(nil), children...)}
}

// Len returns the number of children.
func (c Container) Len() int { return len(c.children) }

// At returns the child at idx, or the Null sentinel if idx is out of range.
func (c Container) At(idx int) Ingredient {
	if idx < 0 || idx >= len(c.children) {
		return Null()
	}
	return c.children[idx]
}

// Children returns the underlying slice of children, in order. Callers
// must not mutate the returned slice's Ingredients in place.
func (c Container) Children() []Ingredient {
	return c.children
}

// Encode concatenates the child records verbatim behind a header sized for
// their combined length.
func (c Container) Encode() Ingredient {
	return c.encodeAs(wire.KindContainer)
}

func (c Container) encodeAs(k wire.Kind) Ingredient {
	total := 0
	for _, ch := range c.children {
		total += ch.Size()
	}
	return newComposite(k, total, func(dst []byte) {
		off := 0
		for _, ch := range c.children {
			off += copy(dst[off:], ch.Bytes())
		}
	})
}

// DecodeContainer reads children out of i's payload by repeatedly peeking
// the next marker, computing its Size, and slicing that many bytes as an
// owned child, until the cursor exactly reaches the end of the payload.
func DecodeContainer(i Ingredient) (Container, error) {
	return decodeChildren(i, wire.KindContainer)
}

// decodeChildren implements the tiling walk shared by Container and
// Library: children fully tile the payload, with no framing beyond each
// child's own header.
func decodeChildren(i Ingredient, want wire.Kind) (Container, error) {
	if i.Kind() != want {
		return Container{}, decodeErr(i.Kind(), 0, ErrStructuralMismatch)
	}
	payload := i.Payload()
	var children []Ingredient
	off := 0
	for off < len(payload) {
		sz, err := wire.ReadSize(payload[off:])
		if err != nil {
			return Container{}, decodeErr(i.Kind(), off, err)
		}
		if wire.KindOf(payload[off]) == wire.KindUnknown {
			return Container{}, decodeErr(i.Kind(), off, wire.ErrUnknownKind)
		}
		if sz == 0 || off+int(sz) > len(payload) {
			return Container{}, decodeErr(i.Kind(), off, wire.ErrTruncated)
		}
		children = append(children, CloneFrom(payload[off:off+int(sz)]))
		off += int(sz)
	}
	return Container{children: children}, nil
}
