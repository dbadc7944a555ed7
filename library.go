package watsonspec

import "github.com/ibd1279/watsonspec/wire"

// Library is an ordered sequence of strings — a Container whose elements
// are all Strings, with a name↔index convenience surface used by Glossary.
type Library struct {
	names []string
}

// NewLibrary builds a Library holding a copy of names, in order.
func NewLibrary(names ...string) Library {
	return Library{names: append([]string(nil), names...)}
}

// Len returns the number of entries.
func (l Library) Len() int { return len(l.names) }

// At returns the name at idx, or "" if idx is out of range.
func (l Library) At(idx int) string {
	if idx < 0 || idx >= len(l.names) {
		return ""
	}
	return l.names[idx]
}

// Names returns a copy of the entries, in order.
func (l Library) Names() []string {
	return append([]string(nil), l.names...)
}

// Encode emits one String Ingredient per entry, in order.
func (l Library) Encode() Ingredient {
	children := make([]Ingredient, len(l.names))
	for i, n := range l.names {
		children[i] = NewString(n)
	}
	return Container{children: children}.encodeAs(wire.KindLibrary)
}

// DecodeLibrary decodes a Library. A non-string child is a structural
// error (spec §4.4).
func DecodeLibrary(i Ingredient) (Library, error) {
	cont, err := decodeChildren(i, wire.KindLibrary)
	if err != nil {
		return Library{}, err
	}
	names := make([]string, len(cont.children))
	off := 0
	for idx, ch := range cont.children {
		if ch.Kind() != wire.KindString {
			return Library{}, decodeErr(wire.KindLibrary, off, ErrStructuralMismatch)
		}
		names[idx] = ToString(ch)
		off += ch.Size()
	}
	return Library{names: names}, nil
}
