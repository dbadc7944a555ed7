package watsonspec

import (
	"bytes"
	"sort"

	"github.com/ibd1279/watsonspec/wire"
)

// Header is an ordered, string-keyed mapping to Ingredients, with
// NUL-terminated keys on the wire. Encode emits entries sorted by key, so
// output is reproducible independent of insertion order (spec §4.6 asks
// reimplementations to pick a total order; this one sorts).
type Header struct {
	m map[string]Ingredient
}

// NewHeader returns an empty Header ready to use.
func NewHeader() Header {
	return Header{m: make(map[string]Ingredient)}
}

// Len returns the number of entries.
func (h Header) Len() int { return len(h.m) }

// Get returns the value for key, or the Null sentinel if key is absent.
func (h Header) Get(key string) Ingredient {
	if v, ok := h.m[key]; ok {
		return v
	}
	return Null()
}

// Contains reports whether key is present.
func (h Header) Contains(key string) bool {
	_, ok := h.m[key]
	return ok
}

// Set stores v under key, replacing any existing entry. Empty keys are
// accepted but discouraged (spec §9: ambiguous with zero-byte padding).
func (h *Header) Set(key string, v Ingredient) {
	if h.m == nil {
		h.m = make(map[string]Ingredient)
	}
	h.m[key] = v
}

// Keys returns the entry keys, sorted.
func (h Header) Keys() []string {
	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode emits entries in sorted key order: repeated
// [NUL-terminated key][child].
func (h Header) Encode() Ingredient {
	keys := h.Keys()
	total := 0
	for _, k := range keys {
		total += len(k) + 1 + h.m[k].Size()
	}
	return newComposite(wire.KindHeader, total, func(dst []byte) {
		off := 0
		for _, k := range keys {
			off += copy(dst[off:], k)
			dst[off] = 0
			off++
			off += copy(dst[off:], h.m[k].Bytes())
		}
	})
}

// DecodeHeader reads [NUL-terminated key][child] entries until the payload
// is exhausted. The terminating 0x00 is consumed and excluded from the
// key. On a duplicate key, the later occurrence wins.
func DecodeHeader(i Ingredient) (Header, error) {
	if i.Kind() != wire.KindHeader {
		return Header{}, decodeErr(i.Kind(), 0, ErrStructuralMismatch)
	}
	payload := i.Payload()
	out := NewHeader()
	off := 0
	for off < len(payload) {
		nul := bytes.IndexByte(payload[off:], 0)
		if nul < 0 {
			return Header{}, decodeErr(i.Kind(), off, wire.ErrTruncated)
		}
		key := string(payload[off : off+nul])
		off += nul + 1
		sz, err := wire.ReadSize(payload[off:])
		if err != nil {
			return Header{}, decodeErr(i.Kind(), off, err)
		}
		if wire.KindOf(payload[off]) == wire.KindUnknown {
			return Header{}, decodeErr(i.Kind(), off, wire.ErrUnknownKind)
		}
		if sz == 0 || off+int(sz) > len(payload) {
			return Header{}, decodeErr(i.Kind(), off, wire.ErrTruncated)
		}
		out.Set(key, CloneFrom(payload[off:off+int(sz)]))
		off += int(sz)
	}
	return out, nil
}
