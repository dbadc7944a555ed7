package watsonspec

import (
	"encoding/binary"
	"sort"

	"github.com/ibd1279/watsonspec/wire"
)

// Map is an ordered, integer-keyed mapping to Ingredients. The on-wire
// order reflects however the bytes were written; the in-memory
// representation is always ordered by ascending key, so a Map that
// round-trips through encode/decode canonicalizes to key order (spec §5).
type Map struct {
	m map[uint32]Ingredient
}

// NewMap returns an empty Map ready to use.
func NewMap() Map {
	return Map{m: make(map[uint32]Ingredient)}
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.m) }

// Get returns the value for key, or the Null sentinel if key is absent.
func (m Map) Get(key uint32) Ingredient {
	if v, ok := m.m[key]; ok {
		return v
	}
	return Null()
}

// Contains reports whether key is present, distinguishing an explicit Null
// value from a missing key.
func (m Map) Contains(key uint32) bool {
	_, ok := m.m[key]
	return ok
}

// Set stores v under key, replacing any existing entry.
func (m *Map) Set(key uint32, v Ingredient) {
	if m.m == nil {
		m.m = make(map[uint32]Ingredient)
	}
	m.m[key] = v
}

// Keys returns the entry keys in ascending order.
func (m Map) Keys() []uint32 {
	keys := make([]uint32, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Encode emits entries in ascending key order: repeated [u32 key LE][child].
func (m Map) Encode() Ingredient {
	keys := m.Keys()
	total := 0
	for _, k := range keys {
		total += 4 + m.m[k].Size()
	}
	return newComposite(wire.KindMap, total, func(dst []byte) {
		off := 0
		for _, k := range keys {
			binary.LittleEndian.PutUint32(dst[off:off+4], k)
			off += 4
			off += copy(dst[off:], m.m[k].Bytes())
		}
	})
}

// DecodeMap reads [u32 key][child] entries until the payload is exhausted.
// Keys are read in wire order; on a duplicate key, the later occurrence
// wins (spec §4.5).
func DecodeMap(i Ingredient) (Map, error) {
	if i.Kind() != wire.KindMap {
		return Map{}, decodeErr(i.Kind(), 0, ErrStructuralMismatch)
	}
	payload := i.Payload()
	out := NewMap()
	off := 0
	for off < len(payload) {
		if off+4 > len(payload) {
			return Map{}, decodeErr(i.Kind(), off, wire.ErrTruncated)
		}
		key := binary.LittleEndian.Uint32(payload[off : off+4])
		off += 4
		sz, err := wire.ReadSize(payload[off:])
		if err != nil {
			return Map{}, decodeErr(i.Kind(), off, err)
		}
		if wire.KindOf(payload[off]) == wire.KindUnknown {
			return Map{}, decodeErr(i.Kind(), off, wire.ErrUnknownKind)
		}
		if sz == 0 || off+int(sz) > len(payload) {
			return Map{}, decodeErr(i.Kind(), off, wire.ErrTruncated)
		}
		out.Set(key, CloneFrom(payload[off:off+int(sz)]))
		off += int(sz)
	}
	return out, nil
}
