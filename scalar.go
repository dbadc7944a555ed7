package watsonspec

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/ibd1279/watsonspec/wire"
)

// NewBool returns the 1-byte True or False value.
func NewBool(v bool) Ingredient {
	if v {
		return newScalar(wire.KindTrue, nil)
	}
	return newScalar(wire.KindFalse, nil)
}

// NewFloat encodes v as an IEEE-754 double, little-endian.
func NewFloat(v float64) Ingredient {
	var payload [8]byte
	binary.LittleEndian.PutUint64(payload[:], math.Float64bits(v))
	return newScalar(wire.KindFloat, payload[:])
}

// NewInt32 encodes v as a signed 32-bit little-endian integer.
func NewInt32(v int32) Ingredient {
	var payload [4]byte
	binary.LittleEndian.PutUint32(payload[:], uint32(v))
	return newScalar(wire.KindInt32, payload[:])
}

// NewInt64 encodes v as a signed 64-bit little-endian integer.
func NewInt64(v int64) Ingredient {
	var payload [8]byte
	binary.LittleEndian.PutUint64(payload[:], uint64(v))
	return newScalar(wire.KindInt64, payload[:])
}

// NewUInt64 encodes v as an unsigned 64-bit little-endian integer.
func NewUInt64(v uint64) Ingredient {
	var payload [8]byte
	binary.LittleEndian.PutUint64(payload[:], v)
	return newScalar(wire.KindUInt64, payload[:])
}

// NewString encodes s as raw UTF-8 bytes, not NUL-terminated.
func NewString(s string) Ingredient {
	return newScalar(wire.KindString, []byte(s))
}

// NewFlags encodes a bit vector; bit i is set iff bits[i] is true. The
// payload is ceil(len(bits)/8) bytes, so two vectors whose lengths round up
// to the same byte count are indistinguishable on the wire (spec §9) —
// callers that need the exact bit count must track it out-of-band.
func NewFlags(bits []bool) Ingredient {
	n := (len(bits) + 7) / 8
	payload := make([]byte, n)
	for i, b := range bits {
		if b {
			payload[i>>3] |= 1 << uint(i&7)
		}
	}
	return newScalar(wire.KindFlags, payload)
}

// IsNull reports whether i is the Null kind.
func IsNull(i Ingredient) bool { return i.Kind() == wire.KindNull }

// ToBool applies the relaxed coercion from spec §4.3: Null and False are
// false; Int32/Int64/UInt64 are a nonzero test; every other kind (including
// True and all composites) is true.
func ToBool(i Ingredient) bool {
	switch i.Kind() {
	case wire.KindNull, wire.KindFalse:
		return false
	case wire.KindInt32:
		return ToInt32(i) != 0
	case wire.KindInt64:
		return ToInt64(i) != 0
	case wire.KindUInt64:
		return ToUint64(i) != 0
	default:
		return true
	}
}

// ToFloat64 returns the decoded double, or 0 if i is not a Float.
func ToFloat64(i Ingredient) float64 {
	if i.Kind() != wire.KindFloat {
		return 0
	}
	p := i.Payload()
	if len(p) < 8 {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(p[:8]))
}

// ToInt32 returns the decoded int32, or 0 if i is not an Int32.
func ToInt32(i Ingredient) int32 {
	if i.Kind() != wire.KindInt32 {
		return 0
	}
	p := i.Payload()
	if len(p) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(p[:4]))
}

// ToInt64 returns the decoded int64, or 0 if i is not an Int64.
func ToInt64(i Ingredient) int64 {
	if i.Kind() != wire.KindInt64 {
		return 0
	}
	p := i.Payload()
	if len(p) < 8 {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(p[:8]))
}

// ToUint64 returns the decoded uint64, or 0 if i is not a UInt64.
func ToUint64(i Ingredient) uint64 {
	if i.Kind() != wire.KindUInt64 {
		return 0
	}
	p := i.Payload()
	if len(p) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(p[:8])
}

// ToString returns the raw string for a String kind; for Null/True/False it
// returns a canonical textual form, for numeric kinds a decimal rendering,
// and for everything else (composites) an empty string.
func ToString(i Ingredient) string {
	switch i.Kind() {
	case wire.KindString:
		return string(i.Payload())
	case wire.KindNull:
		return "null"
	case wire.KindTrue:
		return "true"
	case wire.KindFalse:
		return "false"
	case wire.KindInt32:
		return strconv.FormatInt(int64(ToInt32(i)), 10)
	case wire.KindInt64:
		return strconv.FormatInt(ToInt64(i), 10)
	case wire.KindUInt64:
		return strconv.FormatUint(ToUint64(i), 10)
	case wire.KindFloat:
		return strconv.FormatFloat(ToFloat64(i), 'g', -1, 64)
	default:
		return ""
	}
}

// FlagAt reports bit idx of a Flags value. An out-of-range idx (beyond the
// payload's byte count) returns false.
func FlagAt(i Ingredient, idx int) bool {
	if i.Kind() != wire.KindFlags || idx < 0 {
		return false
	}
	p := i.Payload()
	byteIdx := idx >> 3
	if byteIdx >= len(p) {
		return false
	}
	return p[byteIdx]&(1<<uint(idx&7)) != 0
}
