// Package wire contains the compact, self-describing record header used by
// watsonspec to frame every Ingredient value, plus the stream I/O that reads
// and writes exactly one record against an arbitrary byte source/sink.
//
// Header layout:
//
//	marker(1) | length(0|1|2|8, little-endian, total record size)
//
// The marker's top two bits select the SizeClass (how many length bytes
// follow); the bottom six bits select the Kind. All multi-byte integers in
// the format, including the length field, are little-endian.
//
// Decoders are written for bounds safety: every slice operation is preceded
// by a length check against what the caller actually supplied; on mismatch
// they return ErrTruncated rather than panicking. ErrUnknownKind is the
// sentinel the root package's structural decoders wrap when a record's Kind
// bits are not a known Kind.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrTruncated is returned when a decoder needs more bytes than the input
// slice or stream can provide.
var ErrTruncated = errors.New("watsonspec/wire: truncated input")

// ErrUnknownKind is returned when a marker byte's Kind bits are not one of
// the enumerated Kind values.
var ErrUnknownKind = errors.New("watsonspec/wire: unknown kind")

// SizeClass names the byte-width of the inline length field that follows
// the marker byte.
type SizeClass byte

const (
	Zero  SizeClass = 0 // no length bytes; record size is always 1
	One   SizeClass = 1 // 1-byte length
	Two   SizeClass = 2 // 2-byte length
	Eight SizeClass = 3 // 8-byte length
)

// Kind is the semantic type of a record, carried in the marker's low six bits.
type Kind byte

const (
	KindContainer Kind = 0x03
	KindBinary    Kind = 0x02
	KindHeader    Kind = 0x08
	KindLibrary   Kind = 0x0C
	KindMap       Kind = 0x0D
	KindZip       Kind = 0x1A
	KindFlags     Kind = 0x22
	KindFloat     Kind = 0x24
	KindInt32     Kind = 0x29
	KindInt64     Kind = 0x2C
	KindString    Kind = 0x33
	KindUInt64    Kind = 0x35
	KindFalse     Kind = 0x30
	KindTrue      Kind = 0x31
	KindNull      Kind = 0x3F

	// KindUnknown is never a real Kind codepoint; it's what KindOf returns
	// for a marker whose low six bits aren't in the table above.
	KindUnknown Kind = 0xFF
)

var knownKinds = map[Kind]bool{
	KindContainer: true, KindBinary: true, KindHeader: true, KindLibrary: true,
	KindMap: true, KindZip: true, KindFlags: true, KindFloat: true,
	KindInt32: true, KindInt64: true, KindString: true, KindUInt64: true,
	KindFalse: true, KindTrue: true, KindNull: true,
}

var kindNames = map[Kind]string{
	KindContainer: "container", KindBinary: "binary", KindHeader: "header",
	KindLibrary: "library", KindMap: "map", KindZip: "zip", KindFlags: "flags",
	KindFloat: "float", KindInt32: "int32", KindInt64: "int64",
	KindString: "string", KindUInt64: "uint64", KindFalse: "false",
	KindTrue: "true", KindNull: "null",
}

// String returns the Kind's lowercase name, or "unknown" for KindUnknown and
// any other unrecognized value.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// SizeClassOf extracts the SizeClass from a marker byte (bits 6-7).
func SizeClassOf(marker byte) SizeClass {
	return SizeClass((marker >> 6) & 0x3)
}

// KindOf extracts the Kind from a marker byte (bits 0-5). It returns
// KindUnknown if the low six bits don't name a known Kind.
func KindOf(marker byte) Kind {
	k := Kind(marker & 0x3F)
	if !knownKinds[k] {
		return KindUnknown
	}
	return k
}

// LengthBytes returns how many length bytes follow the marker for sc:
// {0,1,2,8}.
func LengthBytes(sc SizeClass) int {
	switch sc {
	case Zero:
		return 0
	case One:
		return 1
	case Two:
		return 2
	case Eight:
		return 8
	default:
		return 0
	}
}

// HeaderWidth returns LengthBytes(sc) + 1 (the marker byte itself).
func HeaderWidth(sc SizeClass) int {
	return LengthBytes(sc) + 1
}

// MinSizeClass returns the smallest SizeClass whose header, plus payloadLen
// bytes of payload, the length field of that class can represent. The
// thresholds intentionally stop one short of the naive 0xFF/0xFFFF
// boundaries (0xFE, 0xFFFE) — this is a wire-format quirk inherited from
// the original encoder and preserved for wire compatibility (see spec §9).
func MinSizeClass(payloadLen uint64) SizeClass {
	switch {
	case payloadLen == 0:
		return Zero
	case payloadLen < 0xFE:
		return One
	case payloadLen < 0xFFFE:
		return Two
	default:
		return Eight
	}
}

// MakeMarker packs sc and k into a single marker byte.
func MakeMarker(sc SizeClass, k Kind) byte {
	return (byte(sc) << 6) | (byte(k) & 0x3F)
}

// ReadSize reads the record's total size (header + payload) out of b, which
// must start at the marker byte and contain at least HeaderWidth(SizeClassOf
// (b[0])) bytes. For SizeClass Zero, the size is defined to be 1 regardless
// of what follows.
func ReadSize(b []byte) (uint64, error) {
	if len(b) < 1 {
		return 0, ErrTruncated
	}
	sc := SizeClassOf(b[0])
	w := LengthBytes(sc)
	if sc == Zero {
		return 1, nil
	}
	if len(b) < 1+w {
		return 0, ErrTruncated
	}
	switch w {
	case 1:
		return uint64(b[1]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(b[1:3])), nil
	case 8:
		return binary.LittleEndian.Uint64(b[1:9]), nil
	default:
		return 0, ErrTruncated
	}
}

// PutLength writes the length bytes for sc (little-endian) into dst, which
// must be at least LengthBytes(sc) long. It is a no-op for SizeClass Zero.
func PutLength(dst []byte, sc SizeClass, total uint64) {
	switch sc {
	case One:
		dst[0] = byte(total)
	case Two:
		binary.LittleEndian.PutUint16(dst, uint16(total))
	case Eight:
		binary.LittleEndian.PutUint64(dst, total)
	}
}
