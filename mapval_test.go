package watsonspec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ibd1279/watsonspec/wire"
)

func TestMapEncodeDecodeRoundTrip(t *testing.T) {
	var m Map
	m.Set(5, NewString("five"))
	m.Set(1, NewString("one"))
	m.Set(3, NewString("three"))

	enc := m.Encode()
	if enc.Kind() != wire.KindMap {
		t.Fatalf("Kind() = %v, want KindMap", enc.Kind())
	}

	dec, err := DecodeMap(enc)
	if err != nil {
		t.Fatalf("DecodeMap() error = %v", err)
	}
	if diff := cmp.Diff([]uint32{1, 3, 5}, dec.Keys()); diff != "" {
		t.Fatalf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if got := ToString(dec.Get(5)); got != "five" {
		t.Fatalf("Get(5) = %q, want five", got)
	}
	if got := dec.Get(42); !IsNull(got) {
		t.Fatalf("Get(missing) = %v, want Null", got)
	}
	if dec.Contains(42) {
		t.Fatalf("Contains(missing) = true, want false")
	}
	if !dec.Contains(1) {
		t.Fatalf("Contains(1) = false, want true")
	}
}

func TestMapEncodeOrdersAscendingByKey(t *testing.T) {
	var m Map
	m.Set(200, NewInt32(2))
	m.Set(10, NewInt32(1))

	enc := m.Encode()
	payload := enc.Payload()
	firstKey := uint32(payload[0]) | uint32(payload[1])<<8 | uint32(payload[2])<<16 | uint32(payload[3])<<24
	if firstKey != 10 {
		t.Fatalf("first encoded key = %d, want 10", firstKey)
	}
}

func TestMapDuplicateKeyLastWins(t *testing.T) {
	first := NewInt32(1).Bytes()
	second := NewInt32(2).Bytes()
	payload := append(append([]byte{7, 0, 0, 0}, first...), append([]byte{7, 0, 0, 0}, second...)...)
	raw := newComposite(wire.KindMap, len(payload), func(dst []byte) { copy(dst, payload) })

	dec, err := DecodeMap(raw)
	if err != nil {
		t.Fatalf("DecodeMap() error = %v", err)
	}
	if got := ToInt32(dec.Get(7)); got != 2 {
		t.Fatalf("Get(7) = %d, want 2 (later entry should win)", got)
	}
}

func TestDecodeMapRejectsWrongKind(t *testing.T) {
	_, err := DecodeMap(NewString("not a map"))
	if err == nil {
		t.Fatalf("DecodeMap(String) error = nil, want error")
	}
}

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := NewHeader()
	h.Set("zeta", NewInt32(1))
	h.Set("alpha", NewInt32(2))

	enc := h.Encode()
	if enc.Kind() != wire.KindHeader {
		t.Fatalf("Kind() = %v, want KindHeader", enc.Kind())
	}

	dec, err := DecodeHeader(enc)
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, dec.Keys()); diff != "" {
		t.Fatalf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if got := ToInt32(dec.Get("zeta")); got != 1 {
		t.Fatalf("Get(zeta) = %d, want 1", got)
	}
	if got := dec.Get("missing"); !IsNull(got) {
		t.Fatalf("Get(missing) = %v, want Null", got)
	}
}

func TestHeaderEncodeOrdersSortedByKey(t *testing.T) {
	h := NewHeader()
	h.Set("zz", NewInt32(1))
	h.Set("aa", NewInt32(2))
	enc := h.Encode()

	payload := enc.Payload()
	if payload[0] != 'a' {
		t.Fatalf("first encoded key byte = %q, want 'a'", payload[0])
	}
}

func TestDecodeHeaderRejectsWrongKind(t *testing.T) {
	_, err := DecodeHeader(NewString("not a header"))
	if err == nil {
		t.Fatalf("DecodeHeader(String) error = nil, want error")
	}
}

func TestDecodeHeaderMissingTerminatorIsTruncated(t *testing.T) {
	raw := newComposite(wire.KindHeader, 3, func(dst []byte) { copy(dst, []byte("key")) })
	_, err := DecodeHeader(raw)
	if err == nil {
		t.Fatalf("DecodeHeader(no NUL) error = nil, want error")
	}
}
