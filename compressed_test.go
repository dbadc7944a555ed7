package watsonspec

import (
	"strings"
	"testing"

	"github.com/ibd1279/watsonspec/wire"
)

func TestCompressedEncodeDecodeRoundTrip(t *testing.T) {
	inner := NewString(strings.Repeat("compressible-payload-", 50)).Bytes()
	c := NewCompressed(Adopt(inner))
	enc := c.Encode()
	if enc.Kind() != wire.KindZip {
		t.Fatalf("Kind() = %v, want KindZip", enc.Kind())
	}
	if enc.Size() >= len(inner) {
		t.Fatalf("compressed size %d not smaller than raw size %d", enc.Size(), len(inner))
	}

	dec, err := DecodeCompressed(enc)
	if err != nil {
		t.Fatalf("DecodeCompressed() error = %v", err)
	}
	if got := ToString(dec.Inner()); got != strings.Repeat("compressible-payload-", 50) {
		t.Fatalf("Inner() mismatch, len(got)=%d", len(got))
	}
}

func TestCompressedWrapsComposite(t *testing.T) {
	cont := NewContainer(NewInt32(1), NewInt32(2), NewInt32(3)).Encode()
	c := NewCompressed(cont)
	enc := c.Encode()

	dec, err := DecodeCompressed(enc)
	if err != nil {
		t.Fatalf("DecodeCompressed() error = %v", err)
	}
	inner, err := DecodeContainer(dec.Inner())
	if err != nil {
		t.Fatalf("DecodeContainer(inner) error = %v", err)
	}
	if inner.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", inner.Len())
	}
}

func TestDecodeCompressedRejectsWrongKind(t *testing.T) {
	_, err := DecodeCompressed(NewString("not zipped"))
	if err == nil {
		t.Fatalf("DecodeCompressed(String) error = nil, want error")
	}
}

func TestDecodeCompressedRejectsGarbageSnappyPayload(t *testing.T) {
	garbage := newScalar(wire.KindZip, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	_, err := DecodeCompressed(garbage)
	if err == nil {
		t.Fatalf("DecodeCompressed(garbage) error = nil, want error")
	}
}
