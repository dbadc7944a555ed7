package watsonspec

import (
	"bytes"
	"testing"

	"github.com/ibd1279/watsonspec/wire"
)

func TestNullIsOneByte(t *testing.T) {
	n := Null()
	if n.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", n.Size())
	}
	if n.Kind() != wire.KindNull {
		t.Fatalf("Kind() = %v, want KindNull", n.Kind())
	}
	if !IsNull(n) {
		t.Fatalf("IsNull(Null()) = false")
	}
}

func TestBorrowIgnoresTrailingBytes(t *testing.T) {
	buf := []byte{wire.MakeMarker(wire.Zero, wire.KindTrue), 0xDE, 0xAD, 0xBE, 0xEF}
	i := Borrow(buf)
	if i.IsOwned() {
		t.Fatalf("Borrow produced an owned value")
	}
	if i.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", i.Size())
	}
	if got := i.Bytes(); !bytes.Equal(got, buf[:1]) {
		t.Fatalf("Bytes() = %x, want %x", got, buf[:1])
	}
}

func TestCloneFromCopiesExactlySize(t *testing.T) {
	s := NewString("Testing")
	buf := append(s.Bytes(), 0xFF, 0xFF, 0xFF)
	c := CloneFrom(buf)
	if !c.IsOwned() {
		t.Fatalf("CloneFrom produced a borrowed value")
	}
	if !bytes.Equal(c.Bytes(), s.Bytes()) {
		t.Fatalf("CloneFrom = %x, want %x", c.Bytes(), s.Bytes())
	}
}

func TestCloneProducesOwnedCopyAfterSourceMutation(t *testing.T) {
	src := append([]byte(nil), NewString("abc").Bytes()...)
	borrowed := Borrow(src)
	clone := borrowed.Clone()

	for i := range src {
		src[i] = 0
	}
	if ToString(clone) != "abc" {
		t.Fatalf("clone observed source mutation: got %q", ToString(clone))
	}
}

func TestHeaderArithmetic(t *testing.T) {
	for _, sc := range []wire.SizeClass{wire.Zero, wire.One, wire.Two, wire.Eight} {
		want := wire.LengthBytes(sc) + 1
		if got := wire.HeaderWidth(sc); got != want {
			t.Fatalf("HeaderWidth(%v) = %d, want %d", sc, got, want)
		}
	}
}

func TestAdoptRoundTripsThroughPayload(t *testing.T) {
	data := []byte("payload-bytes")
	i := newScalar(wire.KindString, data)
	if !bytes.Equal(i.Payload(), data) {
		t.Fatalf("Payload() = %q, want %q", i.Payload(), data)
	}
	adopted := Adopt(i.Bytes())
	if !bytes.Equal(adopted.Payload(), data) {
		t.Fatalf("Adopt round trip Payload() = %q, want %q", adopted.Payload(), data)
	}
}
