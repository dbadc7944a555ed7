package watsonspec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ibd1279/watsonspec/wire"
)

func mustDecodeContainer(t *testing.T, i Ingredient) Container {
	t.Helper()
	c, err := DecodeContainer(i)
	if err != nil {
		t.Fatalf("DecodeContainer() error = %v", err)
	}
	return c
}

func TestContainerEncodeDecodeRoundTrip(t *testing.T) {
	c := NewContainer(NewInt32(1), NewString("two"), NewBool(true))
	enc := c.Encode()
	if enc.Kind() != wire.KindContainer {
		t.Fatalf("Kind() = %v, want KindContainer", enc.Kind())
	}

	dec := mustDecodeContainer(t, enc)
	if dec.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", dec.Len())
	}
	if got := ToInt32(dec.At(0)); got != 1 {
		t.Fatalf("At(0) = %d, want 1", got)
	}
	if got := ToString(dec.At(1)); got != "two" {
		t.Fatalf("At(1) = %q, want two", got)
	}
	if !ToBool(dec.At(2)) {
		t.Fatalf("At(2) = false, want true")
	}
	if got := dec.At(99); !IsNull(got) {
		t.Fatalf("At(out of range) = %v, want Null", got)
	}
}

func TestContainerEmpty(t *testing.T) {
	c := NewContainer()
	enc := c.Encode()
	if enc.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", enc.Size())
	}
	dec := mustDecodeContainer(t, enc)
	if dec.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", dec.Len())
	}
}

func TestContainerNestedRoundTrip(t *testing.T) {
	inner := NewContainer(NewInt32(10), NewInt32(20)).Encode()
	outer := NewContainer(inner, NewString("sibling")).Encode()

	dec := mustDecodeContainer(t, outer)
	innerDec := mustDecodeContainer(t, dec.At(0))
	if diff := cmp.Diff([]int32{10, 20}, []int32{ToInt32(innerDec.At(0)), ToInt32(innerDec.At(1))}); diff != "" {
		t.Fatalf("nested children mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeContainerRejectsWrongKind(t *testing.T) {
	_, err := DecodeContainer(NewString("not a container"))
	if err == nil {
		t.Fatalf("DecodeContainer(String) error = nil, want error")
	}
}

func TestLibraryEncodeDecodeRoundTrip(t *testing.T) {
	lib := NewLibrary("first", "second", "third")
	enc := lib.Encode()
	if enc.Kind() != wire.KindLibrary {
		t.Fatalf("Kind() = %v, want KindLibrary", enc.Kind())
	}

	dec, err := DecodeLibrary(enc)
	if err != nil {
		t.Fatalf("DecodeLibrary() error = %v", err)
	}
	if diff := cmp.Diff(lib.Names(), dec.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
	if got := dec.At(1); got != "second" {
		t.Fatalf("At(1) = %q, want second", got)
	}
	if got := dec.At(99); got != "" {
		t.Fatalf("At(out of range) = %q, want empty", got)
	}
}

func TestDecodeLibraryRejectsNonStringChild(t *testing.T) {
	mixed := Container{children: []Ingredient{NewString("ok"), NewInt32(1)}}.encodeAs(wire.KindLibrary)
	_, err := DecodeLibrary(mixed)
	if err == nil {
		t.Fatalf("DecodeLibrary(mixed children) error = nil, want error")
	}
}
