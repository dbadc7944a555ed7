package watsonspec

import (
	"testing"

	"github.com/ibd1279/watsonspec/wire"
)

func TestScalarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Ingredient
		kind wire.Kind
	}{
		{"bool-true", NewBool(true), wire.KindTrue},
		{"bool-false", NewBool(false), wire.KindFalse},
		{"float", NewFloat(3.5), wire.KindFloat},
		{"int32", NewInt32(-42), wire.KindInt32},
		{"int64", NewInt64(-1 << 40), wire.KindInt64},
		{"uint64", NewUInt64(1 << 40), wire.KindUInt64},
		{"string", NewString("hello"), wire.KindString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Kind(); got != tt.kind {
				t.Fatalf("Kind() = %v, want %v", got, tt.kind)
			}
			rt := Borrow(tt.in.Bytes())
			if rt.Size() != tt.in.Size() {
				t.Fatalf("re-borrowed Size() = %d, want %d", rt.Size(), tt.in.Size())
			}
		})
	}
}

func TestScalarValueCoercion(t *testing.T) {
	if !ToBool(NewInt32(7)) {
		t.Fatalf("ToBool(NewInt32(7)) = false, want true")
	}
	if ToBool(NewInt32(0)) {
		t.Fatalf("ToBool(NewInt32(0)) = true, want false")
	}
	if ToBool(NewBool(false)) {
		t.Fatalf("ToBool(false) = true, want false")
	}
	if !ToBool(NewString("")) {
		t.Fatalf("ToBool(empty string) = false, want true (a String is neither Null, False, nor numeric)")
	}
	if ToBool(Null()) {
		t.Fatalf("ToBool(Null()) = true, want false")
	}

	if got := ToFloat64(NewFloat(2.25)); got != 2.25 {
		t.Fatalf("ToFloat64() = %v, want 2.25", got)
	}
	if got := ToInt32(NewInt32(-9)); got != -9 {
		t.Fatalf("ToInt32() = %d, want -9", got)
	}
	if got := ToInt64(NewInt64(-123456789012)); got != -123456789012 {
		t.Fatalf("ToInt64() = %d, want -123456789012", got)
	}
	if got := ToUint64(NewUInt64(123456789012)); got != 123456789012 {
		t.Fatalf("ToUint64() = %d, want 123456789012", got)
	}
	if got := ToString(NewString("abc")); got != "abc" {
		t.Fatalf("ToString(String) = %q, want abc", got)
	}
	if got := ToString(NewInt32(42)); got != "42" {
		t.Fatalf("ToString(Int32) = %q, want 42", got)
	}
	if got := ToString(NewContainer().Encode()); got != "" {
		t.Fatalf("ToString(Container) = %q, want empty", got)
	}
}

func TestScalarWrongKindCoercionIsZeroValue(t *testing.T) {
	s := NewString("not a number")
	if got := ToInt32(s); got != 0 {
		t.Fatalf("ToInt32(String) = %d, want 0", got)
	}
	if got := ToFloat64(s); got != 0 {
		t.Fatalf("ToFloat64(String) = %v, want 0", got)
	}
}

func TestFlagsRoundTrip(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, false, true}
	f := NewFlags(bits)
	for i, b := range bits {
		if got := FlagAt(f, i); got != b {
			t.Fatalf("FlagAt(%d) = %v, want %v", i, got, b)
		}
	}
	if FlagAt(f, 100) {
		t.Fatalf("FlagAt(out of range) = true, want false")
	}
}
