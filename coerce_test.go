package watsonspec

import "testing"

func TestCoercerFiresDecodeFallbackOnMismatch(t *testing.T) {
	rec := &hookRecorder{}
	c := Coercer{Hooks: rec}

	if got := c.Int32(NewString("not an int")); got != 0 {
		t.Fatalf("Int32() = %d, want 0", got)
	}
	if rec.decodeFallback != 1 {
		t.Fatalf("DecodeFallback fired %d times, want 1", rec.decodeFallback)
	}
}

func TestCoercerNoFallbackOnMatchingKind(t *testing.T) {
	rec := &hookRecorder{}
	c := Coercer{Hooks: rec}

	if got := c.String(NewString("abc")); got != "abc" {
		t.Fatalf("String() = %q, want abc", got)
	}
	if rec.decodeFallback != 0 {
		t.Fatalf("DecodeFallback fired %d times, want 0", rec.decodeFallback)
	}
}

func TestCoercerDefaultsToNopHooks(t *testing.T) {
	var c Coercer
	if got := c.Int64(NewString("x")); got != 0 {
		t.Fatalf("Int64() = %d, want 0", got)
	}
}

func TestCoercerBoolAllowsNumericAndBooleanKinds(t *testing.T) {
	rec := &hookRecorder{}
	c := Coercer{Hooks: rec}

	if !c.Bool(NewInt32(5)) {
		t.Fatalf("Bool(NewInt32(5)) = false, want true")
	}
	if rec.decodeFallback != 0 {
		t.Fatalf("DecodeFallback fired for a bool-coercible kind, want 0 fires")
	}
	if !c.Bool(NewContainer().Encode()) {
		t.Fatalf("Bool(Container) = false, want true")
	}
	if rec.decodeFallback != 1 {
		t.Fatalf("DecodeFallback fired %d times, want 1 for a non-coercible kind", rec.decodeFallback)
	}
}
