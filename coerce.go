package watsonspec

import "github.com/ibd1279/watsonspec/wire"

// Coercer wraps the free ToX conversion helpers with a Hooks.DecodeFallback
// callback, fired whenever the Ingredient's Kind isn't the one the requested
// conversion decodes (for Bool: anything but Null, True, False or an integer
// kind). The ToX helper's result is returned either way: a zero value for
// the numeric conversions, true for Bool, ToString's textual form for String.
// The bare ToX functions skip this bookkeeping entirely; use a Coercer when
// silent coercion fallbacks are worth observing.
type Coercer struct {
	Hooks Hooks
}

func (c Coercer) hooks() Hooks {
	if c.Hooks == nil {
		return NopHooks{}
	}
	return c.Hooks
}

func (c Coercer) report(i Ingredient, want wire.Kind) {
	if i.Kind() != want {
		c.hooks().DecodeFallback(i.Kind().String(), want.String())
	}
}

func (c Coercer) Bool(i Ingredient) bool {
	switch i.Kind() {
	case wire.KindNull, wire.KindFalse, wire.KindTrue, wire.KindInt32, wire.KindInt64, wire.KindUInt64:
	default:
		c.hooks().DecodeFallback(i.Kind().String(), "bool-coercible")
	}
	return ToBool(i)
}

func (c Coercer) Float64(i Ingredient) float64 {
	c.report(i, wire.KindFloat)
	return ToFloat64(i)
}

func (c Coercer) Int32(i Ingredient) int32 {
	c.report(i, wire.KindInt32)
	return ToInt32(i)
}

func (c Coercer) Int64(i Ingredient) int64 {
	c.report(i, wire.KindInt64)
	return ToInt64(i)
}

func (c Coercer) Uint64(i Ingredient) uint64 {
	c.report(i, wire.KindUInt64)
	return ToUint64(i)
}

func (c Coercer) String(i Ingredient) string {
	c.report(i, wire.KindString)
	return ToString(i)
}
