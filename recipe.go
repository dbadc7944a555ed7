package watsonspec

import "github.com/ibd1279/watsonspec/wire"

// Glossary is the bidirectional name↔index mapping derived from the first
// Library found among a Recipe's top-level children.
type Glossary struct {
	byName  map[string]int
	byIndex []string
}

func newGlossary(lib Library) Glossary {
	names := lib.Names()
	g := Glossary{byName: make(map[string]int, len(names)), byIndex: names}
	for idx, n := range names {
		g.byName[n] = idx
	}
	return g
}

// NameToIndex returns the index for name, or 0 if name is unknown — this
// is a lookup, not an error (spec §4.10).
func (g Glossary) NameToIndex(name string) int {
	if idx, ok := g.byName[name]; ok {
		return idx
	}
	return 0
}

// IndexToName returns the name at idx, or "" if idx is out of range.
func (g Glossary) IndexToName(idx int) string {
	if idx < 0 || idx >= len(g.byIndex) {
		return ""
	}
	return g.byIndex[idx]
}

// XlateNames translates a list of names to indices via NameToIndex.
func (g Glossary) XlateNames(names []string) []int {
	out := make([]int, len(names))
	for i, n := range names {
		out[i] = g.NameToIndex(n)
	}
	return out
}

// XlateIndices translates a list of indices to names via IndexToName.
func (g Glossary) XlateIndices(indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = g.IndexToName(idx)
	}
	return out
}

// Recipe is a top-level Container plus an extracted Glossary, with
// step-path navigation into nested Containers, Maps, and transparently
// unwrapped Compressed blocks.
type Recipe struct {
	root        Container
	glossary    Glossary
	hasGlossary bool
}

// NewRecipe constructs a Recipe from a top-level Ingredient. If top is a
// Container it is adopted as-is; otherwise it is wrapped in a single-
// element Container. The first Library found among the top-level children
// becomes the Glossary.
func NewRecipe(top Ingredient) (Recipe, error) {
	var root Container
	if top.Kind() == wire.KindContainer {
		c, err := DecodeContainer(top)
		if err != nil {
			return Recipe{}, err
		}
		root = c
	} else {
		root = NewContainer(top)
	}

	r := Recipe{root: root}
	for _, ch := range root.children {
		if ch.Kind() != wire.KindLibrary {
			continue
		}
		lib, err := DecodeLibrary(ch)
		if err != nil {
			continue
		}
		r.glossary = newGlossary(lib)
		r.hasGlossary = true
		break
	}
	return r, nil
}

// Glossary returns the Recipe's Glossary. If none was found among the
// top-level children, it is an empty Glossary (every name translates to 0,
// every index to "").
func (r Recipe) Glossary() Glossary { return r.glossary }

// Root returns the top-level Container.
func (r Recipe) Root() Container { return r.root }

// Ingredient navigates steps from the root Container and returns the
// Ingredient found, or the Null sentinel if navigation dead-ends. At each
// step: a Container is indexed (out-of-range → Null); a Map is looked up
// by key; a Compressed node is transparently decompressed without
// consuming the step (the step re-applies to the unwrapped value); any
// other kind terminates navigation and the remaining steps yield Null.
func (r Recipe) Ingredient(steps []uint32) Ingredient {
	current := r.root.Encode()
	i := 0
	for i < len(steps) {
		switch current.Kind() {
		case wire.KindZip:
			c, err := DecodeCompressed(current)
			if err != nil {
				return Null()
			}
			current = c.inner
		case wire.KindContainer:
			cont, err := DecodeContainer(current)
			if err != nil {
				return Null()
			}
			current = cont.At(int(steps[i]))
			i++
		case wire.KindMap:
			m, err := DecodeMap(current)
			if err != nil {
				return Null()
			}
			current = m.Get(steps[i])
			i++
		default:
			return Null()
		}
	}
	return current
}

// Bool navigates steps and coerces the result to bool via c, firing
// c.Hooks.DecodeFallback if the value found isn't bool-coercible.
func (r Recipe) Bool(c Coercer, steps []uint32) bool { return c.Bool(r.Ingredient(steps)) }

// Float64 navigates steps and coerces the result to float64 via c.
func (r Recipe) Float64(c Coercer, steps []uint32) float64 { return c.Float64(r.Ingredient(steps)) }

// Int32 navigates steps and coerces the result to int32 via c.
func (r Recipe) Int32(c Coercer, steps []uint32) int32 { return c.Int32(r.Ingredient(steps)) }

// Int64 navigates steps and coerces the result to int64 via c.
func (r Recipe) Int64(c Coercer, steps []uint32) int64 { return c.Int64(r.Ingredient(steps)) }

// Uint64 navigates steps and coerces the result to uint64 via c.
func (r Recipe) Uint64(c Coercer, steps []uint32) uint64 { return c.Uint64(r.Ingredient(steps)) }

// String navigates steps and coerces the result to string via c.
func (r Recipe) String(c Coercer, steps []uint32) string { return c.String(r.Ingredient(steps)) }

// Recipe navigates steps (as Ingredient does) and returns a sub-Recipe
// rooted at the value found there. If the sub-Recipe has no Library of its
// own, it inherits the parent's Glossary.
func (r Recipe) Recipe(steps []uint32) Recipe {
	v := r.Ingredient(steps)
	sub, err := NewRecipe(v)
	if err != nil {
		sub = Recipe{root: NewContainer(v)}
	}
	if !sub.hasGlossary {
		sub.glossary = r.glossary
		sub.hasGlossary = r.hasGlossary
	}
	return sub
}
