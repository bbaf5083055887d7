// Package scaling parses ingredient quantities, scales them to a serving
// count and renders them back for display. Everything here is pure and safe
// for concurrent use; results are for display and are never stored.
package scaling

import "math"

// Scale returns ing adjusted from ctx.BaseServings to ctx.TargetServings.
// Anything that cannot be scaled comes back unchanged.
func Scale(ing Ingredient, ctx ScaleContext) Ingredient {
	if _, ok := ctx.Ratio(); !ok {
		return ing
	}

	src := ResolveSource(ing)
	var text string
	switch s := src.(type) {
	case Explicit:
		text = s.Amount
	case Embedded:
		text = s.Quantity
	default:
		return ing
	}

	quantity, ok := ParseAmount(text)
	if !ok || quantity == 0 {
		return ing
	}
	scaled, _ := ScaleQuantity(quantity, ctx)
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return ing
	}
	return Reconstruct(ing, FormatAmount(scaled), src)
}

// ScaleAll scales every ingredient into a new slice. A line that fails to
// scale is kept as is rather than failing the list.
func ScaleAll(ingredients []Ingredient, ctx ScaleContext) []Ingredient {
	if ingredients == nil {
		return nil
	}
	out := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		out[i] = Scale(ing, ctx)
	}
	return out
}
