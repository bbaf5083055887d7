package scaling

// ScaleContext carries the recipe's own servings and the servings asked for
type ScaleContext struct {
	BaseServings   int `json:"base_servings"`
	TargetServings int `json:"target_servings"`
}

// Ratio returns target/base. It is false when scaling would change nothing
// or cannot be done: no base servings, no target, or target equal to base.
func (c ScaleContext) Ratio() (float64, bool) {
	if c.BaseServings <= 0 || c.TargetServings <= 0 || c.TargetServings == c.BaseServings {
		return 1, false
	}
	return float64(c.TargetServings) / float64(c.BaseServings), true
}

// ScaleQuantity multiplies quantity by the context ratio. Rounding is left to FormatAmount.
func ScaleQuantity(quantity float64, ctx ScaleContext) (float64, bool) {
	ratio, ok := ctx.Ratio()
	if !ok {
		return quantity, false
	}
	return quantity * ratio, true
}
