package scaling

// Reconstruct writes a formatted quantity back into the field it came from,
// returning a new Ingredient. The original is never modified.
func Reconstruct(original Ingredient, formatted string, src Source) Ingredient {
	switch s := src.(type) {
	case Explicit:
		out := original
		out.Amount = formatted
		return out
	case Embedded:
		out := original
		if s.Remainder == "" {
			out.Name = formatted
		} else {
			out.Name = formatted + " " + s.Remainder
		}
		return out
	default:
		return original
	}
}
