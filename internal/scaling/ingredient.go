package scaling

import "strings"

// Ingredient is a single recipe line as the store holds it. Amount and Unit
// are free text and may be empty, in which case Name may carry the quantity.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// Source says where an ingredient's quantity lives. It is one of Explicit,
// Embedded or NoQuantity.
type Source interface {
	source()
}

// Explicit is a quantity held in the dedicated amount field.
type Explicit struct {
	Amount string
	Unit   string
	Name   string
}

// Embedded is a quantity found at the start of the name.
type Embedded struct {
	Quantity  string
	Remainder string
}

// NoQuantity marks an ingredient with nothing to scale, e.g. "salt to taste".
type NoQuantity struct{}

func (Explicit) source()   {}
func (Embedded) source()   {}
func (NoQuantity) source() {}

// ResolveSource decides once where the quantity of ing comes from.
func ResolveSource(ing Ingredient) Source {
	if strings.TrimSpace(ing.Amount) != "" {
		return Explicit{Amount: ing.Amount, Unit: ing.Unit, Name: ing.Name}
	}
	if ex, ok := Extract(ing.Name); ok {
		return Embedded{Quantity: ex.Quantity, Remainder: ex.Remainder}
	}
	return NoQuantity{}
}
