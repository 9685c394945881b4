package entity

import (
	"time"

	domainerrors "pantry/internal/domain/errors"
)

// Macro categories for ingredients.
const (
	MacroProtein      = "Protein"
	MacroCarbohydrate = "Carbohydrate"
	MacroFat          = "Fat"
	MacroVegetable    = "Vegetable"
	MacroFruit        = "Fruit"
	MacroSpice        = "Spice"
)

// Ingredient is a single component a Food can reference.
type Ingredient struct {
	Consumable
	Macro    string   `json:"macro"`    // Nutritional category tag.
	Barcodes []string `json:"barcodes"` // Optional scanner codes, may be absent.
}

// NewIngredient constructs an Ingredient with all mandatory fields.
// Barcodes may be nil.
func NewIngredient(id, name string, rating int, isHealthyOption bool, cost int, macro string, barcodes []string, now time.Time) (*Ingredient, error) {
	if id == "" || name == "" || macro == "" {
		return nil, domainerrors.ErrIngredientInvalid
	}

	return &Ingredient{
		Consumable: Consumable{
			ID:              id,
			Name:            name,
			Rating:          rating,
			IsHealthyOption: isHealthyOption,
			Cost:            cost,
			CreatedAt:       now,
		},
		Macro:    macro,
		Barcodes: barcodes,
	}, nil
}

// IngredientUpdate is a sparse update: only set fields overwrite the entity.
type IngredientUpdate struct {
	ID              string
	Name            Optional[string]
	Rating          Optional[int]
	IsHealthyOption Optional[bool]
	Cost            Optional[int]
	Macro           Optional[string]
	Barcodes        Optional[[]string]
}

// Empty reports whether no optional field was supplied.
func (u IngredientUpdate) Empty() bool {
	return !u.Name.IsSet() &&
		!u.Rating.IsSet() &&
		!u.IsHealthyOption.IsSet() &&
		!u.Cost.IsSet() &&
		!u.Macro.IsSet() &&
		!u.Barcodes.IsSet()
}

// ApplyUpdate merges the supplied fields into the ingredient and
// stamps UpdatedAt. It performs no I/O; the caller persists the
// result. CreatedAt is never touched.
func (i *Ingredient) ApplyUpdate(update IngredientUpdate, now time.Time) error {
	if update.ID == "" {
		return domainerrors.ErrIngredientIDRequired
	}
	if update.Empty() {
		return domainerrors.ErrIngredientNoUpdates
	}

	i.Name = update.Name.ValueOr(i.Name)
	i.Rating = update.Rating.ValueOr(i.Rating)
	i.IsHealthyOption = update.IsHealthyOption.ValueOr(i.IsHealthyOption)
	i.Cost = update.Cost.ValueOr(i.Cost)
	i.Macro = update.Macro.ValueOr(i.Macro)
	i.Barcodes = update.Barcodes.ValueOr(i.Barcodes)
	i.UpdatedAt = &now

	return nil
}
