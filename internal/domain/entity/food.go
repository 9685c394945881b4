package entity

import (
	"time"

	domainerrors "pantry/internal/domain/errors"
)

// Food is a dish in the catalog. Ingredients are referenced by id;
// their order matters for display only.
type Food struct {
	Consumable
	Ingredients []string `json:"ingredients"`
	Course      string   `json:"course"`     // e.g. breakfast, lunch, dinner, snack.
	Difficulty  int      `json:"difficulty"` // 1=easy to 3=hard.
	Speed       int      `json:"speed"`      // 1=quick to 3=slow.
}

// NewFood constructs a Food with all mandatory fields. An empty
// ingredient list is allowed, a nil one is not.
func NewFood(id, name string, rating int, isHealthyOption bool, cost int, ingredients []string, course string, difficulty, speed int, now time.Time) (*Food, error) {
	if id == "" || name == "" || course == "" || ingredients == nil {
		return nil, domainerrors.ErrFoodInvalid
	}

	return &Food{
		Consumable: Consumable{
			ID:              id,
			Name:            name,
			Rating:          rating,
			IsHealthyOption: isHealthyOption,
			Cost:            cost,
			CreatedAt:       now,
		},
		Ingredients: ingredients,
		Course:      course,
		Difficulty:  difficulty,
		Speed:       speed,
	}, nil
}

// FoodUpdate is a sparse update: only set fields overwrite the entity.
type FoodUpdate struct {
	ID              string
	Name            Optional[string]
	Rating          Optional[int]
	IsHealthyOption Optional[bool]
	Cost            Optional[int]
	Ingredients     Optional[[]string]
	Course          Optional[string]
	Difficulty      Optional[int]
	Speed           Optional[int]
}

// Empty reports whether no optional field was supplied.
func (u FoodUpdate) Empty() bool {
	return !u.Name.IsSet() &&
		!u.Rating.IsSet() &&
		!u.IsHealthyOption.IsSet() &&
		!u.Cost.IsSet() &&
		!u.Ingredients.IsSet() &&
		!u.Course.IsSet() &&
		!u.Difficulty.IsSet() &&
		!u.Speed.IsSet()
}

// ApplyUpdate merges the supplied fields into the food and stamps
// UpdatedAt. It performs no I/O; the caller persists the result.
// CreatedAt is never touched.
func (f *Food) ApplyUpdate(update FoodUpdate, now time.Time) error {
	if update.ID == "" {
		return domainerrors.ErrFoodIDRequired
	}
	if update.Empty() {
		return domainerrors.ErrFoodNoUpdates
	}

	f.Name = update.Name.ValueOr(f.Name)
	f.Rating = update.Rating.ValueOr(f.Rating)
	f.IsHealthyOption = update.IsHealthyOption.ValueOr(f.IsHealthyOption)
	f.Cost = update.Cost.ValueOr(f.Cost)
	f.Ingredients = update.Ingredients.ValueOr(f.Ingredients)
	f.Course = update.Course.ValueOr(f.Course)
	f.Difficulty = update.Difficulty.ValueOr(f.Difficulty)
	f.Speed = update.Speed.ValueOr(f.Speed)
	f.UpdatedAt = &now

	return nil
}
