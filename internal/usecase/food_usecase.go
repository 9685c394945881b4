// Package usecase defines the application service interfaces and
// their input types.
package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// NewFood carries the fields required to create a food.
type NewFood struct {
	Name            string
	Rating          int
	IsHealthyOption bool
	Cost            int
	Ingredients     []string
	Course          string
	Difficulty      int
	Speed           int
}

// FoodUsecase defines the food catalog use cases.
type FoodUsecase interface {
	// GetFoodByID returns the food with the given id.
	GetFoodByID(ctx context.Context, id string) (*entity.Food, error)

	// GetAllFood returns every food. An empty catalog is reported as
	// an error, not an empty list.
	GetAllFood(ctx context.Context) ([]*entity.Food, error)

	// AddFood creates a food after checking name uniqueness.
	AddFood(ctx context.Context, newFood *NewFood) (*entity.Food, error)

	// UpdateFood validates and applies a partial update.
	UpdateFood(ctx context.Context, update entity.FoodUpdate) error

	// DeleteFood removes the food with the given id.
	DeleteFood(ctx context.Context, id string) error
}
