package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// NewIngredient carries the fields required to create an ingredient.
type NewIngredient struct {
	Name            string
	Rating          int
	IsHealthyOption bool
	Cost            int
	Macro           string
	Barcodes        []string
}

// IngredientUsecase defines the ingredient catalog use cases.
type IngredientUsecase interface {
	// GetIngredientByID returns the ingredient with the given id.
	GetIngredientByID(ctx context.Context, id string) (*entity.Ingredient, error)

	// GetAllIngredients returns every ingredient. An empty catalog is
	// reported as an error, not an empty list.
	GetAllIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// AddIngredient creates an ingredient after checking name uniqueness.
	AddIngredient(ctx context.Context, newIngredient *NewIngredient) (*entity.Ingredient, error)

	// UpdateIngredient validates and applies a partial update.
	UpdateIngredient(ctx context.Context, update entity.IngredientUpdate) error

	// DeleteIngredient removes the ingredient with the given id.
	DeleteIngredient(ctx context.Context, id string) error
}
