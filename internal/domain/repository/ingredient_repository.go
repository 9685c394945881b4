package repository

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for ingredient persistence.
var (
	// ErrIngredientNotFound is returned when no ingredient document matches.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrDuplicateIngredient is returned when an ingredient with the same name already exists.
	ErrDuplicateIngredient = errors.New("ingredient already exists")
)

// IngredientRepository is the persistence gateway for ingredients.
type IngredientRepository interface {
	// FindByID retrieves an ingredient by its id.
	FindByID(ctx context.Context, id string) (*entity.Ingredient, error)

	// FindAll retrieves every ingredient as a snapshot read.
	FindAll(ctx context.Context) ([]*entity.Ingredient, error)

	// FindByName retrieves an ingredient by its exact name, used for
	// uniqueness checks. Returns (nil, nil) when no document matches.
	FindByName(ctx context.Context, name string) (*entity.Ingredient, error)

	// Insert persists a new ingredient document.
	Insert(ctx context.Context, ingredient *entity.Ingredient) error

	// Patch sends only the supplied fields of the update as a
	// field-level partial write, never a whole-document replace.
	Patch(ctx context.Context, update entity.IngredientUpdate, updatedAt time.Time) error

	// DeleteByID removes the ingredient with the given id.
	DeleteByID(ctx context.Context, id string) error
}
