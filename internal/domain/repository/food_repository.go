// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for food persistence.
var (
	// ErrFoodNotFound is returned when no food document matches.
	ErrFoodNotFound = errors.New("food not found")
	// ErrDuplicateFood is returned when a food with the same name already exists.
	ErrDuplicateFood = errors.New("food already exists")
)

// FoodRepository is the persistence gateway for foods. It is the only
// component that issues food queries against the document store.
// Absence on update/delete is signaled through the sentinel errors
// above, derived from zero-match counts; it raises no HTTP-level
// errors itself.
type FoodRepository interface {
	// FindByID retrieves a food by its id.
	FindByID(ctx context.Context, id string) (*entity.Food, error)

	// FindAll retrieves every food as a snapshot read.
	FindAll(ctx context.Context) ([]*entity.Food, error)

	// FindByName retrieves a food by its exact name, used for
	// uniqueness checks. Returns (nil, nil) when no document matches.
	FindByName(ctx context.Context, name string) (*entity.Food, error)

	// Insert persists a new food document.
	Insert(ctx context.Context, food *entity.Food) error

	// Patch sends only the supplied fields of the update as a
	// field-level partial write, never a whole-document replace.
	Patch(ctx context.Context, update entity.FoodUpdate, updatedAt time.Time) error

	// DeleteByID removes the food with the given id.
	DeleteByID(ctx context.Context, id string) error
}
