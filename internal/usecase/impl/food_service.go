// Package impl implements the application services. Services enforce
// the business rules the entities alone cannot (uniqueness, existence)
// by consulting the persistence gateway, and translate gateway
// signals into typed application errors.
package impl

import (
	"context"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/errors"
	"pantry/internal/usecase"

	"github.com/google/uuid"
)

type foodService struct {
	foodRepo repository.FoodRepository
}

// NewFoodService creates a new food service instance
func NewFoodService(foodRepo repository.FoodRepository) usecase.FoodUsecase {
	return &foodService{
		foodRepo: foodRepo,
	}
}

// GetFoodByID returns the food with the given id.
func (s *foodService) GetFoodByID(ctx context.Context, id string) (*entity.Food, error) {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food by id")
	}

	return food, nil
}

// GetAllFood returns every food. An empty catalog is an error by
// contract, not an empty-list success.
func (s *foodService) GetAllFood(ctx context.Context) ([]*entity.Food, error) {
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find all foods")
	}

	if len(foods) == 0 {
		return nil, domainerrors.ErrNoFoodsFound
	}

	return foods, nil
}

// AddFood creates a food after checking name uniqueness. The check and
// the insert are separate reads; concurrent adds of the same name are
// not guarded against.
func (s *foodService) AddFood(ctx context.Context, newFood *usecase.NewFood) (*entity.Food, error) {
	existing, err := s.foodRepo.FindByName(ctx, newFood.Name)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food by name")
	}
	if existing != nil {
		return nil, domainerrors.ErrFoodAlreadyExists
	}

	food, err := entity.NewFood(
		uuid.New().String(),
		newFood.Name,
		newFood.Rating,
		newFood.IsHealthyOption,
		newFood.Cost,
		newFood.Ingredients,
		newFood.Course,
		newFood.Difficulty,
		newFood.Speed,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.foodRepo.Insert(ctx, food); err != nil {
		if errors.Is(err, repository.ErrDuplicateFood) {
			return nil, domainerrors.ErrFoodAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert food")
	}

	return food, nil
}

// UpdateFood validates the update, fetches the current food, merges
// the supplied fields and persists them as a field-level patch.
// Rejected updates never touch the store.
func (s *foodService) UpdateFood(ctx context.Context, update entity.FoodUpdate) error {
	if update.ID == "" {
		return domainerrors.ErrFoodIDRequired
	}
	if update.Empty() {
		return domainerrors.ErrFoodNoUpdates
	}

	food, err := s.foodRepo.FindByID(ctx, update.ID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrFoodNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find food by id")
	}

	if err := food.ApplyUpdate(update, time.Now().UTC()); err != nil {
		return err
	}

	if err := s.foodRepo.Patch(ctx, update, *food.UpdatedAt); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrFoodNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to patch food")
	}

	return nil
}

// DeleteFood removes the food with the given id. Ingredient references
// inside other foods are not cleaned up; there is no cascade.
func (s *foodService) DeleteFood(ctx context.Context, id string) error {
	if err := s.foodRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrFoodNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete food")
	}

	return nil
}
