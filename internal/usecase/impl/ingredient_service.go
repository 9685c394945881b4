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

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
}

// NewIngredientService creates a new ingredient service instance
func NewIngredientService(ingredientRepo repository.IngredientRepository) usecase.IngredientUsecase {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
	}
}

// GetIngredientByID returns the ingredient with the given id.
func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return nil, domainerrors.ErrIngredientNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ingredient by id")
	}

	return ingredient, nil
}

// GetAllIngredients returns every ingredient. An empty catalog is an
// error by contract, not an empty-list success.
func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find all ingredients")
	}

	if len(ingredients) == 0 {
		return nil, domainerrors.ErrNoIngredientsFound
	}

	return ingredients, nil
}

// AddIngredient creates an ingredient after checking name uniqueness.
func (s *ingredientService) AddIngredient(ctx context.Context, newIngredient *usecase.NewIngredient) (*entity.Ingredient, error) {
	existing, err := s.ingredientRepo.FindByName(ctx, newIngredient.Name)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ingredient by name")
	}
	if existing != nil {
		return nil, domainerrors.ErrIngredientAlreadyExists
	}

	ingredient, err := entity.NewIngredient(
		uuid.New().String(),
		newIngredient.Name,
		newIngredient.Rating,
		newIngredient.IsHealthyOption,
		newIngredient.Cost,
		newIngredient.Macro,
		newIngredient.Barcodes,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.ingredientRepo.Insert(ctx, ingredient); err != nil {
		if errors.Is(err, repository.ErrDuplicateIngredient) {
			return nil, domainerrors.ErrIngredientAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert ingredient")
	}

	return ingredient, nil
}

// UpdateIngredient validates the update, fetches the current
// ingredient, merges the supplied fields and persists them as a
// field-level patch. Rejected updates never touch the store.
func (s *ingredientService) UpdateIngredient(ctx context.Context, update entity.IngredientUpdate) error {
	if update.ID == "" {
		return domainerrors.ErrIngredientIDRequired
	}
	if update.Empty() {
		return domainerrors.ErrIngredientNoUpdates
	}

	ingredient, err := s.ingredientRepo.FindByID(ctx, update.ID)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return domainerrors.ErrIngredientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find ingredient by id")
	}

	if err := ingredient.ApplyUpdate(update, time.Now().UTC()); err != nil {
		return err
	}

	if err := s.ingredientRepo.Patch(ctx, update, *ingredient.UpdatedAt); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return domainerrors.ErrIngredientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to patch ingredient")
	}

	return nil
}

// DeleteIngredient removes the ingredient with the given id. Foods
// referencing it keep their dangling reference; there is no cascade.
func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if err := s.ingredientRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return domainerrors.ErrIngredientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ingredient")
	}

	return nil
}
