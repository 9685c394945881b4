package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	mockRepo "pantry/internal/mocks/repository"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ingredientServiceFixtures struct {
	service        *ingredientService
	ingredientRepo *mockRepo.MockIngredientRepository
}

func createTestIngredientService(t *testing.T) ingredientServiceFixtures {
	ingredientRepo := mockRepo.NewMockIngredientRepository(t)
	service := NewIngredientService(ingredientRepo)

	return ingredientServiceFixtures{
		service:        service.(*ingredientService),
		ingredientRepo: ingredientRepo,
	}
}

func newIngredientInput() *usecase.NewIngredient {
	return &usecase.NewIngredient{
		Name:            "Chicken Breast",
		Rating:          7,
		IsHealthyOption: true,
		Cost:            entity.CostModerate,
		Macro:           entity.MacroProtein,
		Barcodes:        []string{"5000168001234"},
	}
}

func storedIngredient() *entity.Ingredient {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Ingredient{
		Consumable: entity.Consumable{
			ID:              "ingredient-1",
			Name:            "Chicken Breast",
			Rating:          7,
			IsHealthyOption: true,
			Cost:            entity.CostModerate,
			CreatedAt:       createdAt,
		},
		Macro:    entity.MacroProtein,
		Barcodes: []string{"5000168001234"},
	}
}

func TestIngredientService_GetIngredientByID(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	existing := storedIngredient()

	fx.ingredientRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	ingredient, err := fx.service.GetIngredientByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing, ingredient)
}

func TestIngredientService_GetIngredientByID_NotFound(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()

	fx.ingredientRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrIngredientNotFound)

	ingredient, err := fx.service.GetIngredientByID(ctx, "missing")
	assert.Nil(t, ingredient)
	assert.Equal(t, domainerrors.ErrIngredientNotFound, err)
}

func TestIngredientService_GetAllIngredients(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	existing := storedIngredient()

	fx.ingredientRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Ingredient{existing}, nil)

	ingredients, err := fx.service.GetAllIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, ingredients, 1)
}

func TestIngredientService_GetAllIngredients_EmptyCatalog(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()

	fx.ingredientRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Ingredient{}, nil)

	ingredients, err := fx.service.GetAllIngredients(ctx)
	assert.Nil(t, ingredients)
	assert.Equal(t, domainerrors.ErrNoIngredientsFound, err)
}

func TestIngredientService_AddIngredient(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	newIngredient := newIngredientInput()

	fx.ingredientRepo.EXPECT().
		FindByName(ctx, newIngredient.Name).
		Return(nil, nil)

	fx.ingredientRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Ingredient")).
		Return(nil)

	ingredient, err := fx.service.AddIngredient(ctx, newIngredient)
	require.NoError(t, err)
	require.NotNil(t, ingredient)

	assert.NotEmpty(t, ingredient.ID)
	assert.Equal(t, newIngredient.Name, ingredient.Name)
	assert.Equal(t, newIngredient.Macro, ingredient.Macro)
	assert.False(t, ingredient.CreatedAt.IsZero())
	assert.Nil(t, ingredient.UpdatedAt)
}

func TestIngredientService_AddIngredient_DuplicateName(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	newIngredient := newIngredientInput()

	// Insert must never be called when the name check already hits.
	fx.ingredientRepo.EXPECT().
		FindByName(ctx, newIngredient.Name).
		Return(storedIngredient(), nil)

	ingredient, err := fx.service.AddIngredient(ctx, newIngredient)
	assert.Nil(t, ingredient)
	assert.Equal(t, domainerrors.ErrIngredientAlreadyExists, err)
}

func TestIngredientService_AddIngredient_DuplicateOnInsert(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	newIngredient := newIngredientInput()

	fx.ingredientRepo.EXPECT().
		FindByName(ctx, newIngredient.Name).
		Return(nil, nil)

	fx.ingredientRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Ingredient")).
		Return(repository.ErrDuplicateIngredient)

	ingredient, err := fx.service.AddIngredient(ctx, newIngredient)
	assert.Nil(t, ingredient)
	assert.Equal(t, domainerrors.ErrIngredientAlreadyExists, err)
}

func TestIngredientService_UpdateIngredient(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	existing := storedIngredient()
	update := entity.IngredientUpdate{
		ID:    existing.ID,
		Macro: entity.Some(entity.MacroFat),
	}

	fx.ingredientRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	fx.ingredientRepo.EXPECT().
		Patch(ctx, update, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.UpdateIngredient(ctx, update)
	require.NoError(t, err)
}

func TestIngredientService_UpdateIngredient_MissingID(t *testing.T) {
	fx := createTestIngredientService(t)

	// The store is never consulted for an invalid update.
	err := fx.service.UpdateIngredient(context.Background(), entity.IngredientUpdate{
		Rating: entity.Some(9),
	})
	assert.Equal(t, domainerrors.ErrIngredientIDRequired, err)
}

func TestIngredientService_UpdateIngredient_NoUpdates(t *testing.T) {
	fx := createTestIngredientService(t)

	err := fx.service.UpdateIngredient(context.Background(), entity.IngredientUpdate{
		ID: "ingredient-1",
	})
	assert.Equal(t, domainerrors.ErrIngredientNoUpdates, err)
}

func TestIngredientService_UpdateIngredient_NotFound(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	update := entity.IngredientUpdate{
		ID:     "missing",
		Rating: entity.Some(9),
	}

	fx.ingredientRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrIngredientNotFound)

	err := fx.service.UpdateIngredient(ctx, update)
	assert.Equal(t, domainerrors.ErrIngredientNotFound, err)
}

func TestIngredientService_UpdateIngredient_PatchError(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	existing := storedIngredient()
	update := entity.IngredientUpdate{
		ID:     existing.ID,
		Rating: entity.Some(9),
	}

	fx.ingredientRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	fx.ingredientRepo.EXPECT().
		Patch(ctx, update, mock.AnythingOfType("time.Time")).
		Return(errors.New("connection reset"))

	err := fx.service.UpdateIngredient(ctx, update)
	assertDatabaseError(t, err)
}

func TestIngredientService_DeleteIngredient(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()

	fx.ingredientRepo.EXPECT().
		DeleteByID(ctx, "ingredient-1").
		Return(nil)

	err := fx.service.DeleteIngredient(ctx, "ingredient-1")
	require.NoError(t, err)
}

func TestIngredientService_DeleteIngredient_NotFound(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()

	fx.ingredientRepo.EXPECT().
		DeleteByID(ctx, "missing").
		Return(repository.ErrIngredientNotFound)

	err := fx.service.DeleteIngredient(ctx, "missing")
	assert.Equal(t, domainerrors.ErrIngredientNotFound, err)
}
