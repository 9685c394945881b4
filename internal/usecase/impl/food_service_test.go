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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type foodServiceFixtures struct {
	service  *foodService
	foodRepo *mockRepo.MockFoodRepository
}

func createTestFoodService(t *testing.T) foodServiceFixtures {
	foodRepo := mockRepo.NewMockFoodRepository(t)
	service := NewFoodService(foodRepo)

	return foodServiceFixtures{
		service:  service.(*foodService),
		foodRepo: foodRepo,
	}
}

func newFoodInput() *usecase.NewFood {
	return &usecase.NewFood{
		Name:            "Spaghetti Bolognese",
		Rating:          8,
		IsHealthyOption: false,
		Cost:            entity.CostModerate,
		Ingredients:     []string{"ingredient-1", "ingredient-2"},
		Course:          "dinner",
		Difficulty:      2,
		Speed:           2,
	}
}

func storedFood() *entity.Food {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Food{
		Consumable: entity.Consumable{
			ID:              "food-1",
			Name:            "Spaghetti Bolognese",
			Rating:          8,
			IsHealthyOption: false,
			Cost:            entity.CostModerate,
			CreatedAt:       createdAt,
		},
		Ingredients: []string{"ingredient-1", "ingredient-2"},
		Course:      "dinner",
		Difficulty:  2,
		Speed:       2,
	}
}

func TestFoodService_GetFoodByID(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	existing := storedFood()

	fx.foodRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	food, err := fx.service.GetFoodByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing, food)
}

func TestFoodService_GetFoodByID_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrFoodNotFound)

	food, err := fx.service.GetFoodByID(ctx, "missing")
	assert.Nil(t, food)
	assert.Equal(t, domainerrors.ErrFoodNotFound, err)
}

func TestFoodService_GetAllFood(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	existing := storedFood()

	fx.foodRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Food{existing}, nil)

	foods, err := fx.service.GetAllFood(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 1)
}

func TestFoodService_GetAllFood_EmptyCatalog(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Food{}, nil)

	foods, err := fx.service.GetAllFood(ctx)
	assert.Nil(t, foods)
	assert.Equal(t, domainerrors.ErrNoFoodsFound, err)
}

func TestFoodService_AddFood(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	newFood := newFoodInput()

	fx.foodRepo.EXPECT().
		FindByName(ctx, newFood.Name).
		Return(nil, nil)

	fx.foodRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Food")).
		Return(nil)

	food, err := fx.service.AddFood(ctx, newFood)
	require.NoError(t, err)
	require.NotNil(t, food)

	assert.NotEmpty(t, food.ID)
	assert.Equal(t, newFood.Name, food.Name)
	assert.Equal(t, newFood.Ingredients, food.Ingredients)
	assert.False(t, food.CreatedAt.IsZero())
	assert.Nil(t, food.UpdatedAt)
}

func TestFoodService_AddFood_DuplicateName(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	newFood := newFoodInput()

	// Insert must never be called when the name check already hits.
	fx.foodRepo.EXPECT().
		FindByName(ctx, newFood.Name).
		Return(storedFood(), nil)

	food, err := fx.service.AddFood(ctx, newFood)
	assert.Nil(t, food)
	assert.Equal(t, domainerrors.ErrFoodAlreadyExists, err)
}

func TestFoodService_AddFood_DuplicateOnInsert(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	newFood := newFoodInput()

	fx.foodRepo.EXPECT().
		FindByName(ctx, newFood.Name).
		Return(nil, nil)

	fx.foodRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Food")).
		Return(repository.ErrDuplicateFood)

	food, err := fx.service.AddFood(ctx, newFood)
	assert.Nil(t, food)
	assert.Equal(t, domainerrors.ErrFoodAlreadyExists, err)
}

func TestFoodService_UpdateFood(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	existing := storedFood()
	update := entity.FoodUpdate{
		ID:     existing.ID,
		Rating: entity.Some(9),
	}

	fx.foodRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	fx.foodRepo.EXPECT().
		Patch(ctx, update, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.UpdateFood(ctx, update)
	require.NoError(t, err)
}

func TestFoodService_UpdateFood_MissingID(t *testing.T) {
	fx := createTestFoodService(t)

	// The store is never consulted for an invalid update.
	err := fx.service.UpdateFood(context.Background(), entity.FoodUpdate{
		Rating: entity.Some(9),
	})
	assert.Equal(t, domainerrors.ErrFoodIDRequired, err)
}

func TestFoodService_UpdateFood_NoUpdates(t *testing.T) {
	fx := createTestFoodService(t)

	err := fx.service.UpdateFood(context.Background(), entity.FoodUpdate{
		ID: "food-1",
	})
	assert.Equal(t, domainerrors.ErrFoodNoUpdates, err)
}

func TestFoodService_UpdateFood_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	update := entity.FoodUpdate{
		ID:     "missing",
		Rating: entity.Some(9),
	}

	fx.foodRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrFoodNotFound)

	err := fx.service.UpdateFood(ctx, update)
	assert.Equal(t, domainerrors.ErrFoodNotFound, err)
}

func TestFoodService_DeleteFood(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().
		DeleteByID(ctx, "food-1").
		Return(nil)

	err := fx.service.DeleteFood(ctx, "food-1")
	require.NoError(t, err)
}

func TestFoodService_DeleteFood_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().
		DeleteByID(ctx, "missing").
		Return(repository.ErrFoodNotFound)

	err := fx.service.DeleteFood(ctx, "missing")
	assert.Equal(t, domainerrors.ErrFoodNotFound, err)
}
