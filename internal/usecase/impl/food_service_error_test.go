package impl

import (
	"context"
	"net/http"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertDatabaseError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
}

func TestFoodService_GetFoodByID_StoreError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().
		FindByID(ctx, "food-1").
		Return(nil, errors.New("connection reset"))

	food, err := fx.service.GetFoodByID(ctx, "food-1")
	assert.Nil(t, food)
	assertDatabaseError(t, err)
}

func TestFoodService_GetAllFood_StoreError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().
		FindAll(ctx).
		Return(nil, errors.New("connection reset"))

	foods, err := fx.service.GetAllFood(ctx)
	assert.Nil(t, foods)
	assertDatabaseError(t, err)
}

func TestFoodService_AddFood_NameCheckError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	newFood := newFoodInput()

	fx.foodRepo.EXPECT().
		FindByName(ctx, newFood.Name).
		Return(nil, errors.New("connection reset"))

	food, err := fx.service.AddFood(ctx, newFood)
	assert.Nil(t, food)
	assertDatabaseError(t, err)
}

func TestFoodService_AddFood_InsertError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	newFood := newFoodInput()

	fx.foodRepo.EXPECT().
		FindByName(ctx, newFood.Name).
		Return(nil, nil)

	fx.foodRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Food")).
		Return(errors.New("connection reset"))

	food, err := fx.service.AddFood(ctx, newFood)
	assert.Nil(t, food)
	assertDatabaseError(t, err)
}

func TestFoodService_UpdateFood_PatchError(t *testing.T) {
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
		Return(errors.New("connection reset"))

	err := fx.service.UpdateFood(ctx, update)
	assertDatabaseError(t, err)
}

func TestFoodService_DeleteFood_StoreError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().
		DeleteByID(ctx, "food-1").
		Return(errors.New("connection reset"))

	err := fx.service.DeleteFood(ctx, "food-1")
	assertDatabaseError(t, err)
}
