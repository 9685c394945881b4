package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

// FoodHandler holds dependencies for food-related handlers
type FoodHandler struct {
	foodUC usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// AddNewFoodRequest represents the request body for creating a food
type AddNewFoodRequest struct {
	Name            string   `json:"name" validate:"required"`
	Rating          int      `json:"rating" validate:"min=1,max=10"`
	IsHealthyOption bool     `json:"isHealthyOption"`
	Cost            int      `json:"cost" validate:"min=1,max=3"`
	Ingredients     []string `json:"ingredients"`
	Course          string   `json:"course" validate:"required"`
	Difficulty      int      `json:"difficulty" validate:"min=1,max=3"`
	Speed           int      `json:"speed" validate:"min=1,max=3"`
}

// FoodUpdateRequest represents the request body for a partial update.
// Fields left out of the body stay untouched; fields present are
// applied, even when set to a zero value.
type FoodUpdateRequest struct {
	ID              string                    `json:"id"`
	Name            entity.Optional[string]   `json:"name"`
	Rating          entity.Optional[int]      `json:"rating"`
	IsHealthyOption entity.Optional[bool]     `json:"isHealthyOption"`
	Cost            entity.Optional[int]      `json:"cost"`
	Ingredients     entity.Optional[[]string] `json:"ingredients"`
	Course          entity.Optional[string]   `json:"course"`
	Difficulty      entity.Optional[int]      `json:"difficulty"`
	Speed           entity.Optional[int]      `json:"speed"`
}

// GetFoodByID handles GET /food?id=
func (h *FoodHandler) GetFoodByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.BadRequest(c, response.CodeBadRequest)
	}

	food, err := h.foodUC.GetFoodByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, food)
}

// GetAllFood handles GET /food/all
func (h *FoodHandler) GetAllFood(c echo.Context) error {
	foods, err := h.foodUC.GetAllFood(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, foods)
}

// AddFood handles POST /food/add
func (h *FoodHandler) AddFood(c echo.Context) error {
	var req AddNewFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, response.CodeBadRequest)
	}

	if req.Ingredients == nil {
		return response.BadRequest(c, response.CodeBadRequest)
	}

	food, err := h.foodUC.AddFood(c.Request().Context(), &usecase.NewFood{
		Name:            req.Name,
		Rating:          req.Rating,
		IsHealthyOption: req.IsHealthyOption,
		Cost:            req.Cost,
		Ingredients:     req.Ingredients,
		Course:          req.Course,
		Difficulty:      req.Difficulty,
		Speed:           req.Speed,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, food)
}

// UpdateFood handles POST /food/update
func (h *FoodHandler) UpdateFood(c echo.Context) error {
	var req FoodUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	update := entity.FoodUpdate{
		ID:              req.ID,
		Name:            req.Name,
		Rating:          req.Rating,
		IsHealthyOption: req.IsHealthyOption,
		Cost:            req.Cost,
		Ingredients:     req.Ingredients,
		Course:          req.Course,
		Difficulty:      req.Difficulty,
		Speed:           req.Speed,
	}

	if err := h.foodUC.UpdateFood(c.Request().Context(), update); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// DeleteFood handles DELETE /food?id=
func (h *FoodHandler) DeleteFood(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.BadRequest(c, response.CodeBadRequest)
	}

	if err := h.foodUC.DeleteFood(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// handleError logs the failure with full detail server-side and writes
// the coarse machine-readable code to the client.
func (h *FoodHandler) handleError(c echo.Context, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Error("food request failed",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("error", err.Error()),
	)

	return response.HandleAppError(c, err)
}
