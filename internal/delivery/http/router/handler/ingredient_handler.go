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

// IngredientHandlerParams holds dependencies for IngredientHandler, injected by Fx.
type IngredientHandlerParams struct {
	fx.In

	IngredientUC usecase.IngredientUsecase
	Logger       *slog.Logger
}

// IngredientHandler holds dependencies for ingredient-related handlers
type IngredientHandler struct {
	ingredientUC usecase.IngredientUsecase
	logger       *slog.Logger
}

// NewIngredientHandler is the constructor for IngredientHandler
func NewIngredientHandler(params IngredientHandlerParams) *IngredientHandler {
	return &IngredientHandler{
		ingredientUC: params.IngredientUC,
		logger:       params.Logger,
	}
}

// AddNewIngredientRequest represents the request body for creating an ingredient
type AddNewIngredientRequest struct {
	Name            string   `json:"name" validate:"required"`
	Rating          int      `json:"rating" validate:"min=1,max=10"`
	IsHealthyOption bool     `json:"isHealthyOption"`
	Cost            int      `json:"cost" validate:"min=1,max=3"`
	Macro           string   `json:"macro" validate:"required"`
	Barcodes        []string `json:"barcodes"`
}

// IngredientUpdateRequest represents the request body for a partial
// update. Fields left out of the body stay untouched.
type IngredientUpdateRequest struct {
	ID              string                    `json:"id"`
	Name            entity.Optional[string]   `json:"name"`
	Rating          entity.Optional[int]      `json:"rating"`
	IsHealthyOption entity.Optional[bool]     `json:"isHealthyOption"`
	Cost            entity.Optional[int]      `json:"cost"`
	Macro           entity.Optional[string]   `json:"macro"`
	Barcodes        entity.Optional[[]string] `json:"barcodes"`
}

// GetIngredientByID handles GET /ingredient?id=
func (h *IngredientHandler) GetIngredientByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.BadRequest(c, response.CodeBadRequest)
	}

	ingredient, err := h.ingredientUC.GetIngredientByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient)
}

// GetAllIngredients handles GET /ingredient/all
func (h *IngredientHandler) GetAllIngredients(c echo.Context) error {
	ingredients, err := h.ingredientUC.GetAllIngredients(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients)
}

// AddIngredient handles POST /ingredient/add
func (h *IngredientHandler) AddIngredient(c echo.Context) error {
	var req AddNewIngredientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, response.CodeBadRequest)
	}

	ingredient, err := h.ingredientUC.AddIngredient(c.Request().Context(), &usecase.NewIngredient{
		Name:            req.Name,
		Rating:          req.Rating,
		IsHealthyOption: req.IsHealthyOption,
		Cost:            req.Cost,
		Macro:           req.Macro,
		Barcodes:        req.Barcodes,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient)
}

// UpdateIngredient handles POST /ingredient/update
func (h *IngredientHandler) UpdateIngredient(c echo.Context) error {
	var req IngredientUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	update := entity.IngredientUpdate{
		ID:              req.ID,
		Name:            req.Name,
		Rating:          req.Rating,
		IsHealthyOption: req.IsHealthyOption,
		Cost:            req.Cost,
		Macro:           req.Macro,
		Barcodes:        req.Barcodes,
	}

	if err := h.ingredientUC.UpdateIngredient(c.Request().Context(), update); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// DeleteIngredient handles DELETE /ingredient?id=
func (h *IngredientHandler) DeleteIngredient(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.BadRequest(c, response.CodeBadRequest)
	}

	if err := h.ingredientUC.DeleteIngredient(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// handleError logs the failure with full detail server-side and writes
// the coarse machine-readable code to the client.
func (h *IngredientHandler) handleError(c echo.Context, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Error("ingredient request failed",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("error", err.Error()),
	)

	return response.HandleAppError(c, err)
}
