// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	deliverymiddleware "pantry/internal/delivery/middleware"

	"pantry/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FoodHandler         *handler.FoodHandler
	IngredientHandler   *handler.IngredientHandler
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	foodHandler         *handler.FoodHandler
	ingredientHandler   *handler.IngredientHandler
	requestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		foodHandler:         params.FoodHandler,
		ingredientHandler:   params.IngredientHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths mirror the frontend contract: entity roots take ?id= query
// parameters, mutations live under /add and /update.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	foodGroup := e.Group("/food")
	{
		foodGroup.GET("", r.foodHandler.GetFoodByID)
		foodGroup.GET("/all", r.foodHandler.GetAllFood)
		foodGroup.POST("/add", r.foodHandler.AddFood)
		foodGroup.POST("/update", r.foodHandler.UpdateFood)
		foodGroup.DELETE("", r.foodHandler.DeleteFood)
	}

	ingredientGroup := e.Group("/ingredient")
	{
		ingredientGroup.GET("", r.ingredientHandler.GetIngredientByID)
		ingredientGroup.GET("/all", r.ingredientHandler.GetAllIngredients)
		ingredientGroup.POST("/add", r.ingredientHandler.AddIngredient)
		ingredientGroup.POST("/update", r.ingredientHandler.UpdateIngredient)
		ingredientGroup.DELETE("", r.ingredientHandler.DeleteIngredient)
	}
}
