package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/larder/backend/internal/scaling"
)

// Servings actions a reader can take on a recipe page
const (
	ServingsIncrement = "increment"
	ServingsDecrement = "decrement"
	ServingsReset     = "reset"
)

// ScaleRequest asks for an ingredient list to be scaled without touching the store
type ScaleRequest struct {
	Ingredients    []scaling.Ingredient `json:"ingredients" binding:"required"`
	BaseServings   int                  `json:"base_servings"`
	TargetServings int                  `json:"target_servings" binding:"required,min=1"`
}

// ScaleResponse is the result of a ScaleRequest
type ScaleResponse struct {
	Ingredients    []scaling.Ingredient `json:"ingredients"`
	BaseServings   int                  `json:"base_servings"`
	TargetServings int                  `json:"target_servings"`
}

// ServingsRequest applies a servings action to the current target
type ServingsRequest struct {
	Current int    `json:"current"`
	Action  string `json:"action" binding:"required"`
}

// RecipeRequest is the body for creating or updating a recipe
type RecipeRequest struct {
	Name         string               `json:"name" binding:"required"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	Servings     int                  `json:"servings" binding:"min=0"`
	Ingredients  []scaling.Ingredient `json:"ingredients"`
	Instructions []string             `json:"instructions"`
}

// ScaledRecipe is a recipe as displayed at a chosen serving count. It is never stored.
type ScaledRecipe struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Servings       int                  `json:"servings"`
	TargetServings int                  `json:"target_servings"`
	Ingredients    []scaling.Ingredient `json:"ingredients"`
	Instructions   []string             `json:"instructions"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// RateLimitStatus is the caller's standing against the scaling rate limit
type RateLimitStatus struct {
	Limited   bool  `json:"limited"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetAt   int64 `json:"reset_at"`
}
