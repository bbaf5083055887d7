package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/larder/backend/internal/models"
	"github.com/pageza/larder/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	ListRecipes(ctx context.Context, userID *uuid.UUID) ([]*models.Recipe, error)
	GetScaledRecipe(ctx context.Context, id uuid.UUID, targetServings int) (*types.ScaledRecipe, error)
	AdjustServings(ctx context.Context, id uuid.UUID, current int, action string) (*types.ScaledRecipe, error)
}

// ITokenService defines the interface for token operations
type ITokenService interface {
	GenerateToken(userID uuid.UUID, username string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
