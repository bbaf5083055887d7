package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/larder/backend/internal/models"
	"github.com/pageza/larder/backend/internal/scaling"
	"github.com/pageza/larder/backend/internal/types"
)

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidServings = errors.New("servings must be at least 1")
	ErrUnknownAction   = errors.New("unknown servings action")
)

// RecipeService handles recipe operations
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		db:     db,
		logger: logger,
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	s.logger.Debug("recipe created", zap.String("recipe_id", recipe.ID.String()))
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// UpdateRecipe replaces the editable fields of a recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *models.Recipe) (*models.Recipe, error) {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	// Select so that zero servings and empty lists are written too
	err = s.db.WithContext(ctx).Model(existing).
		Select("Name", "Description", "Category", "Servings", "Ingredients", "Instructions").
		Updates(recipe).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// ListRecipes lists recipes for a user or all users if userID is nil
func (s *RecipeService) ListRecipes(ctx context.Context, userID *uuid.UUID) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// GetScaledRecipe loads a recipe and scales its ingredients to targetServings.
// The stored recipe is left as it was.
func (s *RecipeService) GetScaledRecipe(ctx context.Context, id uuid.UUID, targetServings int) (*types.ScaledRecipe, error) {
	if targetServings < 1 {
		return nil, ErrInvalidServings
	}
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return ScaleRecipe(recipe, targetServings), nil
}

// AdjustServings applies a servings action to the reader's current target and
// returns the recipe scaled to the new target. A current of 0 means the
// reader has not changed the servings yet.
func (s *RecipeService) AdjustServings(ctx context.Context, id uuid.UUID, current int, action string) (*types.ScaledRecipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	servings := scaling.Restore(recipe.Servings, current)
	switch action {
	case types.ServingsIncrement:
		servings.Increment()
	case types.ServingsDecrement:
		servings.Decrement()
	case types.ServingsReset:
		servings.Reset()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return ScaleRecipe(recipe, servings.Target()), nil
}

// ScaleRecipe builds the display view of recipe at targetServings
func ScaleRecipe(recipe *models.Recipe, targetServings int) *types.ScaledRecipe {
	return &types.ScaledRecipe{
		ID:             recipe.ID,
		Name:           recipe.Name,
		Description:    recipe.Description,
		Category:       recipe.Category,
		Servings:       recipe.Servings,
		TargetServings: targetServings,
		Ingredients:    scaling.ScaleAll(recipe.Ingredients, recipe.ScaleContext(targetServings)),
		Instructions:   recipe.Instructions,
		UpdatedAt:      recipe.UpdatedAt,
	}
}
