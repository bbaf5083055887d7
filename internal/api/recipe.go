package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/larder/backend/internal/middleware"
	"github.com/pageza/larder/backend/internal/models"
	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/types"
)

// RecipeHandler serves recipes and their scaled views
type RecipeHandler struct {
	recipeService service.IRecipeService
	tokens        middleware.TokenValidator
	limiter       *middleware.RateLimiter
}

// NewRecipeHandler creates a RecipeHandler. limiter may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, tokens middleware.TokenValidator, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		tokens:        tokens,
		limiter:       limiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.tokens)
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/scaled", h.limiter.Middleware(), h.GetScaledRecipe)
		recipes.POST("/:id/servings", h.limiter.Middleware(), h.AdjustServings)
		recipes.POST("", auth, h.CreateRecipe)
		recipes.PUT("/:id", auth, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		userID = &id
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// GetScaledRecipe returns the recipe with ingredients scaled to ?servings=N
func (h *RecipeHandler) GetScaledRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	target, err := strconv.Atoi(c.Query("servings"))
	if err != nil || target < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be a positive integer"})
		return
	}

	scaled, err := h.recipeService.GetScaledRecipe(c.Request.Context(), id, target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": scaled})
}

// AdjustServings applies increment, decrement or reset to the reader's current servings
func (h *RecipeHandler) AdjustServings(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	var req types.ServingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scaled, err := h.recipeService.AdjustServings(c.Request.Context(), id, req.Current, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": scaled})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe := recipeFromRequest(&req)
	recipe.UserID = userID.(uuid.UUID)

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": created})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, recipeFromRequest(&req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": updated})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id,
	})
}

func recipeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return uuid.Nil, false
	}
	return id, true
}

func recipeFromRequest(req *types.RecipeRequest) *models.Recipe {
	return &models.Recipe{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Servings:     req.Servings,
		Ingredients:  models.IngredientList(req.Ingredients),
		Instructions: models.StringList(req.Instructions),
	}
}
