package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/larder/backend/internal/api"
	"github.com/pageza/larder/backend/internal/middleware"
)

// Options are the dependencies the router needs beyond the handlers
type Options struct {
	Logger      *zap.Logger
	CORSOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	scaleHandler *api.ScaleHandler,
	opts Options,
) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(opts.CORSOrigins))

	// Health check endpoint (no auth required)
	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	scaleHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)

	return router
}
