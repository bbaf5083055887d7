package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/larder/backend/internal/middleware"
	"github.com/pageza/larder/backend/internal/scaling"
	"github.com/pageza/larder/backend/internal/types"
)

// ScaleHandler scales ingredient lists sent by the client. Nothing is stored.
type ScaleHandler struct {
	limiter *middleware.RateLimiter
}

func NewScaleHandler(limiter *middleware.RateLimiter) *ScaleHandler {
	return &ScaleHandler{limiter: limiter}
}

func (h *ScaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/scale", h.limiter.Middleware(), h.Scale)
	router.GET("/scale/limit", h.Limit)
}

// Scale returns the posted ingredients scaled from base_servings to target_servings
func (h *ScaleHandler) Scale(c *gin.Context) {
	var req types.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := scaling.ScaleContext{BaseServings: req.BaseServings, TargetServings: req.TargetServings}
	c.JSON(http.StatusOK, types.ScaleResponse{
		Ingredients:    scaling.ScaleAll(req.Ingredients, ctx),
		BaseServings:   req.BaseServings,
		TargetServings: req.TargetServings,
	})
}

// Limit reports how many scaling requests the caller has left in the current
// window without using one up.
func (h *ScaleHandler) Limit(c *gin.Context) {
	if !h.limiter.Enabled() {
		c.JSON(http.StatusOK, types.RateLimitStatus{Limited: false})
		return
	}

	remaining, reset, err := h.limiter.Remaining(c.Request.Context(), middleware.ClientKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.RateLimitStatus{
		Limited:   true,
		Limit:     h.limiter.Limit(),
		Remaining: remaining,
		ResetAt:   reset.Unix(),
	})
}
