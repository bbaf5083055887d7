package api

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/larder/backend/internal/middleware"
	"github.com/pageza/larder/backend/internal/scaling"
	"github.com/pageza/larder/backend/internal/types"
)

func setupScaleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewScaleHandler(nil).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestScale(t *testing.T) {
	router := setupScaleRouter()

	req := types.ScaleRequest{
		Ingredients: []scaling.Ingredient{
			{Name: "flour", Amount: "2", Unit: "cups"},
			{Name: "2 cups flour"},
			{Name: "salt to taste"},
			{Name: "butter", Amount: "1/2", Unit: "cup"},
		},
		BaseServings:   4,
		TargetServings: 8,
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/scale", req, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.ScaleResponse
	decode(t, w, &resp)
	assert.Equal(t, []scaling.Ingredient{
		{Name: "flour", Amount: "4", Unit: "cups"},
		{Name: "4 cups flour"},
		{Name: "salt to taste"},
		{Name: "butter", Amount: "1", Unit: "cup"},
	}, resp.Ingredients)
	assert.Equal(t, 8, resp.TargetServings)
}

func TestScaleWithoutBaseServingsIsNoOp(t *testing.T) {
	router := setupScaleRouter()

	ingredients := []scaling.Ingredient{{Name: "flour", Amount: "2", Unit: "cups"}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/scale", types.ScaleRequest{
		Ingredients:    ingredients,
		TargetServings: 8,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ScaleResponse
	decode(t, w, &resp)
	assert.Equal(t, ingredients, resp.Ingredients)
}

func TestScaleBadRequest(t *testing.T) {
	router := setupScaleRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/scale", map[string]interface{}{
		"ingredients":     []scaling.Ingredient{{Name: "flour"}},
		"base_servings":   4,
		"target_servings": 0,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/scale", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScaleLimitWithoutLimiter(t *testing.T) {
	router := setupScaleRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/scale/limit", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var status types.RateLimitStatus
	decode(t, w, &status)
	assert.False(t, status.Limited)
}

func TestScaleLimitCountsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	router := gin.New()
	NewScaleHandler(middleware.NewScaleRateLimiter(client, 3, zap.NewNop())).RegisterRoutes(router.Group("/api/v1"))

	status := func() types.RateLimitStatus {
		w := doJSON(t, router, http.MethodGet, "/api/v1/scale/limit", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var s types.RateLimitStatus
		decode(t, w, &s)
		return s
	}

	before := status()
	assert.True(t, before.Limited)
	assert.Equal(t, 3, before.Limit)
	assert.Equal(t, 3, before.Remaining)
	assert.NotZero(t, before.ResetAt)

	// checking the status does not use up a request
	assert.Equal(t, 3, status().Remaining)

	req := types.ScaleRequest{
		Ingredients:    []scaling.Ingredient{{Name: "flour", Amount: "1", Unit: "cup"}},
		BaseServings:   1,
		TargetServings: 2,
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/scale", req, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 2, status().Remaining)
}
