package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/larder/backend/internal/api"
	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/testdb"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recipes := service.NewRecipeService(testdb.NewSQLite(t), nil)
	router := SetupRouter(
		api.NewRecipeHandler(recipes, service.NewTokenService("secret"), nil),
		api.NewScaleHandler(nil),
		Options{CORSOrigins: []string{"http://localhost:5173"}},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	body := `{"ingredients":[{"name":"1 ½ cups oats"}],"base_servings":2,"target_servings":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scale", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"3 cups oats"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
