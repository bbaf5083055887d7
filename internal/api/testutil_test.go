package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/testdb"
)

const testSecret = "test-secret"

// setupRecipeTestRouter wires a RecipeHandler to an in-memory database
func setupRecipeTestRouter(t *testing.T) (*gin.Engine, *service.RecipeService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recipes := service.NewRecipeService(testdb.NewSQLite(t), nil)
	handler := NewRecipeHandler(recipes, service.NewTokenService(testSecret), nil)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router, recipes
}

// createTestToken returns a bearer token for a fresh user
func createTestToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := service.NewTokenService(testSecret).GenerateToken(userID, "tester")
	require.NoError(t, err)
	return userID, token
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
