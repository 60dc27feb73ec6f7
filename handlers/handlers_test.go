package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finbook/config"
	"finbook/middleware"
	"finbook/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the real router over an in-memory sqlite database.
func newTestServer(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := config.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, config.RunMigrations(db))
	t.Cleanup(func() { db.Close() })

	router := gin.New()
	routes.SetupAuthRoutes(&router.RouterGroup, db)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		routes.SetupSessionRoutes(protected, db)
		routes.SetupReportRoutes(protected, db)
		routes.SetupTransactionRoutes(protected, db)
		routes.SetupGoalRoutes(protected, db)
		routes.SetupCategoryRoutes(protected, db)
		routes.SetupUserRoutes(protected, db)
	}

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signup registers a user and returns an access token for them.
func signup(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "Test123!!",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/login", "", map[string]any{
		"username": username,
		"password": "Test123!!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := decode(t, w)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createCategory makes a reporting label and returns its id.
func createCategory(t *testing.T, router *gin.Engine, token, name string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/categories", token, map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}
