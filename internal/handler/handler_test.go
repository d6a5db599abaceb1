package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaapco/snaap_api/internal/config"
	"github.com/snaapco/snaap_api/internal/middleware"
	"github.com/snaapco/snaap_api/internal/service"
)

// Validation and parse failures respond before any store access, so these
// routes run against services with no backing database.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	orderHandler := NewOrderHandler(service.NewOrderService(nil, nil, nil), "")
	reviewHandler := NewReviewHandler(service.NewReviewService(nil))
	authHandler := NewAuthHandler(nil, middleware.NewLoginRateLimiter(), &config.Config{})
	productHandler := NewProductHandler(service.NewCatalogService(nil), nil, "")

	api := router.Group("/api")
	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/products/:id", productHandler.GetProduct)
	api.POST("/products/:id/reviews", reviewHandler.SubmitReview)
	api.GET("/auth/check", authHandler.Check)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestCreateOrderValidationEnvelope(t *testing.T) {
	router := testRouter()
	w, body := doJSON(t, router, http.MethodPost, "/api/orders",
		`{"products":[{"productId":1,"quantity":2}],"phone":"0712345678"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION_ERROR", body["error"])

	messages, ok := body["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "phone")
}

func TestCreateOrderEmptyBodyListsAllViolations(t *testing.T) {
	router := testRouter()
	w, body := doJSON(t, router, http.MethodPost, "/api/orders", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	messages, ok := body["messages"].([]interface{})
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestGetProductBadIDEnvelope(t *testing.T) {
	router := testRouter()
	w, body := doJSON(t, router, http.MethodGet, "/api/products/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INVALID_ID", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestSubmitReviewRatingEnvelope(t *testing.T) {
	router := testRouter()
	w, body := doJSON(t, router, http.MethodPost, "/api/products/7/reviews",
		`{"name":"Jane","comment":"ok","rating":9}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])

	messages, ok := body["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "between 1 and 5")
}

func TestAuthCheckWithoutToken(t *testing.T) {
	router := testRouter()
	w, body := doJSON(t, router, http.MethodGet, "/api/auth/check", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["isAdmin"])
}
