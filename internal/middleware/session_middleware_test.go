package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, mutate func(*http.Request)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	if mutate != nil {
		mutate(c.Request)
	}
	return c
}

func TestTokenFromRequestBearer(t *testing.T) {
	c := testContext(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer tok-123")
	})
	assert.Equal(t, "tok-123", TokenFromRequest(c))
}

func TestTokenFromRequestCookie(t *testing.T) {
	c := testContext(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-456"})
	})
	assert.Equal(t, "tok-456", TokenFromRequest(c))
}

func TestTokenFromRequestHeaderWinsOverCookie(t *testing.T) {
	c := testContext(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer header-tok")
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-tok"})
	})
	assert.Equal(t, "header-tok", TokenFromRequest(c))
}

func TestTokenFromRequestMissing(t *testing.T) {
	c := testContext(t, nil)
	assert.Equal(t, "", TokenFromRequest(c))

	c = testContext(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})
	assert.Equal(t, "", TokenFromRequest(c))
}
