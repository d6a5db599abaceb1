package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/service"
	"github.com/snaapco/snaap_api/internal/utils"
)

// SessionCookieName is the cookie carrying the admin session token for
// browser clients; API clients send it as a Bearer token instead.
const SessionCookieName = "admin_session"

// SessionMiddleware gates admin operations behind a live admin session.
type SessionMiddleware struct {
	authService *service.AuthService
}

// NewSessionMiddleware creates a new SessionMiddleware.
func NewSessionMiddleware(authService *service.AuthService) *SessionMiddleware {
	return &SessionMiddleware{authService: authService}
}

// Handle validates the session token and aborts with 401 when it is
// missing, malformed, expired, or revoked.
func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			utils.Fail(c, 401, "UNAUTHORIZED", "Missing admin session")
			c.Abort()
			return
		}

		sessionID, err := m.authService.Validate(c.Request.Context(), token)
		if err != nil {
			utils.Fail(c, 401, "UNAUTHORIZED", "Invalid or expired admin session")
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// TokenFromRequest extracts the session token from the Authorization header
// or the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}
