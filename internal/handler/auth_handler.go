package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/config"
	"github.com/snaapco/snaap_api/internal/middleware"
	"github.com/snaapco/snaap_api/internal/service"
	"github.com/snaapco/snaap_api/internal/utils"
)

// AuthHandler handles admin login, logout and session checks.
type AuthHandler struct {
	authService *service.AuthService
	limiter     *middleware.LoginRateLimiter
	cfg         *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService, limiter *middleware.LoginRateLimiter, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter, cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ip := c.ClientIP()
	if h.limiter.Limited(ip) {
		utils.Fail(c, 429, "RATE_LIMITED", "Too many failed attempts, try again later")
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		utils.FailValidation(c, []string{"password is required"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPassword) {
			h.limiter.RecordFailure(ip)
			utils.Fail(c, 401, "UNAUTHORIZED", "Invalid password")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Login failed")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.Env == "production", true)

	utils.OK(c, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromRequest(c)
	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			utils.Fail(c, 500, "SERVER_ERROR", "Logout failed")
			return
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cfg.Env == "production", true)
	utils.OK(c, gin.H{"message": "Logged out"})
}

// Check handles GET /api/auth/check — reports whether the caller holds a
// live admin session without failing the request.
func (h *AuthHandler) Check(c *gin.Context) {
	token := middleware.TokenFromRequest(c)
	if token == "" {
		utils.OK(c, gin.H{"isAdmin": false})
		return
	}

	if _, err := h.authService.Validate(c.Request.Context(), token); err != nil {
		utils.OK(c, gin.H{"isAdmin": false})
		return
	}
	utils.OK(c, gin.H{"isAdmin": true})
}
