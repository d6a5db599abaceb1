package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/snaapco/snaap_api/internal/cache"
	"github.com/snaapco/snaap_api/internal/config"
	"github.com/snaapco/snaap_api/internal/utils"
)

// AuthService implements the shared-password admin gate. A successful login
// issues a signed token whose session id lives in Redis; logout revokes the
// Redis entry, which immediately invalidates the token.
type AuthService struct {
	sessions *cache.SessionCache
	cfg      *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(sessions *cache.SessionCache, cfg *config.Config) *AuthService {
	return &AuthService{sessions: sessions, cfg: cfg}
}

// Login verifies the shared admin password and issues a session token.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", utils.ErrInvalidPassword
	}

	sessionID, err := s.sessions.Create(ctx, s.cfg.SessionTTL)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := utils.GenerateSessionToken(s.cfg.JWTSecret, sessionID, s.cfg.SessionTTL)
	if err != nil {
		_ = s.sessions.Revoke(ctx, sessionID)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Info().Str("session", sessionID).Msg("Admin login successful")
	return token, nil
}

// Validate checks the token signature and that its session is still live.
func (s *AuthService) Validate(ctx context.Context, token string) (string, error) {
	claims, err := utils.ValidateSessionToken(s.cfg.JWTSecret, token)
	if err != nil {
		return "", utils.ErrInvalidSession
	}

	alive, err := s.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return "", fmt.Errorf("failed to check session: %w", err)
	}
	if !alive {
		return "", utils.ErrInvalidSession
	}
	return claims.SessionID, nil
}

// Logout revokes the session behind the token. Invalid tokens are a no-op
// so logout never fails the client.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ValidateSessionToken(s.cfg.JWTSecret, token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	log.Info().Str("session", claims.SessionID).Msg("Admin session revoked")
	return nil
}
