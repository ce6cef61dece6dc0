// File: internal/auth/service.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"backoffice_backend/internal/config"
	"backoffice_backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWTService implements shared.TokenService using HS256 signed tokens.
type JWTService struct {
	cfg    *config.Config
	logger *zap.Logger
}

var _ shared.TokenService = (*JWTService)(nil)

// NewJWTService creates a new JWT service.
func NewJWTService(cfg *config.Config, logger *zap.Logger) *JWTService {
	return &JWTService{cfg: cfg, logger: logger.Named("JWTService")}
}

// GenerateToken issues a session token whose subject claim is the user's
// identifier, expiring after the configured lifetime (7 days by default).
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.cfg.JWTTokenExpiry)

	claims := &shared.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "backoffice_backend",
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("could not sign session token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ValidateToken validates a session token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*shared.Claims, error) {
	claims := &shared.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if parsedClaims, ok := token.Claims.(*shared.Claims); ok && token.Valid {
		return parsedClaims, nil
	}
	return nil, errors.New("invalid token claims")
}
