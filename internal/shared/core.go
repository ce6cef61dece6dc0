// File: internal/shared/core.go
package shared

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// User represents a user in the system, decoupled from the persistence model.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OAuthUserProfile holds normalized profile data from an OAuth provider.
// Email is a pointer because providers may report an explicit absence,
// which callers must handle as a domain condition rather than a blank value.
type OAuthUserProfile struct {
	Provider          string
	ProviderAccountID string
	Email             *string
	Name              *string
	AvatarURL         string
}

// Claims represents the session token claims. The subject registered claim
// carries the user identifier.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	GenerateToken(userID uuid.UUID) (string, time.Time, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// TokenBlocklist tracks revoked token IDs until their natural expiry.
type TokenBlocklist interface {
	AddToBlocklist(ctx context.Context, jti string, expiresAt time.Time) error
	IsBlocklisted(ctx context.Context, jti string) (bool, error)
}

// Service defines the interface for user-related business logic.
type Service interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// OAuthUserProvider defines the user operations needed by the login flow.
type OAuthUserProvider interface {
	// FindOrCreateOAuthUser resolves a provider profile to a local user,
	// creating the user and the provider account link when absent.
	FindOrCreateOAuthUser(ctx context.Context, profile OAuthUserProfile) (usr *User, wasCreated bool, err error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}
