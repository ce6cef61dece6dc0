// File: internal/auth/login_service.go
package auth

import (
	"context"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/shared"

	"go.uber.org/zap"
)

// ErrGitHubEmailRequired is the predictable, user-facing failure for GitHub
// accounts without a public email. All other provider failures are server
// faults and propagate untranslated.
var ErrGitHubEmailRequired = common.ErrBadRequest.WithMessage("Your GitHub account must have an email to authenticate.")

// LoginService runs the OAuth login flow: code exchange, profile fetch,
// user/account upsert and session token issuance.
type LoginService struct {
	registry *ProviderRegistry
	users    shared.OAuthUserProvider
	tokens   shared.TokenService
	logger   *zap.Logger
}

// NewLoginService creates a new login service.
func NewLoginService(
	registry *ProviderRegistry,
	users shared.OAuthUserProvider,
	tokens shared.TokenService,
	logger *zap.Logger,
) *LoginService {
	return &LoginService{
		registry: registry,
		users:    users,
		tokens:   tokens,
		logger:   logger.Named("LoginService"),
	}
}

// Login exchanges the authorization code with the named provider, maps the
// provider profile to a local user and returns a signed session token.
// The two provider calls are strictly ordered and never retried: the
// authorization code is single-use.
func (s *LoginService) Login(ctx context.Context, providerName, code string) (string, error) {
	provider, err := s.registry.Get(providerName)
	if err != nil {
		return "", common.ErrBadRequest.WithDetails(err.Error())
	}

	accessToken, err := provider.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Error("Authorization code exchange failed",
			zap.String("provider", providerName),
			zap.Error(err),
		)
		return "", err
	}

	profile, err := provider.FetchProfile(ctx, accessToken)
	if err != nil {
		s.logger.Error("Provider profile fetch failed",
			zap.String("provider", providerName),
			zap.Error(err),
		)
		return "", err
	}

	if profile.Email == nil {
		return "", ErrGitHubEmailRequired
	}

	usr, wasCreated, err := s.users.FindOrCreateOAuthUser(ctx, *profile)
	if err != nil {
		s.logger.Error("Failed to resolve user from provider profile",
			zap.String("provider", providerName),
			zap.Error(err),
		)
		return "", err
	}

	token, _, err := s.tokens.GenerateToken(usr.ID)
	if err != nil {
		return "", common.ErrInternalServer.WithDetails("Could not generate session token.")
	}

	s.logger.Info("OAuth login successful",
		zap.String("provider", providerName),
		zap.String("userID", usr.ID.String()),
		zap.Bool("wasCreated", wasCreated),
	)
	return token, nil
}
