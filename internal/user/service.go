// File: internal/user/service.go
package user

import (
	"context"
	"fmt"
	"strings"

	"backoffice_backend/internal/account"
	"backoffice_backend/internal/common"
	"backoffice_backend/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceImplementation implements shared.Service and shared.OAuthUserProvider.
type ServiceImplementation struct {
	repo        Repository
	accountRepo account.Repository
	logger      *zap.Logger
}

var _ shared.Service = (*ServiceImplementation)(nil)
var _ shared.OAuthUserProvider = (*ServiceImplementation)(nil)

// NewService creates a new user service.
func NewService(repo Repository, accountRepo account.Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:        repo,
		accountRepo: accountRepo,
		logger:      logger.Named("UserService"),
	}
}

// GetUserByID retrieves a user by ID.
func (s *ServiceImplementation) GetUserByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return DBToShared(dbUser), nil
}

// GetUserByEmail retrieves a user by email.
func (s *ServiceImplementation) GetUserByEmail(ctx context.Context, email string) (*shared.User, error) {
	dbUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return DBToShared(dbUser), nil
}

// FindOrCreateOAuthUser resolves a provider profile to a local user, creating
// the user row and the provider account link when absent. Both writes are
// idempotent: a duplicate-key conflict from a concurrent first login is
// resolved by re-fetching the row the other request created.
func (s *ServiceImplementation) FindOrCreateOAuthUser(ctx context.Context, profile shared.OAuthUserProfile) (*shared.User, bool, error) {
	if profile.Email == nil || strings.TrimSpace(*profile.Email) == "" {
		return nil, false, common.ErrBadRequest.WithDetails("OAuth profile is missing an email address.")
	}
	email := strings.ToLower(strings.TrimSpace(*profile.Email))

	s.logger.Info("Processing OAuth user profile",
		zap.String("provider", profile.Provider),
		zap.String("providerAccountID", profile.ProviderAccountID),
		zap.String("email", email),
	)

	dbUser, wasCreated, err := s.findOrCreateUserByEmail(ctx, email, profile)
	if err != nil {
		return nil, false, err
	}

	if err := s.ensureAccountLink(ctx, profile, dbUser.ID); err != nil {
		return nil, false, err
	}

	return DBToShared(dbUser), wasCreated, nil
}

func (s *ServiceImplementation) findOrCreateUserByEmail(ctx context.Context, email string, profile shared.OAuthUserProfile) (*User, bool, error) {
	dbUser, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return dbUser, false, nil
	}
	if !isNotFound(err) {
		return nil, false, fmt.Errorf("failed to look up user by email: %w", err)
	}

	newUser := &User{
		Email: email,
		Name:  profile.Name,
	}
	if profile.AvatarURL != "" {
		avatarURL := profile.AvatarURL
		newUser.AvatarURL = &avatarURL
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		if isConflict(err) {
			// A concurrent login for the same email won the insert race.
			existing, findErr := s.repo.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, false, fmt.Errorf("failed to re-fetch user after conflict: %w", findErr)
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	s.logger.Info("Created new user from OAuth profile",
		zap.String("userID", newUser.ID.String()),
		zap.String("email", email),
	)
	return newUser, true, nil
}

func (s *ServiceImplementation) ensureAccountLink(ctx context.Context, profile shared.OAuthUserProfile, userID uuid.UUID) error {
	_, err := s.accountRepo.FindByProviderAndUserID(ctx, profile.Provider, userID)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to look up provider account: %w", err)
	}

	newAccount := &account.Account{
		Provider:          profile.Provider,
		ProviderAccountID: profile.ProviderAccountID,
		UserID:            userID,
	}
	if err := s.accountRepo.Create(ctx, newAccount); err != nil {
		if isConflict(err) {
			// The link was created by a concurrent request; nothing to do.
			return nil
		}
		return err
	}

	s.logger.Info("Linked provider account to user",
		zap.String("provider", profile.Provider),
		zap.String("userID", userID.String()),
	)
	return nil
}

func isNotFound(err error) bool {
	apiErr, ok := common.IsAPIError(err)
	return ok && apiErr.StatusCode == common.ErrNotFound.StatusCode
}

func isConflict(err error) bool {
	apiErr, ok := common.IsAPIError(err)
	return ok && apiErr.StatusCode == common.ErrConflict.StatusCode
}
