// File: internal/auth/login_service_test.go
package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice_backend/internal/account"
	"backoffice_backend/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProvider struct {
	name           string
	exchangeCodeFn func(ctx context.Context, code string) (string, error)
	fetchProfileFn func(ctx context.Context, accessToken string) (*shared.OAuthUserProfile, error)
	exchangeCalls  int
	fetchCalls     int
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	m.exchangeCalls++
	return m.exchangeCodeFn(ctx, code)
}

func (m *mockProvider) FetchProfile(ctx context.Context, accessToken string) (*shared.OAuthUserProfile, error) {
	m.fetchCalls++
	return m.fetchProfileFn(ctx, accessToken)
}

type mockOAuthUsers struct {
	findOrCreateFn func(ctx context.Context, profile shared.OAuthUserProfile) (*shared.User, bool, error)
	calls          int
}

func (m *mockOAuthUsers) FindOrCreateOAuthUser(ctx context.Context, profile shared.OAuthUserProfile) (*shared.User, bool, error) {
	m.calls++
	return m.findOrCreateFn(ctx, profile)
}

func (m *mockOAuthUsers) GetUserByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	return nil, errors.New("not implemented")
}

type mockTokens struct {
	generateFn func(userID uuid.UUID) (string, time.Time, error)
}

func (m *mockTokens) GenerateToken(userID uuid.UUID) (string, time.Time, error) {
	return m.generateFn(userID)
}

func (m *mockTokens) ValidateToken(tokenString string) (*shared.Claims, error) {
	return nil, errors.New("not implemented")
}

func strPtr(s string) *string { return &s }

func TestLoginService_Login(t *testing.T) {
	userID := uuid.New()
	provider := &mockProvider{
		name: GitHubProviderName,
		exchangeCodeFn: func(ctx context.Context, code string) (string, error) {
			assert.Equal(t, "auth-code-1", code)
			return "gho_abc123", nil
		},
		fetchProfileFn: func(ctx context.Context, accessToken string) (*shared.OAuthUserProfile, error) {
			assert.Equal(t, "gho_abc123", accessToken)
			return &shared.OAuthUserProfile{
				Provider:          account.ProviderGitHub,
				ProviderAccountID: "12345",
				Email:             strPtr("jane@example.com"),
				Name:              strPtr("Jane Dev"),
				AvatarURL:         "https://avatars.githubusercontent.com/u/12345",
			}, nil
		},
	}
	users := &mockOAuthUsers{
		findOrCreateFn: func(ctx context.Context, profile shared.OAuthUserProfile) (*shared.User, bool, error) {
			assert.Equal(t, "jane@example.com", *profile.Email)
			return &shared.User{ID: userID, Email: *profile.Email}, true, nil
		},
	}
	tokens := &mockTokens{
		generateFn: func(id uuid.UUID) (string, time.Time, error) {
			assert.Equal(t, userID, id)
			return "signed.jwt.token", time.Now().Add(7 * 24 * time.Hour), nil
		},
	}

	service := NewLoginService(NewProviderRegistry(provider), users, tokens, zap.NewNop())

	token, err := service.Login(context.Background(), GitHubProviderName, "auth-code-1")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, 1, provider.exchangeCalls)
	assert.Equal(t, 1, provider.fetchCalls)
	assert.Equal(t, 1, users.calls)
}

func TestLoginService_Login_MissingEmail(t *testing.T) {
	provider := &mockProvider{
		name: GitHubProviderName,
		exchangeCodeFn: func(ctx context.Context, code string) (string, error) {
			return "gho_abc123", nil
		},
		fetchProfileFn: func(ctx context.Context, accessToken string) (*shared.OAuthUserProfile, error) {
			return &shared.OAuthUserProfile{
				Provider:          account.ProviderGitHub,
				ProviderAccountID: "12345",
				Email:             nil,
				AvatarURL:         "https://avatars.githubusercontent.com/u/12345",
			}, nil
		},
	}
	users := &mockOAuthUsers{
		findOrCreateFn: func(ctx context.Context, profile shared.OAuthUserProfile) (*shared.User, bool, error) {
			t.Fatal("no user may be written when the profile has no email")
			return nil, false, nil
		},
	}
	tokens := &mockTokens{
		generateFn: func(id uuid.UUID) (string, time.Time, error) {
			t.Fatal("no token may be issued when the profile has no email")
			return "", time.Time{}, nil
		},
	}

	service := NewLoginService(NewProviderRegistry(provider), users, tokens, zap.NewNop())

	_, err := service.Login(context.Background(), GitHubProviderName, "auth-code-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGitHubEmailRequired)
	assert.Equal(t, "Your GitHub account must have an email to authenticate.", ErrGitHubEmailRequired.Message)
	assert.Equal(t, 0, users.calls)
}

func TestLoginService_Login_UnknownProvider(t *testing.T) {
	service := NewLoginService(NewProviderRegistry(), &mockOAuthUsers{}, &mockTokens{}, zap.NewNop())

	_, err := service.Login(context.Background(), "gitlab", "auth-code-1")
	assert.Error(t, err)
}

func TestLoginService_Login_ExchangeFails(t *testing.T) {
	provider := &mockProvider{
		name: GitHubProviderName,
		exchangeCodeFn: func(ctx context.Context, code string) (string, error) {
			return "", errors.New("bad_verification_code")
		},
		fetchProfileFn: func(ctx context.Context, accessToken string) (*shared.OAuthUserProfile, error) {
			t.Fatal("profile must not be fetched when the exchange fails")
			return nil, nil
		},
	}
	service := NewLoginService(NewProviderRegistry(provider), &mockOAuthUsers{}, &mockTokens{}, zap.NewNop())

	_, err := service.Login(context.Background(), GitHubProviderName, "expired-code")
	require.Error(t, err)
	assert.Equal(t, 0, provider.fetchCalls)
}
