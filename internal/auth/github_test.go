// File: internal/auth/github_test.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice_backend/internal/account"
	"backoffice_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGitHubProvider(t *testing.T, tokenHandler, userHandler http.HandlerFunc) *GitHubProvider {
	t.Helper()

	mux := http.NewServeMux()
	if tokenHandler != nil {
		mux.HandleFunc("/login/oauth/access_token", tokenHandler)
	}
	if userHandler != nil {
		mux.HandleFunc("/user", userHandler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		GitHubOAuthClientID:     "client-id",
		GitHubOAuthClientSecret: "client-secret",
		GitHubOAuthRedirectURI:  "http://localhost:3000/api/auth/callback",
	}
	provider := NewGitHubProvider(cfg, zap.NewNop())
	provider.tokenURL = server.URL + "/login/oauth/access_token"
	provider.userURL = server.URL + "/user"
	return provider
}

func TestGitHubProvider_ExchangeCode(t *testing.T) {
	var gotBody map[string]string
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "gho_abc123",
			"token_type":   "bearer",
			"scope":        "user:email",
		})
	}, nil)

	token, err := provider.ExchangeCode(context.Background(), "auth-code-1")
	require.NoError(t, err)
	assert.Equal(t, "gho_abc123", token)

	assert.Equal(t, "client-id", gotBody["client_id"])
	assert.Equal(t, "client-secret", gotBody["client_secret"])
	assert.Equal(t, "auth-code-1", gotBody["code"])
	assert.Equal(t, "http://localhost:3000/api/auth/callback", gotBody["redirect_uri"])
}

func TestGitHubProvider_ExchangeCode_DefaultsTokenType(t *testing.T) {
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		// token_type omitted entirely; GitHub treats it as bearer.
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "gho_abc123",
			"scope":        "user:email",
		})
	}, nil)

	token, err := provider.ExchangeCode(context.Background(), "auth-code-1")
	require.NoError(t, err)
	assert.Equal(t, "gho_abc123", token)
}

func TestGitHubProvider_ExchangeCode_MissingAccessToken(t *testing.T) {
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"error": "bad_verification_code",
		})
	}, nil)

	_, err := provider.ExchangeCode(context.Background(), "expired-code")
	assert.Error(t, err)
}

func TestGitHubProvider_ExchangeCode_NonBearerTokenType(t *testing.T) {
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "gho_abc123",
			"token_type":   "mac",
			"scope":        "user:email",
		})
	}, nil)

	_, err := provider.ExchangeCode(context.Background(), "auth-code-1")
	assert.Error(t, err)
}

func TestGitHubProvider_ExchangeCode_Non2xx(t *testing.T) {
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, nil)

	_, err := provider.ExchangeCode(context.Background(), "auth-code-1")
	assert.Error(t, err)
}

func TestGitHubProvider_FetchProfile(t *testing.T) {
	provider := newTestGitHubProvider(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_abc123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"id":         12345,
			"avatar_url": "https://avatars.githubusercontent.com/u/12345",
			"name":       "Jane Dev",
			"email":      "jane@example.com",
		})
	})

	profile, err := provider.FetchProfile(context.Background(), "gho_abc123")
	require.NoError(t, err)

	assert.Equal(t, account.ProviderGitHub, profile.Provider)
	assert.Equal(t, "12345", profile.ProviderAccountID)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "jane@example.com", *profile.Email)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Jane Dev", *profile.Name)
	assert.Equal(t, "https://avatars.githubusercontent.com/u/12345", profile.AvatarURL)
}

func TestGitHubProvider_FetchProfile_NullEmailPassesThrough(t *testing.T) {
	provider := newTestGitHubProvider(t, nil, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":         12345,
			"avatar_url": "https://avatars.githubusercontent.com/u/12345",
			"name":       nil,
			"email":      nil,
		})
	})

	profile, err := provider.FetchProfile(context.Background(), "gho_abc123")
	require.NoError(t, err)

	// A null email is valid provider data. Rejecting it is the login
	// flow's decision, not the transport's.
	assert.Nil(t, profile.Email)
	assert.Nil(t, profile.Name)
}

func TestGitHubProvider_FetchProfile_MissingID(t *testing.T) {
	provider := newTestGitHubProvider(t, nil, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"avatar_url": "https://avatars.githubusercontent.com/u/12345",
		})
	})

	_, err := provider.FetchProfile(context.Background(), "gho_abc123")
	assert.Error(t, err)
}

func TestGitHubProvider_FetchProfile_InvalidAvatarURL(t *testing.T) {
	provider := newTestGitHubProvider(t, nil, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":         12345,
			"avatar_url": "not a url",
		})
	})

	_, err := provider.FetchProfile(context.Background(), "gho_abc123")
	assert.Error(t, err)
}
