// File: internal/auth/github.go
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"backoffice_backend/internal/account"
	"backoffice_backend/internal/config"
	"backoffice_backend/internal/shared"

	"go.uber.org/zap"
)

const (
	GitHubProviderName = "github"

	githubAccessTokenURL = "https://github.com/login/oauth/access_token"
	githubUserURL        = "https://api.github.com/user"
	githubOAuthScope     = "user:email"
)

// GitHubProvider implements Provider against the GitHub OAuth endpoints.
type GitHubProvider struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger

	// Endpoint URLs are fields so tests can point them at a fake server.
	tokenURL string
	userURL  string
}

var _ Provider = (*GitHubProvider)(nil)

// NewGitHubProvider creates a GitHub identity provider.
func NewGitHubProvider(cfg *config.Config, logger *zap.Logger) *GitHubProvider {
	return &GitHubProvider{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		logger:     logger.Named("GitHubProvider"),
		tokenURL:   githubAccessTokenURL,
		userURL:    githubUserURL,
	}
}

// Name returns the provider identifier used by the registry.
func (p *GitHubProvider) Name() string {
	return GitHubProviderName
}

type githubTokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	RedirectURI  string `json:"redirect_uri"`
	Scope        string `json:"scope"`
}

// ExchangeCode exchanges the authorization code for an access token.
// GitHub's token endpoint speaks JSON in both directions when asked to.
func (p *GitHubProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	payload := githubTokenRequest{
		ClientID:     p.cfg.GitHubOAuthClientID,
		ClientSecret: p.cfg.GitHubOAuthClientSecret,
		Code:         code,
		RedirectURI:  p.cfg.GitHubOAuthRedirectURI,
		Scope:        githubOAuthScope,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("github token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		p.logger.Error("GitHub token endpoint returned non-2xx",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return "", fmt.Errorf("github token endpoint returned status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken *string `json:"access_token"`
		TokenType   *string `json:"token_type"`
		Scope       *string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode github token response: %w", err)
	}
	if tokenResp.AccessToken == nil || *tokenResp.AccessToken == "" {
		return "", fmt.Errorf("github token response is missing access_token")
	}
	if tokenResp.Scope == nil {
		return "", fmt.Errorf("github token response is missing scope")
	}
	tokenType := "bearer"
	if tokenResp.TokenType != nil {
		tokenType = *tokenResp.TokenType
	}
	if tokenType != "bearer" {
		return "", fmt.Errorf("unexpected github token type %q", tokenType)
	}

	return *tokenResp.AccessToken, nil
}

// FetchProfile fetches the authenticated user's GitHub profile.
func (p *GitHubProvider) FetchProfile(ctx context.Context, accessToken string) (*shared.OAuthUserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github user request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		p.logger.Error("GitHub user endpoint returned non-2xx",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return nil, fmt.Errorf("github user endpoint returned status %d", resp.StatusCode)
	}

	var userResp struct {
		ID        *int64  `json:"id"`
		AvatarURL *string `json:"avatar_url"`
		Name      *string `json:"name"`
		Email     *string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		return nil, fmt.Errorf("failed to decode github user response: %w", err)
	}
	if userResp.ID == nil {
		return nil, fmt.Errorf("github user response is missing id")
	}
	if userResp.AvatarURL == nil {
		return nil, fmt.Errorf("github user response is missing avatar_url")
	}
	if parsed, err := url.ParseRequestURI(*userResp.AvatarURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("github user response has an invalid avatar_url %q", *userResp.AvatarURL)
	}

	return &shared.OAuthUserProfile{
		Provider:          account.ProviderGitHub,
		ProviderAccountID: strconv.FormatInt(*userResp.ID, 10),
		Email:             userResp.Email,
		Name:              userResp.Name,
		AvatarURL:         *userResp.AvatarURL,
	}, nil
}
