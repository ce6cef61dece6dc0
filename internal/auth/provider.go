// File: internal/auth/provider.go
package auth

import (
	"context"
	"fmt"

	"backoffice_backend/internal/shared"
)

// Provider defines the contract every external identity provider must
// implement: exchange an authorization code for an access token, then fetch
// the provider's view of the authenticated user. Implementations return
// identity facts only; user creation, linking and token issuance happen in
// the login service.
type Provider interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// ExchangeCode exchanges the authorization code for a provider access
	// token. Codes are single-use, so implementations must not retry.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile fetches the authenticated user's profile using the
	// access token as a bearer credential.
	FetchProfile(ctx context.Context, accessToken string) (*shared.OAuthUserProfile, error)
}

// ProviderRegistry holds all configured identity providers and allows
// lookup by name. It performs no auth logic itself.
type ProviderRegistry struct {
	providers map[string]Provider
}

// NewProviderRegistry registers the given providers by name.
func NewProviderRegistry(list ...Provider) *ProviderRegistry {
	m := make(map[string]Provider)
	for _, p := range list {
		m[p.Name()] = p
	}
	return &ProviderRegistry{providers: m}
}

// Get returns the provider by name or an error if not registered.
func (r *ProviderRegistry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}
