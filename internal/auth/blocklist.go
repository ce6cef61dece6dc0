// File: internal/auth/blocklist.go
package auth

import (
	"context"
	"sync"
	"time"

	"backoffice_backend/internal/shared"

	"github.com/patrickmn/go-cache"
)

// InMemoryBlocklistService is an in-memory implementation of
// shared.TokenBlocklist using an expiring cache. Session tokens are
// stateless, so revocation only needs to outlive the token itself.
type InMemoryBlocklistService struct {
	mu    sync.RWMutex
	cache *cache.Cache
}

var _ shared.TokenBlocklist = (*InMemoryBlocklistService)(nil)

// InMemoryBlocklistConfig holds the configuration for the InMemoryBlocklistService.
type InMemoryBlocklistConfig struct {
	DefaultExpiration time.Duration
	CleanupInterval   time.Duration
}

// NewInMemoryBlocklistService creates a new in-memory blocklist service.
func NewInMemoryBlocklistService(cfg InMemoryBlocklistConfig) *InMemoryBlocklistService {
	return &InMemoryBlocklistService{
		cache: cache.New(cfg.DefaultExpiration, cfg.CleanupInterval),
	}
}

// AddToBlocklist adds a token JTI to the cache for exactly as long as the
// token would have remained valid.
func (s *InMemoryBlocklistService) AddToBlocklist(ctx context.Context, jti string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	duration := time.Until(expiresAt)
	if duration <= 0 {
		return nil
	}

	s.cache.Set(jti, true, duration)
	return nil
}

// IsBlocklisted checks if a token JTI exists in the cache.
func (s *InMemoryBlocklistService) IsBlocklisted(ctx context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.cache.Get(jti)
	return found, nil
}
