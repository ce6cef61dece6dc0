// File: cmd/server/providers.go
package main

import (
	"log"
	"time"

	"backoffice_backend/internal/auth"
	"backoffice_backend/internal/config"
	"backoffice_backend/internal/platform/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// provideProviderRegistry registers every configured OAuth provider.
func provideProviderRegistry(github *auth.GitHubProvider) *auth.ProviderRegistry {
	return auth.NewProviderRegistry(github)
}

// provideBlocklist builds the in-memory token blocklist. Entries live as
// long as the longest-lived token so a revoked token can never outlast
// its blocklist entry.
func provideBlocklist(cfg *config.Config) *auth.InMemoryBlocklistService {
	return auth.NewInMemoryBlocklistService(auth.InMemoryBlocklistConfig{
		DefaultExpiration: cfg.JWTTokenExpiry,
		CleanupInterval:   time.Hour,
	})
}

func provideCleanup(logger *zap.Logger, db *gorm.DB) func() {
	return func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
		log.Println("Cleanup finished.")
	}
}
