// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"backoffice_backend/internal/account"
	"backoffice_backend/internal/app"
	"backoffice_backend/internal/auth"
	"backoffice_backend/internal/config"
	"backoffice_backend/internal/invite"
	"backoffice_backend/internal/jobs"
	"backoffice_backend/internal/org"
	"backoffice_backend/internal/permission"
	"backoffice_backend/internal/platform/database"
	"backoffice_backend/internal/platform/logger"
	"backoffice_backend/internal/project"
	"backoffice_backend/internal/shared"
	"backoffice_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Auth
		auth.NewJWTService,
		wire.Bind(new(shared.TokenService), new(*auth.JWTService)),
		provideBlocklist,
		wire.Bind(new(shared.TokenBlocklist), new(*auth.InMemoryBlocklistService)),
		auth.NewGitHubProvider,
		provideProviderRegistry,
		auth.NewLoginService,
		auth.NewHandler,

		// Users and provider accounts
		user.NewGORMRepository,
		account.NewGORMRepository,
		user.NewService,
		wire.Bind(new(shared.Service), new(*user.ServiceImplementation)),
		wire.Bind(new(shared.OAuthUserProvider), new(*user.ServiceImplementation)),
		user.NewHandler,

		// Permissions
		permission.NewDefaultDefiner,
		wire.Bind(new(permission.Definer), new(*permission.DefaultDefiner)),
		permission.NewResolver,

		// Organizations, projects, invites
		org.NewGORMRepository,
		org.NewService,
		org.NewHandler,
		project.NewGORMRepository,
		project.NewService,
		project.NewHandler,
		invite.NewGORMRepository,
		invite.NewService,
		invite.NewHandler,
		jobs.NewInviteExpiryJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
