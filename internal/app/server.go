// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"backoffice_backend/internal/auth"
	"backoffice_backend/internal/config"
	"backoffice_backend/internal/invite"
	"backoffice_backend/internal/jobs"
	"backoffice_backend/internal/middleware"
	"backoffice_backend/internal/org"
	"backoffice_backend/internal/project"
	"backoffice_backend/internal/shared"
	"backoffice_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	authHandler    *auth.Handler
	userHandler    *user.Handler
	orgHandler     *org.Handler
	projectHandler *project.Handler
	inviteHandler  *invite.Handler

	// Jobs
	inviteExpiryJob *jobs.InviteExpiryJob

	// Middleware instances
	authMW gin.HandlerFunc
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	orgHandler *org.Handler,
	projectHandler *project.Handler,
	inviteHandler *invite.Handler,
	inviteExpiryJob *jobs.InviteExpiryJob,
	tokenService shared.TokenService,
	blocklist shared.TokenBlocklist,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	// CORS Middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(tokenService, blocklist, logger.Named("AuthMiddleware"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Back office API is healthy!"})
	})

	// Routes are registered at the root so session creation lives at
	// POST /sessions/github.
	root := router.Group("")
	authHandler.RegisterRoutes(root, authMW)
	userHandler.RegisterRoutes(root, authMW)
	orgHandler.RegisterRoutes(root, authMW)
	projectHandler.RegisterRoutes(root, authMW)
	inviteHandler.RegisterRoutes(root, authMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:      httpServer,
		router:          router,
		cfg:             cfg,
		logger:          logger,
		authHandler:     authHandler,
		userHandler:     userHandler,
		orgHandler:      orgHandler,
		projectHandler:  projectHandler,
		inviteHandler:   inviteHandler,
		inviteExpiryJob: inviteExpiryJob,
		authMW:          authMW,
	}, nil
}

func (s *Server) Start() error {
	if s.inviteExpiryJob != nil {
		err := s.inviteExpiryJob.SetupAndStart()
		if err != nil {
			s.logger.Error("Failed to setup and start invite expiry job", zap.Error(err))
		}
	} else {
		s.logger.Info("Invite expiry job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.inviteExpiryJob != nil {
		s.inviteExpiryJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
