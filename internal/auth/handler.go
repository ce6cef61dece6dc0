// File: internal/auth/handler.go
package auth

import (
	"errors"
	"net/http"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	loginService *LoginService
	blocklist    shared.TokenBlocklist
	logger       *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(loginService *LoginService, blocklist shared.TokenBlocklist, logger *zap.Logger) *Handler {
	return &Handler{
		loginService: loginService,
		blocklist:    blocklist,
		logger:       logger,
	}
}

// RegisterRoutes sets up the routes for session operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("/github", h.githubLogin)
		sessions.POST("/logout", authMW, h.logout)
	}
}

// githubLogin handles POST /sessions/github. On success it responds with
// 201 and the bare token body the front end expects.
func (h *Handler) githubLogin(c *gin.Context) {
	var req GitHubLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("GitHub login: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	token, err := h.loginService.Login(c.Request.Context(), GitHubProviderName, req.Code)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// logout revokes the current session token by blocklisting its JTI until
// the token's natural expiry.
func (h *Handler) logout(c *gin.Context) {
	val, exists := c.Get(common.UserClaimsKey)
	if !exists {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	claims, ok := val.(*shared.Claims)
	if !ok || claims.ExpiresAt == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	if err := h.blocklist.AddToBlocklist(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		h.logger.Error("Failed to blocklist token", zap.Error(err))
		common.RespondWithError(c, common.ErrInternalServer.WithDetails("Could not revoke session."))
		return
	}

	common.RespondNoContent(c)
}
