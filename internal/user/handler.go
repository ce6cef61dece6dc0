// File: internal/user/handler.go
package user

import (
	"backoffice_backend/internal/common"
	"backoffice_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service shared.Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service shared.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for user operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.GET("/me", authMW, h.me)
}

func (h *Handler) me(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	u, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Warn("Authenticated user not found", zap.String("userID", userID.String()), zap.Error(err))
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("User associated with token not found."))
		return
	}
	common.RespondOK(c, "Profile fetched successfully.", ToUserResponse(u))
}
