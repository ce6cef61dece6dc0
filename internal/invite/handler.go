// File: internal/invite/handler.go
package invite

import (
	"errors"

	"backoffice_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for invite handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new invite handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for invite operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	orgInvites := router.Group("/organizations/:slug/invites", authMW)
	{
		orgInvites.POST("", h.create)
		orgInvites.GET("", h.listForOrg)
	}

	invites := router.Group("/invites", authMW)
	{
		invites.GET("", h.pending)
		invites.POST("/:inviteID/accept", h.accept)
	}
}

func (h *Handler) create(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	userID := common.GetUserIDFromContext(c)
	inviteModel, err := h.service.Create(c.Request.Context(), userID, c.Param("slug"), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.RespondCreated(c, "Invite created successfully.", ToInviteResponse(inviteModel))
}

func (h *Handler) listForOrg(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	invites, err := h.service.ListForOrg(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Invites fetched successfully.", toResponses(invites))
}

func (h *Handler) pending(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	invites, err := h.service.PendingForUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Pending invites fetched successfully.", toResponses(invites))
}

func (h *Handler) accept(c *gin.Context) {
	inviteID, err := uuid.Parse(c.Param("inviteID"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid invite ID format."))
		return
	}

	userID := common.GetUserIDFromContext(c)
	if err := h.service.Accept(c.Request.Context(), userID, inviteID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func toResponses(invites []Invite) []InviteResponse {
	responses := make([]InviteResponse, 0, len(invites))
	for i := range invites {
		responses = append(responses, ToInviteResponse(&invites[i]))
	}
	return responses
}
