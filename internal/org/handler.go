// File: internal/org/handler.go
package org

import (
	"errors"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/permission"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for organization handlers.
type Handler struct {
	service  Service
	resolver *permission.Resolver
	logger   *zap.Logger
}

// NewHandler creates a new organization handler.
func NewHandler(service Service, resolver *permission.Resolver, logger *zap.Logger) *Handler {
	return &Handler{service: service, resolver: resolver, logger: logger}
}

// RegisterRoutes sets up the routes for organization operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	organizations := router.Group("/organizations", authMW)
	{
		organizations.POST("", h.create)
		organizations.GET("", h.list)
		organizations.GET("/:slug", h.get)
	}
}

func (h *Handler) create(c *gin.Context) {
	var req CreateOrganizationRequest
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
	organization, err := h.service.CreateOrganization(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.RespondCreated(c, "Organization created successfully.", ToOrganizationResponse(organization))
}

func (h *Handler) list(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	organizations, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]OrganizationResponse, 0, len(organizations))
	for i := range organizations {
		responses = append(responses, ToOrganizationResponse(&organizations[i]))
	}
	common.RespondOK(c, "Organizations fetched successfully.", responses)
}

func (h *Handler) get(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	organization, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	role, err := h.service.MemberRole(c.Request.Context(), organization.ID, userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	ability, err := h.resolver.Resolve(userID.String(), role)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if ability.Cannot(permission.ActionGet, permission.SubjectOrganization) {
		common.RespondWithError(c, common.ErrForbidden.WithDetails("You're not allowed to see this organization."))
		return
	}

	common.RespondOK(c, "Organization fetched successfully.", ToOrganizationResponse(organization))
}
