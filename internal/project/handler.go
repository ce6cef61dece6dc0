// File: internal/project/handler.go
package project

import (
	"errors"

	"backoffice_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for project handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new project handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for project operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	projects := router.Group("/organizations/:slug/projects", authMW)
	{
		projects.POST("", h.create)
		projects.GET("", h.list)
		projects.GET("/:projectSlug", h.get)
		projects.DELETE("/:projectSlug", h.delete)
	}
}

func (h *Handler) create(c *gin.Context) {
	var req CreateProjectRequest
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
	projectModel, err := h.service.Create(c.Request.Context(), userID, c.Param("slug"), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.RespondCreated(c, "Project created successfully.", ToProjectResponse(projectModel))
}

func (h *Handler) list(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	page, pageSize := common.GetPaginationParams(c)

	projects, pagination, err := h.service.List(c.Request.Context(), userID, c.Param("slug"), page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, ToProjectResponse(&projects[i]))
	}
	common.RespondPaginated(c, "Projects fetched successfully.", responses, pagination)
}

func (h *Handler) get(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	projectModel, err := h.service.Get(c.Request.Context(), userID, c.Param("slug"), c.Param("projectSlug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Project fetched successfully.", ToProjectResponse(projectModel))
}

func (h *Handler) delete(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if err := h.service.Delete(c.Request.Context(), userID, c.Param("slug"), c.Param("projectSlug")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
