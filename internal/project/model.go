// File: internal/project/model.go
package project

import (
	"time"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
)

// Project belongs to an organization and is owned by the member who
// created it. Slugs are unique per organization.
type Project struct {
	common.BaseModel
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_projects_org_slug"`
	Description *string   `gorm:"type:text"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_projects_org_slug"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the table name for the Project model.
func (Project) TableName() string {
	return "projects"
}

// OwnerIdentifier implements permission.Ownable so ownership-conditioned
// rules can be evaluated against a project.
func (p *Project) OwnerIdentifier() string {
	return p.OwnerID.String()
}

// --- DTOs ---

// CreateProjectRequest defines the structure for creating a project.
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// ProjectResponse defines the structure for project data in API responses.
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	OrgID       uuid.UUID `json:"org_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProjectResponse converts a Project model to its DTO.
func ToProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		OrgID:       p.OrgID,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
