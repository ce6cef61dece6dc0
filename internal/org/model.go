// File: internal/org/model.go
package org

import (
	"time"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
)

// Organization is a tenant of the back office.
type Organization struct {
	common.BaseModel
	Name    string    `gorm:"type:varchar(100);not null"`
	Slug    string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_organizations_slug"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the table name for the Organization model.
func (Organization) TableName() string {
	return "organizations"
}

// Member ties a user to an organization with a role. The role is the input
// to the permission resolver for every request scoped to the organization.
type Member struct {
	common.BaseModel
	OrgID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_members_org_user"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_members_org_user"`
	Role   string    `gorm:"type:varchar(50);not null"`
}

// TableName specifies the table name for the Member model.
func (Member) TableName() string {
	return "members"
}

// --- DTOs ---

// CreateOrganizationRequest defines the structure for creating an organization.
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// OrganizationResponse defines the structure for organization data in API responses.
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToOrganizationResponse converts an Organization model to its DTO.
func ToOrganizationResponse(o *Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		OwnerID:   o.OwnerID,
		CreatedAt: o.CreatedAt,
	}
}
