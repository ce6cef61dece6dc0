// File: internal/invite/model.go
package invite

import (
	"time"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
)

// Invite asks an email address to join an organization with a role.
// At most one pending invite per (organization, email) pair.
type Invite struct {
	common.BaseModel
	Email      string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_invites_org_email"`
	Role       string     `gorm:"type:varchar(50);not null"`
	OrgID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_invites_org_email"`
	AuthorID   *uuid.UUID `gorm:"type:uuid"`
	ExpiresAt  time.Time  `gorm:"not null"`
	AcceptedAt *time.Time
	RevokedAt  *time.Time
}

// TableName specifies the table name for the Invite model.
func (Invite) TableName() string {
	return "invites"
}

// Pending reports whether the invite can still be accepted at the given time.
func (i *Invite) Pending(now time.Time) bool {
	return i.AcceptedAt == nil && i.RevokedAt == nil && now.Before(i.ExpiresAt)
}

// --- DTOs ---

// CreateInviteRequest defines the structure for creating an invite.
type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=ADMIN MEMBER BILLING"`
}

// InviteResponse defines the structure for invite data in API responses.
type InviteResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	OrgID     uuid.UUID  `json:"org_id"`
	AuthorID  *uuid.UUID `json:"author_id,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToInviteResponse converts an Invite model to its DTO.
func ToInviteResponse(i *Invite) InviteResponse {
	return InviteResponse{
		ID:        i.ID,
		Email:     i.Email,
		Role:      i.Role,
		OrgID:     i.OrgID,
		AuthorID:  i.AuthorID,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}
