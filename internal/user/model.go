// File: internal/user/model.go
package user

import (
	"time"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/shared"

	"github.com/google/uuid"
)

// User represents the user model in the database. Email is the
// cross-provider join key: two provider accounts with the same email
// resolve to the same row.
type User struct {
	common.BaseModel         // Embeds ID, CreatedAt, UpdatedAt
	Email            string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Name             *string `gorm:"type:varchar(255)"`
	AvatarURL        *string `gorm:"type:text"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// UserResponse defines the structure for user data sent in API responses.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a shared.User to a UserResponse DTO.
func ToUserResponse(u *shared.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// DBToShared converts the GORM model to the shared representation.
func DBToShared(u *User) *shared.User {
	return &shared.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
