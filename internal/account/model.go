// File: internal/account/model.go
package account

import (
	"backoffice_backend/internal/common"

	"github.com/google/uuid"
)

// Provider enumerates the supported identity providers.
const (
	ProviderGitHub = "GITHUB"
)

// Account links a User to one external identity provider. At most one
// account may exist per (provider, user) pair; rows are created lazily on
// first login via that provider and never mutated afterwards.
type Account struct {
	common.BaseModel
	Provider          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_accounts_provider_user"`
	ProviderAccountID string    `gorm:"type:varchar(255);not null"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_accounts_provider_user"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
