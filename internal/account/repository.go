// File: internal/account/repository.go
package account

import (
	"context"
	"errors"
	"strings"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for provider account data operations.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	FindByProviderAndUserID(ctx context.Context, provider string, userID uuid.UUID) (*Account, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM account repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new provider account link.
func (r *gormRepository) Create(ctx context.Context, account *Account) error {
	err := r.db.WithContext(ctx).Create(account).Error
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("This provider account is already linked to the user.")
		}
		return err
	}
	return nil
}

// FindByProviderAndUserID retrieves the account link for the composite key.
func (r *gormRepository) FindByProviderAndUserID(ctx context.Context, provider string, userID uuid.UUID) (*Account, error) {
	var accountModel Account
	err := r.db.WithContext(ctx).
		Where("provider = ? AND user_id = ?", provider, userID).
		First(&accountModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Account not found for this provider and user.")
		}
		return nil, err
	}
	return &accountModel, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
