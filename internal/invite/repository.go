// File: internal/invite/repository.go
package invite

import (
	"context"
	"errors"
	"strings"
	"time"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for invite data operations.
type Repository interface {
	Create(ctx context.Context, invite *Invite) error
	FindByID(ctx context.Context, id uuid.UUID) (*Invite, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Invite, error)
	ListPendingByEmail(ctx context.Context, email string, now time.Time) ([]Invite, error)
	Update(ctx context.Context, invite *Invite) error
	// RevokeExpired marks every pending invite past its expiry as revoked
	// and returns the number of rows affected.
	RevokeExpired(ctx context.Context, now time.Time) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM invite repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, invite *Invite) error {
	invite.Email = strings.ToLower(strings.TrimSpace(invite.Email))
	err := r.db.WithContext(ctx).Create(invite).Error
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("An invite for this email already exists in this organization.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Invite, error) {
	var inviteModel Invite
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&inviteModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Invite not found.")
		}
		return nil, err
	}
	return &inviteModel, nil
}

func (r *gormRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Invite, error) {
	var invites []Invite
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *gormRepository) ListPendingByEmail(ctx context.Context, email string, now time.Time) ([]Invite, error) {
	var invites []Invite
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	err := r.db.WithContext(ctx).
		Where("email = ? AND accepted_at IS NULL AND revoked_at IS NULL AND expires_at > ?", normalizedEmail, now).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *gormRepository) Update(ctx context.Context, invite *Invite) error {
	return r.db.WithContext(ctx).Save(invite).Error
}

func (r *gormRepository) RevokeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Invite{}).
		Where("accepted_at IS NULL AND revoked_at IS NULL AND expires_at <= ?", now).
		Update("revoked_at", now)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
