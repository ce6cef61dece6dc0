// File: internal/org/repository.go
package org

import (
	"context"
	"errors"
	"strings"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for organization data operations.
type Repository interface {
	// CreateWithOwner inserts the organization and its ADMIN owner membership
	// in one transaction.
	CreateWithOwner(ctx context.Context, organization *Organization, ownerRole string) error
	FindBySlug(ctx context.Context, slug string) (*Organization, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Organization, error)
	CreateMember(ctx context.Context, member *Member) error
	FindMember(ctx context.Context, orgID, userID uuid.UUID) (*Member, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM organization repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateWithOwner(ctx context.Context, organization *Organization, ownerRole string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(organization).Error; err != nil {
			return err
		}
		member := &Member{
			OrgID:  organization.ID,
			UserID: organization.OwnerID,
			Role:   ownerRole,
		}
		return tx.Create(member).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("An organization with this slug already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*Organization, error) {
	var organization Organization
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&organization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Organization not found.")
		}
		return nil, err
	}
	return &organization, nil
}

func (r *gormRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]Organization, error) {
	var organizations []Organization
	err := r.db.WithContext(ctx).
		Joins("JOIN members ON members.org_id = organizations.id").
		Where("members.user_id = ?", userID).
		Order("organizations.created_at ASC").
		Find(&organizations).Error
	if err != nil {
		return nil, err
	}
	return organizations, nil
}

func (r *gormRepository) CreateMember(ctx context.Context, member *Member) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("User is already a member of this organization.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindMember(ctx context.Context, orgID, userID uuid.UUID) (*Member, error) {
	var member Member
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND user_id = ?", orgID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User is not a member of this organization.")
		}
		return nil, err
	}
	return &member, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
