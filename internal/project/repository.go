// File: internal/project/repository.go
package project

import (
	"context"
	"errors"
	"strings"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for project data operations.
type Repository interface {
	Create(ctx context.Context, project *Project) error
	FindBySlug(ctx context.Context, orgID uuid.UUID, slug string) (*Project, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]Project, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM project repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, project *Project) error {
	err := r.db.WithContext(ctx).Create(project).Error
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("A project with this slug already exists in this organization.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, orgID uuid.UUID, slug string) (*Project, error) {
	var projectModel Project
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND slug = ?", orgID, slug).
		First(&projectModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Project not found.")
		}
		return nil, err
	}
	return &projectModel, nil
}

func (r *gormRepository) ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]Project, int64, error) {
	var projects []Project
	var total int64

	query := r.db.WithContext(ctx).Model(&Project{}).Where("org_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Project not found.")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
