// File: internal/org/service.go
package org

import (
	"context"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/permission"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Service defines the interface for organization business logic.
type Service interface {
	CreateOrganization(ctx context.Context, ownerID uuid.UUID, req CreateOrganizationRequest) (*Organization, error)
	GetBySlug(ctx context.Context, slugValue string) (*Organization, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Organization, error)
	// MemberRole returns the user's role within the organization, or
	// ErrForbidden when the user is not a member.
	MemberRole(ctx context.Context, orgID, userID uuid.UUID) (permission.Role, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID, role permission.Role) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new organization service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Named("OrgService"),
	}
}

func (s *service) CreateOrganization(ctx context.Context, ownerID uuid.UUID, req CreateOrganizationRequest) (*Organization, error) {
	organization := &Organization{
		Name:    req.Name,
		Slug:    slug.Make(req.Name),
		OwnerID: ownerID,
	}

	if err := s.repo.CreateWithOwner(ctx, organization, string(permission.RoleAdmin)); err != nil {
		return nil, err
	}

	s.logger.Info("Organization created",
		zap.String("orgID", organization.ID.String()),
		zap.String("slug", organization.Slug),
		zap.String("ownerID", ownerID.String()),
	)
	return organization, nil
}

func (s *service) GetBySlug(ctx context.Context, slugValue string) (*Organization, error) {
	return s.repo.FindBySlug(ctx, slugValue)
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]Organization, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *service) MemberRole(ctx context.Context, orgID, userID uuid.UUID) (permission.Role, error) {
	member, err := s.repo.FindMember(ctx, orgID, userID)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); ok && apiErr.StatusCode == common.ErrNotFound.StatusCode {
			return "", common.ErrForbidden.WithDetails("You're not a member of this organization.")
		}
		return "", err
	}
	return permission.Role(member.Role), nil
}

func (s *service) AddMember(ctx context.Context, orgID, userID uuid.UUID, role permission.Role) error {
	member := &Member{
		OrgID:  orgID,
		UserID: userID,
		Role:   string(role),
	}
	return s.repo.CreateMember(ctx, member)
}
