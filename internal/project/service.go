// File: internal/project/service.go
package project

import (
	"context"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/org"
	"backoffice_backend/internal/permission"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Service defines the interface for project business logic. Every operation
// is gated through the permission resolver using the caller's membership
// role in the target organization.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, orgSlug string, req CreateProjectRequest) (*Project, error)
	Get(ctx context.Context, userID uuid.UUID, orgSlug, projectSlug string) (*Project, error)
	List(ctx context.Context, userID uuid.UUID, orgSlug string, page, pageSize int) ([]Project, *common.Pagination, error)
	Delete(ctx context.Context, userID uuid.UUID, orgSlug, projectSlug string) error
}

type service struct {
	repo     Repository
	orgs     org.Service
	resolver *permission.Resolver
	logger   *zap.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, orgs org.Service, resolver *permission.Resolver, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		orgs:     orgs,
		resolver: resolver,
		logger:   logger.Named("ProjectService"),
	}
}

// abilityFor resolves the caller's decision object for an organization.
func (s *service) abilityFor(ctx context.Context, userID uuid.UUID, orgSlug string) (*org.Organization, permission.Ability, error) {
	organization, err := s.orgs.GetBySlug(ctx, orgSlug)
	if err != nil {
		return nil, permission.Ability{}, err
	}
	role, err := s.orgs.MemberRole(ctx, organization.ID, userID)
	if err != nil {
		return nil, permission.Ability{}, err
	}
	ability, err := s.resolver.Resolve(userID.String(), role)
	if err != nil {
		return nil, permission.Ability{}, err
	}
	return organization, ability, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, orgSlug string, req CreateProjectRequest) (*Project, error) {
	organization, ability, err := s.abilityFor(ctx, userID, orgSlug)
	if err != nil {
		return nil, err
	}
	if ability.Cannot(permission.ActionCreate, permission.SubjectProject) {
		return nil, common.ErrForbidden.WithDetails("You're not allowed to create new projects.")
	}

	projectModel := &Project{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		OrgID:       organization.ID,
		OwnerID:     userID,
	}
	if err := s.repo.Create(ctx, projectModel); err != nil {
		return nil, err
	}

	s.logger.Info("Project created",
		zap.String("projectID", projectModel.ID.String()),
		zap.String("orgID", organization.ID.String()),
		zap.String("ownerID", userID.String()),
	)
	return projectModel, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID, orgSlug, projectSlug string) (*Project, error) {
	organization, ability, err := s.abilityFor(ctx, userID, orgSlug)
	if err != nil {
		return nil, err
	}
	if ability.Cannot(permission.ActionGet, permission.SubjectProject) {
		return nil, common.ErrForbidden.WithDetails("You're not allowed to see this project.")
	}
	return s.repo.FindBySlug(ctx, organization.ID, projectSlug)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, orgSlug string, page, pageSize int) ([]Project, *common.Pagination, error) {
	organization, ability, err := s.abilityFor(ctx, userID, orgSlug)
	if err != nil {
		return nil, nil, err
	}
	if ability.Cannot(permission.ActionGet, permission.SubjectProject) {
		return nil, nil, common.ErrForbidden.WithDetails("You're not allowed to see organization projects.")
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.ListByOrg(ctx, organization.ID, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}
	return projects, common.NewPagination(total, page, pageSize), nil
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, orgSlug, projectSlug string) error {
	organization, ability, err := s.abilityFor(ctx, userID, orgSlug)
	if err != nil {
		return err
	}

	projectModel, err := s.repo.FindBySlug(ctx, organization.ID, projectSlug)
	if err != nil {
		return err
	}

	if !ability.CanResource(permission.ActionDelete, permission.SubjectProject, projectModel) {
		return common.ErrForbidden.WithDetails("You're not allowed to delete this project.")
	}

	if err := s.repo.Delete(ctx, projectModel.ID); err != nil {
		return err
	}

	s.logger.Info("Project deleted",
		zap.String("projectID", projectModel.ID.String()),
		zap.String("deletedBy", userID.String()),
	)
	return nil
}
