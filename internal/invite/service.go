// File: internal/invite/service.go
package invite

import (
	"context"
	"strings"
	"time"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/config"
	"backoffice_backend/internal/org"
	"backoffice_backend/internal/permission"
	"backoffice_backend/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for invite business logic.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, orgSlug string, req CreateInviteRequest) (*Invite, error)
	ListForOrg(ctx context.Context, userID uuid.UUID, orgSlug string) ([]Invite, error)
	// PendingForUser returns the open invites addressed to the user's email.
	PendingForUser(ctx context.Context, userID uuid.UUID) ([]Invite, error)
	Accept(ctx context.Context, userID, inviteID uuid.UUID) error
	// RevokeExpired closes every invite past its expiry. Used by the
	// scheduled expiry job.
	RevokeExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	orgs     org.Service
	users    shared.Service
	resolver *permission.Resolver
	cfg      *config.Config
	logger   *zap.Logger
}

// NewService creates a new invite service.
func NewService(repo Repository, orgs org.Service, users shared.Service, resolver *permission.Resolver, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		orgs:     orgs,
		users:    users,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger.Named("InviteService"),
	}
}

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

func (s *service) Create(ctx context.Context, userID uuid.UUID, orgSlug string, req CreateInviteRequest) (*Invite, error) {
	organization, ability, err := s.abilityFor(ctx, userID, orgSlug)
	if err != nil {
		return nil, err
	}
	if ability.Cannot(permission.ActionCreate, permission.SubjectInvite) {
		return nil, common.ErrForbidden.WithDetails("You're not allowed to create new invites.")
	}

	authorID := userID
	inviteModel := &Invite{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      req.Role,
		OrgID:     organization.ID,
		AuthorID:  &authorID,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.InviteExpiryDays) * 24 * time.Hour),
	}
	if err := s.repo.Create(ctx, inviteModel); err != nil {
		return nil, err
	}

	s.logger.Info("Invite created",
		zap.String("inviteID", inviteModel.ID.String()),
		zap.String("orgID", organization.ID.String()),
		zap.String("role", inviteModel.Role),
	)
	return inviteModel, nil
}

func (s *service) ListForOrg(ctx context.Context, userID uuid.UUID, orgSlug string) ([]Invite, error) {
	organization, ability, err := s.abilityFor(ctx, userID, orgSlug)
	if err != nil {
		return nil, err
	}
	if ability.Cannot(permission.ActionGet, permission.SubjectInvite) {
		return nil, common.ErrForbidden.WithDetails("You're not allowed to see organization invites.")
	}
	return s.repo.ListByOrg(ctx, organization.ID)
}

func (s *service) PendingForUser(ctx context.Context, userID uuid.UUID) ([]Invite, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPendingByEmail(ctx, usr.Email, time.Now())
}

func (s *service) Accept(ctx context.Context, userID, inviteID uuid.UUID) error {
	inviteModel, err := s.repo.FindByID(ctx, inviteID)
	if err != nil {
		return err
	}

	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(usr.Email, inviteModel.Email) {
		return common.ErrForbidden.WithDetails("This invite belongs to another email.")
	}

	now := time.Now()
	if !inviteModel.Pending(now) {
		return common.ErrGone.WithDetails("This invite has expired or was already used.")
	}

	err = s.orgs.AddMember(ctx, inviteModel.OrgID, userID, permission.Role(inviteModel.Role))
	if err != nil {
		// Already a member is fine, the invite still gets consumed.
		apiErr, ok := common.IsAPIError(err)
		if !ok || apiErr.StatusCode != common.ErrConflict.StatusCode {
			return err
		}
	}

	inviteModel.AcceptedAt = &now
	if err := s.repo.Update(ctx, inviteModel); err != nil {
		return err
	}

	s.logger.Info("Invite accepted",
		zap.String("inviteID", inviteModel.ID.String()),
		zap.String("userID", userID.String()),
	)
	return nil
}

func (s *service) RevokeExpired(ctx context.Context) (int64, error) {
	return s.repo.RevokeExpired(ctx, time.Now())
}
