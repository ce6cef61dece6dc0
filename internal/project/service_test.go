// File: internal/project/service_test.go
package project

import (
	"context"
	"testing"

	"backoffice_backend/internal/common"
	"backoffice_backend/internal/org"
	"backoffice_backend/internal/permission"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProjectRepo struct {
	createFn     func(ctx context.Context, project *Project) error
	findBySlugFn func(ctx context.Context, orgID uuid.UUID, slug string) (*Project, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	deleteCalls  int
}

func (m *mockProjectRepo) Create(ctx context.Context, project *Project) error {
	return m.createFn(ctx, project)
}

func (m *mockProjectRepo) FindBySlug(ctx context.Context, orgID uuid.UUID, slug string) (*Project, error) {
	return m.findBySlugFn(ctx, orgID, slug)
}

func (m *mockProjectRepo) ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]Project, int64, error) {
	return nil, 0, nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	return m.deleteFn(ctx, id)
}

type mockOrgService struct {
	organization *org.Organization
	role         permission.Role
}

func (m *mockOrgService) CreateOrganization(ctx context.Context, ownerID uuid.UUID, req org.CreateOrganizationRequest) (*org.Organization, error) {
	return nil, nil
}

func (m *mockOrgService) GetBySlug(ctx context.Context, slug string) (*org.Organization, error) {
	return m.organization, nil
}

func (m *mockOrgService) ListForUser(ctx context.Context, userID uuid.UUID) ([]org.Organization, error) {
	return nil, nil
}

func (m *mockOrgService) MemberRole(ctx context.Context, orgID, userID uuid.UUID) (permission.Role, error) {
	return m.role, nil
}

func (m *mockOrgService) AddMember(ctx context.Context, orgID, userID uuid.UUID, role permission.Role) error {
	return nil
}

func newProjectService(repo Repository, role permission.Role, organization *org.Organization) Service {
	orgs := &mockOrgService{organization: organization, role: role}
	resolver := permission.NewResolver(permission.NewDefaultDefiner())
	return NewService(repo, orgs, resolver, zap.NewNop())
}

func orgFixture() *org.Organization {
	return &org.Organization{
		BaseModel: common.BaseModel{ID: uuid.New()},
		Name:      "Acme Inc",
		Slug:      "acme-inc",
	}
}

func TestProjectService_Create_MemberAllowed(t *testing.T) {
	organization := orgFixture()
	userID := uuid.New()

	repo := &mockProjectRepo{
		createFn: func(ctx context.Context, project *Project) error {
			project.ID = uuid.New()
			return nil
		},
	}
	service := newProjectService(repo, permission.RoleMember, organization)

	description := "Internal tooling"
	projectModel, err := service.Create(context.Background(), userID, "acme-inc", CreateProjectRequest{
		Name:        "Site Redesign",
		Description: &description,
	})
	require.NoError(t, err)

	assert.Equal(t, "site-redesign", projectModel.Slug)
	assert.Equal(t, organization.ID, projectModel.OrgID)
	assert.Equal(t, userID, projectModel.OwnerID)
}

func TestProjectService_Create_BillingForbidden(t *testing.T) {
	repo := &mockProjectRepo{
		createFn: func(ctx context.Context, project *Project) error {
			t.Fatal("no project may be written for a forbidden caller")
			return nil
		},
	}
	service := newProjectService(repo, permission.RoleBilling, orgFixture())

	_, err := service.Create(context.Background(), uuid.New(), "acme-inc", CreateProjectRequest{Name: "Site Redesign"})
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrForbidden.StatusCode, apiErr.StatusCode)
	assert.Equal(t, "You're not allowed to create new projects.", apiErr.Details)
}

func TestProjectService_Delete_MemberOwnsProject(t *testing.T) {
	organization := orgFixture()
	userID := uuid.New()

	repo := &mockProjectRepo{
		findBySlugFn: func(ctx context.Context, orgID uuid.UUID, slug string) (*Project, error) {
			return &Project{
				BaseModel: common.BaseModel{ID: uuid.New()},
				OrgID:     orgID,
				OwnerID:   userID,
			}, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return nil
		},
	}
	service := newProjectService(repo, permission.RoleMember, organization)

	require.NoError(t, service.Delete(context.Background(), userID, "acme-inc", "site-redesign"))
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestProjectService_Delete_MemberDoesNotOwnProject(t *testing.T) {
	organization := orgFixture()

	repo := &mockProjectRepo{
		findBySlugFn: func(ctx context.Context, orgID uuid.UUID, slug string) (*Project, error) {
			return &Project{
				BaseModel: common.BaseModel{ID: uuid.New()},
				OrgID:     orgID,
				OwnerID:   uuid.New(),
			}, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			t.Fatal("a member must not delete a project they do not own")
			return nil
		},
	}
	service := newProjectService(repo, permission.RoleMember, organization)

	err := service.Delete(context.Background(), uuid.New(), "acme-inc", "site-redesign")
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrForbidden.StatusCode, apiErr.StatusCode)
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestProjectService_Delete_AdminDeletesAnyProject(t *testing.T) {
	organization := orgFixture()

	repo := &mockProjectRepo{
		findBySlugFn: func(ctx context.Context, orgID uuid.UUID, slug string) (*Project, error) {
			return &Project{
				BaseModel: common.BaseModel{ID: uuid.New()},
				OrgID:     orgID,
				OwnerID:   uuid.New(),
			}, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return nil
		},
	}
	service := newProjectService(repo, permission.RoleAdmin, organization)

	require.NoError(t, service.Delete(context.Background(), uuid.New(), "acme-inc", "site-redesign"))
	assert.Equal(t, 1, repo.deleteCalls)
}
