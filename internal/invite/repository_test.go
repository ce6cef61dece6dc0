// File: internal/invite/repository_test.go
package invite

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"backoffice_backend/internal/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInviteRepo(t *testing.T) Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Invite{}))

	return NewGORMRepository(db)
}

func TestInviteRepository_CreateNormalizesEmail(t *testing.T) {
	repo := setupInviteRepo(t)
	ctx := context.Background()

	inviteModel := &Invite{
		Email:     "  Jane@Example.COM ",
		Role:      "MEMBER",
		OrgID:     uuid.New(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, inviteModel))

	found, err := repo.FindByID(ctx, inviteModel.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", found.Email)
}

func TestInviteRepository_DuplicatePerOrgRejected(t *testing.T) {
	repo := setupInviteRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	first := &Invite{Email: "jane@example.com", Role: "MEMBER", OrgID: orgID, ExpiresAt: time.Now().Add(24 * time.Hour)}
	require.NoError(t, repo.Create(ctx, first))

	dup := &Invite{Email: "jane@example.com", Role: "BILLING", OrgID: orgID, ExpiresAt: time.Now().Add(24 * time.Hour)}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrConflict.StatusCode, apiErr.StatusCode)

	// The same email in another organization is fine.
	other := &Invite{Email: "jane@example.com", Role: "MEMBER", OrgID: uuid.New(), ExpiresAt: time.Now().Add(24 * time.Hour)}
	assert.NoError(t, repo.Create(ctx, other))
}

func TestInviteRepository_RevokeExpired(t *testing.T) {
	repo := setupInviteRepo(t)
	ctx := context.Background()
	now := time.Now()

	expired := &Invite{Email: "old@example.com", Role: "MEMBER", OrgID: uuid.New(), ExpiresAt: now.Add(-time.Hour)}
	pending := &Invite{Email: "fresh@example.com", Role: "MEMBER", OrgID: uuid.New(), ExpiresAt: now.Add(time.Hour)}
	acceptedAt := now.Add(-2 * time.Hour)
	accepted := &Invite{Email: "done@example.com", Role: "MEMBER", OrgID: uuid.New(), ExpiresAt: now.Add(-time.Hour), AcceptedAt: &acceptedAt}
	require.NoError(t, repo.Create(ctx, expired))
	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.Create(ctx, accepted))

	revoked, err := repo.RevokeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), revoked)

	// Only the expired pending invite was closed.
	expiredAfter, err := repo.FindByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.NotNil(t, expiredAfter.RevokedAt)

	pendingAfter, err := repo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Nil(t, pendingAfter.RevokedAt)
	assert.True(t, pendingAfter.Pending(now))

	acceptedAfter, err := repo.FindByID(ctx, accepted.ID)
	require.NoError(t, err)
	assert.Nil(t, acceptedAfter.RevokedAt)
}

func TestInviteRepository_ListPendingByEmail(t *testing.T) {
	repo := setupInviteRepo(t)
	ctx := context.Background()
	now := time.Now()

	open := &Invite{Email: "jane@example.com", Role: "MEMBER", OrgID: uuid.New(), ExpiresAt: now.Add(time.Hour)}
	expired := &Invite{Email: "jane@example.com", Role: "MEMBER", OrgID: uuid.New(), ExpiresAt: now.Add(-time.Hour)}
	otherUser := &Invite{Email: "bob@example.com", Role: "MEMBER", OrgID: uuid.New(), ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, open))
	require.NoError(t, repo.Create(ctx, expired))
	require.NoError(t, repo.Create(ctx, otherUser))

	invites, err := repo.ListPendingByEmail(ctx, "Jane@Example.com", now)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, open.ID, invites[0].ID)
}
